package storage

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// CodeLength is the number of characters in a generated RSVP code.
	CodeLength = 8
	// MaxCodeLength bounds what is ever accepted as a code on lookup.
	MaxCodeLength = 32

	maxCodeAttempts = 8
)

// GenerateCode returns a random upper-case alphanumeric RSVP code
func GenerateCode() (string, error) {
	var b strings.Builder
	b.Grow(CodeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < CodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate rsvp code: %w", err)
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// NormalizeCode trims and upper-cases a free-typed code. The second return
// value is false when the input cannot possibly be a code.
func NormalizeCode(raw string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" || len(code) > MaxCodeLength {
		return "", false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(codeAlphabet, code[i]) < 0 {
			return "", false
		}
	}
	return code, true
}
