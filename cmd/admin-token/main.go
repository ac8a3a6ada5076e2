package main

import (
	"flag"
	"fmt"
	"os"

	"wedding-rsvp/internal/auth"
	"wedding-rsvp/internal/config"
)

func main() {
	subject := flag.String("subject", "", "admin identity to embed in the token")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	authenticator, err := auth.NewAuthenticator(auth.Config{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.TokenTTL,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing authenticator: %v\n", err)
		os.Exit(1)
	}

	token, err := authenticator.Issue(*subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error issuing token: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: admin-token -subject <name>")
		os.Exit(1)
	}
	fmt.Println(token)
}
