package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"wedding-rsvp/internal/handler"
	"wedding-rsvp/internal/models"
)

type guestSource interface {
	GetGuest(ctx context.Context, id string) (*models.Guest, error)
	ListGuests(ctx context.Context, filter models.GuestFilter) ([]models.Guest, error)
}

// console is the line-oriented operator menu on stdin
type console struct {
	guests  guestSource
	stats   handler.StatsSource
	inviter handler.Inviter
	out     io.Writer
}

func startConsole(ctx context.Context, stop context.CancelFunc, c *console) {
	if c.out == nil {
		c.out = os.Stdout
	}
	c.run(ctx, os.Stdin)
	stop()
}

func (c *console) run(ctx context.Context, in io.Reader) {
	scanner := bufio.NewScanner(in)

	for ctx.Err() == nil {
		fmt.Fprintln(c.out, "\nCommands:")
		fmt.Fprintln(c.out, "  1. Send invitation")
		fmt.Fprintln(c.out, "  2. View all guests")
		fmt.Fprintln(c.out, "  3. View guests by status")
		fmt.Fprintln(c.out, "  4. View statistics")
		fmt.Fprintln(c.out, "  5. Exit")
		fmt.Fprint(c.out, "\nEnter command (1-5): ")

		if !scanner.Scan() {
			return
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			c.sendInvitation(ctx, scanner)
		case "2":
			c.viewGuests(ctx, models.GuestFilter{})
		case "3":
			c.viewGuestsByStatus(ctx, scanner)
		case "4":
			c.viewStats(ctx)
		case "5":
			fmt.Fprintln(c.out, "Exiting...")
			return
		default:
			fmt.Fprintln(c.out, "Invalid command. Please try again.")
		}
	}
}

func (c *console) sendInvitation(ctx context.Context, scanner *bufio.Scanner) {
	if c.inviter == nil {
		fmt.Fprintln(c.out, "WhatsApp is not enabled (set WHATSAPP_ENABLED=true).")
		return
	}

	fmt.Fprint(c.out, "Enter guest id: ")
	if !scanner.Scan() {
		return
	}
	guest, err := c.guests.GetGuest(ctx, strings.TrimSpace(scanner.Text()))
	if err != nil {
		fmt.Fprintf(c.out, "❌ %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "\nSending invitation to %s %s...\n", guest.FirstName, guest.LastName)
	if err := c.inviter.SendInvitation(ctx, guest); err != nil {
		fmt.Fprintf(c.out, "❌ Error sending invitation: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "✅ Invitation sent successfully!")
}

func (c *console) viewGuests(ctx context.Context, filter models.GuestFilter) {
	guests, err := c.guests.ListGuests(ctx, filter)
	if err != nil {
		fmt.Fprintf(c.out, "❌ %v\n", err)
		return
	}
	if len(guests) == 0 {
		fmt.Fprintln(c.out, "\nNo guests found.")
		return
	}

	fmt.Fprintf(c.out, "\n📋 Guests (%d total):\n", len(guests))
	fmt.Fprintln(c.out, strings.Repeat("-", 60))
	for _, guest := range guests {
		fmt.Fprintf(c.out, "Name: %s %s\n", guest.FirstName, guest.LastName)
		fmt.Fprintf(c.out, "ID: %s\n", guest.ID)
		fmt.Fprintf(c.out, "Code: %s\n", guest.RSVPCode)
		if guest.Phone != nil {
			fmt.Fprintf(c.out, "Phone: %s\n", *guest.Phone)
		}
		fmt.Fprintf(c.out, "Status: %s\n", guest.RSVPStatus)
		if guest.RespondedAt != nil {
			fmt.Fprintf(c.out, "RSVP Date: %s\n", guest.RespondedAt.Local().Format("2006-01-02 15:04:05"))
		}
		fmt.Fprintln(c.out, strings.Repeat("-", 60))
	}
}

func (c *console) viewGuestsByStatus(ctx context.Context, scanner *bufio.Scanner) {
	fmt.Fprintln(c.out, "\nSelect status:")
	fmt.Fprintln(c.out, "  1. Pending")
	fmt.Fprintln(c.out, "  2. Attending")
	fmt.Fprintln(c.out, "  3. Not attending")
	fmt.Fprint(c.out, "Enter choice (1-3): ")

	if !scanner.Scan() {
		return
	}

	var status models.RSVPStatus
	switch strings.TrimSpace(scanner.Text()) {
	case "1":
		status = models.RSVPPending
	case "2":
		status = models.RSVPAttending
	case "3":
		status = models.RSVPNotAttending
	default:
		fmt.Fprintln(c.out, "Invalid choice.")
		return
	}
	c.viewGuests(ctx, models.GuestFilter{RSVPStatus: status})
}

func (c *console) viewStats(ctx context.Context) {
	s, err := c.stats.ComputeStats(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "❌ %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "\n📊 %d guests: %d attending, %d not attending, %d pending\n",
		s.Total, s.Attending, s.NotAttending, s.Pending)
	fmt.Fprintf(c.out, "Plus-ones: %d, expected headcount: %d\n", s.PlusOnes, s.TotalAttending)
}
