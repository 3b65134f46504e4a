// Package console implements the interactive menu shell for the SkyRoute
// records system. It is a thin front end over the same services the HTTP
// handlers use: every menu command prompts for input, calls one service
// operation, and prints the outcome. Reads and writes go through plain
// io.Reader/io.Writer so the shell can be tested without a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/skyroute/skyroute/internal/domain"
)

// CustomerDirectory defines the customer operations the shell depends on.
type CustomerDirectory interface {
	Register(ctx context.Context, name, surname, address, email, nationalID, phone string) (domain.Customer, error)
	Get(ctx context.Context, nationalID string) (domain.Customer, error)
	List(ctx context.Context) ([]domain.CustomerListing, error)
	Update(ctx context.Context, nationalID, field, value string) (domain.Customer, error)
	Deactivate(ctx context.Context, nationalID string) error
	Delete(ctx context.Context, nationalID string) error
}

// DestinationCatalog defines the destination operations the shell depends on.
type DestinationCatalog interface {
	Register(ctx context.Context, cityName, province, country string, baseCost float64) (domain.DestinationView, error)
	List(ctx context.Context) ([]domain.DestinationView, error)
	Update(ctx context.Context, id uuid.UUID, field, value string) (domain.DestinationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SalesLedger defines the sales operations the shell depends on.
type SalesLedger interface {
	ListDestinations(ctx context.Context) ([]domain.DestinationView, error)
	Purchase(ctx context.Context, nationalID string, destinationID uuid.UUID, ticketCount int) (domain.Sale, error)
	ListActive(ctx context.Context, nationalID string) ([]domain.Sale, error)
	List(ctx context.Context, nationalID, statusFilter string) ([]domain.Sale, error)
	Cancel(ctx context.Context, nationalID string, saleID uuid.UUID, reason string) error
}

// Shell is the interactive console front end.
type Shell struct {
	in           *bufio.Scanner
	out          io.Writer
	customers    CustomerDirectory
	destinations DestinationCatalog
	sales        SalesLedger
}

// New constructs a Shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, customers CustomerDirectory, destinations DestinationCatalog, sales SalesLedger) *Shell {
	return &Shell{
		in:           bufio.NewScanner(in),
		out:          out,
		customers:    customers,
		destinations: destinations,
		sales:        sales,
	}
}

// command is one named menu entry. Menus are tables of commands dispatched
// by number rather than if/else ladders.
type command struct {
	label string
	run   func(ctx context.Context) error
}

// Run presents the main menu until the user exits or input ends.
func (sh *Shell) Run(ctx context.Context) {
	sh.runMenu(ctx, "MAIN MENU", "Exit", []command{
		{label: "Customer management", run: sh.customerMenu},
		{label: "Ticket purchase and cancellation", run: sh.salesMenu},
		{label: "Destination management", run: sh.destinationMenu},
	})
	fmt.Fprintln(sh.out, "Goodbye.")
}

// runMenu loops one menu: print the command table, read a selection, run it.
// Command errors are reported and the menu regains control; no command is
// fatal to the shell. The loop ends on the exit option or end of input.
func (sh *Shell) runMenu(ctx context.Context, title, exitLabel string, commands []command) {
	for {
		fmt.Fprintln(sh.out)
		fmt.Fprintln(sh.out, title)
		for i, c := range commands {
			fmt.Fprintf(sh.out, "%d. %s\n", i+1, c.label)
		}
		fmt.Fprintf(sh.out, "%d. %s\n", len(commands)+1, exitLabel)

		choice, err := sh.prompt("Select an option: ")
		if err != nil {
			return
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(commands)+1 {
			fmt.Fprintf(sh.out, "Invalid option. Choose between 1 and %d.\n", len(commands)+1)
			continue
		}
		if n == len(commands)+1 {
			return
		}
		if err := commands[n-1].run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintf(sh.out, "Error: %s\n", messageFor(err))
		}
	}
}

// prompt prints the label and reads one trimmed line.
// Returns io.EOF when input ends.
func (sh *Shell) prompt(label string) (string, error) {
	fmt.Fprint(sh.out, label)
	if !sh.in.Scan() {
		if err := sh.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(sh.in.Text()), nil
}

// promptValidated re-prompts in place until the input passes the format
// check. Format errors never propagate past the input boundary.
func (sh *Shell) promptValidated(label, hint string, valid func(string) bool) (string, error) {
	for {
		s, err := sh.prompt(label)
		if err != nil {
			return "", err
		}
		if valid(s) {
			return s, nil
		}
		fmt.Fprintln(sh.out, hint)
	}
}

// promptInt re-prompts until the input is an integer of at least min.
func (sh *Shell) promptInt(label string, min int) (int, error) {
	for {
		s, err := sh.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < min {
			fmt.Fprintf(sh.out, "Enter a whole number of at least %d.\n", min)
			continue
		}
		return n, nil
	}
}

// promptFloat re-prompts until the input is a number greater than zero.
func (sh *Shell) promptFloat(label string) (float64, error) {
	for {
		s, err := sh.prompt(label)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f <= 0 {
			fmt.Fprintln(sh.out, "Enter a number greater than zero.")
			continue
		}
		return f, nil
	}
}

// promptUUID re-prompts until the input parses as a UUID.
func (sh *Shell) promptUUID(label string) (uuid.UUID, error) {
	for {
		s, err := sh.prompt(label)
		if err != nil {
			return uuid.Nil, err
		}
		id, err := uuid.Parse(s)
		if err != nil {
			fmt.Fprintln(sh.out, "Enter a valid identifier.")
			continue
		}
		return id, nil
	}
}

// confirm asks a yes/no question gating destructive or status-changing
// commands. Anything other than y/yes declines.
func (sh *Shell) confirm(label string) (bool, error) {
	s, err := sh.prompt(label + " (yes/no): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// messageFor maps a service error to the single line shown to the user.
func messageFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "no matching record was found."
	case errors.Is(err, domain.ErrConflict):
		return "the record conflicts with an existing one."
	case errors.Is(err, domain.ErrInactiveCustomer):
		return "the customer is inactive. The sale cannot be made."
	case errors.Is(err, domain.ErrWindowExpired):
		return "the sale cannot be cancelled, more than 2 minutes have passed since purchase."
	case errors.Is(err, domain.ErrInvalidSelection):
		return "that identifier is not among the listed sales."
	case errors.Is(err, domain.ErrValidation):
		// Strip the sentinel prefix, keep the field-specific part.
		msg := err.Error()
		if i := strings.Index(msg, "validation error: "); i >= 0 {
			return msg[i+len("validation error: "):]
		}
		return msg
	default:
		return err.Error()
	}
}
