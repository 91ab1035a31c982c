// Package shell drives the interactive menu session. It owns every prompt
// and re-prompt loop; by the time input reaches the services it has been
// validated, so core errors surfacing here indicate a bug rather than bad
// typing.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tacklehire/internal/catalog"
	"tacklehire/internal/domain"
	"tacklehire/internal/logger"
	"tacklehire/internal/money"
	"tacklehire/internal/service"
)

// Shell runs the menu-driven console session against the core services.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	catalog *catalog.Catalog
	hires   service.HireService
	reports service.ReportService
}

func New(in io.Reader, out io.Writer, cat *catalog.Catalog, hires service.HireService, reports service.ReportService) *Shell {
	return &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		catalog: cat,
		hires:   hires,
		reports: reports,
	}
}

// Run loops on the main menu until the user exits or input ends.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.printMainMenu()

		line, ok := s.readLine("Select an option (1-3): ")
		if !ok {
			return nil
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > 3 {
			s.printf("Invalid option, try again.\n")
			continue
		}

		switch choice {
		case 1:
			if err := s.runHireFlow(ctx); err != nil {
				return err
			}
		case 2:
			if err := s.runEarningsReport(ctx); err != nil {
				return err
			}
		case 3:
			s.printf("Goodbye!\n")
			return nil
		}
	}
}

func (s *Shell) printMainMenu() {
	s.printf("\n=== Main Menu ===\n")
	s.printf("1) Enter details of customer and equipment hired\n")
	s.printf("2) Create report\n")
	s.printf("3) Exit\n")
}

// runHireFlow captures hires until the user declines to add another.
func (s *Shell) runHireFlow(ctx context.Context) error {
	for {
		customer, ok := s.readCustomer()
		if !ok {
			s.printf("Returning to main menu.\n")
			return nil
		}

		nights, ok := s.readPositiveInt("Number of nights: ")
		if !ok {
			return nil
		}
		onTime, ok := s.readYesNo("Returned on time (y/n)? ")
		if !ok {
			return nil
		}
		items, ok := s.readItems(nights, onTime)
		if !ok {
			return nil
		}

		record, err := s.hires.CreateHire(ctx, customer, nights, onTime, items)
		if err != nil {
			// Input was validated above, so this is not a typing mistake.
			logger.Error("failed to create hire", "error", err)
			return fmt.Errorf("creating hire: %w", err)
		}

		s.printSavedHire(record)

		again, ok := s.readYesNo("Add another hire (y/n)? ")
		if !ok || !again {
			s.printf("Returning to main menu.\n")
			return nil
		}
	}
}

func (s *Shell) runEarningsReport(ctx context.Context) error {
	lines, err := s.reports.EarningsReport(ctx)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}

	s.printf("\n")
	for _, line := range lines {
		s.printf("%s\n", line)
	}
	return nil
}

// readCustomer prompts for the customer header until it parses, returning
// ok=false when the user cancels or input ends.
func (s *Shell) readCustomer() (domain.Customer, bool) {
	s.printf("\nEnter customer (comma separated):\n")
	s.printf("  name, phone, house_no, postcode, card_last4\n")
	s.printf("  Example:  Jane Smith, 07900111222, 12, LE1 2AB, 1234\n")
	s.printf("Type 'cancel' to return to the menu without saving.\n")

	for {
		raw, ok := s.readLine("> ")
		if !ok {
			return domain.Customer{}, false
		}
		raw = strings.TrimSpace(raw)
		if raw == "" || strings.EqualFold(raw, "cancel") {
			s.printf("Cancelled.\n")
			return domain.Customer{}, false
		}

		customer, err := ParseCustomer(raw)
		if err != nil {
			s.printf("%s\n", capitalize(err.Error()))
			continue
		}
		return customer, true
	}
}

// readItems collects item lines until a blank line, requiring at least one
// line. Codes are checked against the catalog here so the error message
// can list what is valid.
func (s *Shell) readItems(nights int, onTime bool) ([]service.ItemRequest, bool) {
	knownCodes := strings.Join(s.catalog.Codes(), ", ")

	s.printf("\nEnter item lines (one per line), then press ENTER on a blank line to finish.\n")
	s.printf("Format: CODE, quantity   e.g.,  DCH, 2\n")
	s.printf("Nights for this hire: %d  | Returned on time: %t\n", nights, onTime)
	s.printf("Known codes: %s\n", knownCodes)

	var items []service.ItemRequest
	for {
		raw, ok := s.readLine("> ")
		if !ok {
			return nil, false
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			if len(items) == 0 {
				s.printf("You must enter at least one item.\n")
				continue
			}
			return items, true
		}

		code, qty, err := ParseItemLine(raw)
		if err != nil {
			s.printf("%s\n", capitalize(err.Error()))
			continue
		}
		if _, found := s.catalog.Lookup(code); !found {
			s.printf("Unknown code %q. Known: %s\n", code, knownCodes)
			continue
		}

		items = append(items, service.ItemRequest{Code: code, Quantity: qty})
	}
}

func (s *Shell) printSavedHire(record *domain.HireRecord) {
	onTime := "n"
	if record.ReturnedOnTime {
		onTime = "y"
	}

	s.printf("\nSaved hire:\n")
	s.printf("  Customer ID: %d\n", record.CustomerID)
	s.printf("  Reference:   %s\n", record.Reference)
	s.printf("  Customer:    %s\n", record.Customer.Name)
	s.printf("  Equipment:   %s\n", record.EquipmentSummary)
	s.printf("  Nights:      %d\n", record.Nights)
	s.printf("  Returned on time: %s\n", onTime)
	s.printf("  Extra charge for delayed return: %s\n", money.Format(record.LateReturnPence))
	s.printf("  Total cost:  %s\n\n", money.Format(record.TotalPence))
}

func (s *Shell) readYesNo(prompt string) (bool, bool) {
	for {
		raw, ok := s.readLine(prompt)
		if !ok {
			return false, false
		}
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		}
		s.printf("Please enter 'y' or 'n'.\n")
	}
}

func (s *Shell) readPositiveInt(prompt string) (int, bool) {
	for {
		raw, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			s.printf("Please enter a whole number.\n")
			continue
		}
		if n < 1 {
			s.printf("Please enter a number of at least 1.\n")
			continue
		}
		return n, true
	}
}

// readLine prints the prompt and reads one input line; ok is false once
// input is exhausted.
func (s *Shell) readLine(prompt string) (string, bool) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
