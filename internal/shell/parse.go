package shell

import (
	"fmt"
	"strconv"
	"strings"

	"tacklehire/internal/domain"
)

// Pure parsers for the two structured input lines the shell accepts. They
// never prompt; the interactive readers loop on their errors with the
// message shown to the user.

// ParseCustomer parses the comma-separated customer header line:
// "name, phone, house_no, postcode, card_last4". Phone and card digits are
// extracted from whatever punctuation the user typed; the postcode is
// upper-cased.
func ParseCustomer(raw string) (domain.Customer, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 5 {
		return domain.Customer{}, fmt.Errorf("expected 5 fields separated by commas")
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	name := parts[0]
	if name == "" {
		return domain.Customer{}, fmt.Errorf("name cannot be empty")
	}

	phone := digitsOf(parts[1])
	if len(phone) < 7 {
		return domain.Customer{}, fmt.Errorf("phone should contain at least 7 digits")
	}

	card := digitsOf(parts[4])
	if len(card) != 4 {
		return domain.Customer{}, fmt.Errorf("card last 4 digits must be exactly 4 digits")
	}

	return domain.Customer{
		Name:      name,
		Phone:     phone,
		HouseNo:   parts[2],
		Postcode:  strings.ToUpper(parts[3]),
		CardLast4: card,
	}, nil
}

// ParseItemLine parses an equipment line "CODE, quantity". The code is
// upper-cased but not checked against the catalog here; the reader does
// that so its error can list the known codes.
func ParseItemLine(raw string) (code string, quantity int, err error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("expected 2 fields: CODE, quantity")
	}

	code = strings.ToUpper(strings.TrimSpace(parts[0]))
	if code == "" {
		return "", 0, fmt.Errorf("item code cannot be empty")
	}

	quantity, convErr := strconv.Atoi(strings.TrimSpace(parts[1]))
	if convErr != nil {
		return "", 0, fmt.Errorf("quantity must be a whole number")
	}
	if quantity < 1 {
		return "", 0, fmt.Errorf("quantity must be at least 1")
	}

	return code, quantity, nil
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
