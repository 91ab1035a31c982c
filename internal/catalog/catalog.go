// Package catalog holds the shop's read-only equipment price list. The
// catalog is constructed once at startup, either from the built-in list or
// from a YAML file, and is never mutated afterwards.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tacklehire/internal/domain"
)

// Catalog is an immutable lookup table of item code to price-list entry.
// Lookups are case-insensitive; codes are stored upper-cased.
type Catalog struct {
	entries []domain.CatalogEntry
	byCode  map[string]int
}

// New builds a catalog from the given entries, validating that every entry
// has a non-empty code and name, a non-negative price, and a unique code.
func New(entries []domain.CatalogEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one entry")
	}

	c := &Catalog{
		entries: make([]domain.CatalogEntry, 0, len(entries)),
		byCode:  make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		code := strings.ToUpper(strings.TrimSpace(e.Code))
		if code == "" {
			return nil, fmt.Errorf("catalog entry %d: code is required", i)
		}
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("catalog entry %q: name is required", code)
		}
		if e.DailyPence < 0 {
			return nil, fmt.Errorf("catalog entry %q: daily price must not be negative", code)
		}
		if _, dup := c.byCode[code]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate code", code)
		}
		e.Code = code
		c.byCode[code] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Default returns the built-in eleven-item price list.
func Default() *Catalog {
	c, err := New([]domain.CatalogEntry{
		{Code: "DCH", Name: "Day chairs", DailyPence: 1500},
		{Code: "BCH", Name: "Bed chairs", DailyPence: 2500},
		{Code: "BAS", Name: "Bite Alarm (set of 3)", DailyPence: 2000},
		{Code: "BA1", Name: "Bite Alarm (single)", DailyPence: 500},
		{Code: "BBT", Name: "Bait Boat", DailyPence: 6000},
		{Code: "TNT", Name: "Camping tent", DailyPence: 2000},
		{Code: "SLP", Name: "Sleeping bag", DailyPence: 2000},
		{Code: "R3T", Name: "Rods (3lb TC)", DailyPence: 1000},
		{Code: "RBR", Name: "Rods (Bait runners)", DailyPence: 500},
		{Code: "REB", Name: "Reels (Bait runners)", DailyPence: 1000},
		{Code: "STV", Name: "Camping Gas stove (Double burner)", DailyPence: 1000},
	})
	if err != nil {
		// The built-in list is constant; a validation failure here is a bug.
		panic(err)
	}
	return c
}

// catalogFile is the YAML shape of an external price-list file.
type catalogFile struct {
	Items []domain.CatalogEntry `yaml:"items"`
}

// Load reads a price list from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	c, err := New(f.Items)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	return c, nil
}

// Lookup returns the entry for code, matching case-insensitively. Absence
// is an expected condition the caller handles, not an error.
func (c *Catalog) Lookup(code string) (domain.CatalogEntry, bool) {
	i, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return domain.CatalogEntry{}, false
	}
	return c.entries[i], true
}

// Codes returns the known item codes in price-list order.
func (c *Catalog) Codes() []string {
	codes := make([]string, len(c.entries))
	for i, e := range c.entries {
		codes[i] = e.Code
	}
	return codes
}

// Entries returns a copy of the price list in display order.
func (c *Catalog) Entries() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}
