// Package report renders the earnings report as a fixed-width text table.
// The layout follows the shop's report sheet: one row per hire, with the
// equipment column word-wrapped onto continuation rows when needed.
package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"tacklehire/internal/domain"
	"tacklehire/internal/money"
)

// Column widths other than the equipment column are fixed by the report
// sheet layout.
const (
	idWidth     = 11
	nightsWidth = 16
	totalWidth  = 10
	onTimeWidth = 22
	extraWidth  = 30

	// DefaultEquipmentWidth matches the reference sheet.
	DefaultEquipmentWidth = 65

	// MinEquipmentWidth keeps the header label and short item names intact.
	MinEquipmentWidth = 20

	emptyLedgerLine = "No hires recorded yet."
)

// Renderer produces the earnings table. Only the equipment column width is
// adjustable; zero or negative values fall back to the default.
type Renderer struct {
	equipmentWidth int
}

func NewRenderer(equipmentWidth int) *Renderer {
	if equipmentWidth < MinEquipmentWidth {
		equipmentWidth = DefaultEquipmentWidth
	}
	return &Renderer{equipmentWidth: equipmentWidth}
}

// Render returns the complete report as display lines: header, separator,
// one or more rows per hire, then a totals footer. An empty ledger renders
// a single informational line.
func (r *Renderer) Render(records []domain.HireRecord) []string {
	if len(records) == 0 {
		return []string{emptyLedgerLine}
	}

	out := []string{r.headerLine(), r.rulerLine()}

	grandTotal := 0
	grandLate := 0
	for _, h := range records {
		out = append(out, r.recordLines(h)...)
		grandTotal += h.TotalPence
		grandLate += h.LateReturnPence
	}

	out = append(out,
		r.rulerLine(),
		fmt.Sprintf("Grand total earnings: %s", money.Format(grandTotal)),
		fmt.Sprintf("Of which late-return charges: %s", money.Format(grandLate)),
	)
	return out
}

func (r *Renderer) headerLine() string {
	return fmt.Sprintf("%-*s | %-*s | %-*s | %-*s | %-*s | %s",
		idWidth, "Customer ID",
		r.equipmentWidth, "Equipment",
		nightsWidth, "Number of nights",
		totalWidth, "Total Cost",
		onTimeWidth, "Returned on time (y/n)",
		"Extra charge for delayed return")
}

func (r *Renderer) rulerLine() string {
	widths := []int{idWidth + 1, r.equipmentWidth + 2, nightsWidth + 2, totalWidth + 2, onTimeWidth + 2, extraWidth + 2}
	segments := make([]string, len(widths))
	for i, w := range widths {
		segments[i] = strings.Repeat("-", w)
	}
	return strings.Join(segments, "+")
}

// recordLines renders one hire. The first row carries every column; when
// the equipment summary wraps, continuation rows populate only the
// equipment column.
func (r *Renderer) recordLines(h domain.HireRecord) []string {
	onTime := "n"
	if h.ReturnedOnTime {
		onTime = "y"
	}

	equipment := wrapEquipment(h.EquipmentSummary, r.equipmentWidth)

	lines := []string{fmt.Sprintf("%-*d | %s | %-*d | %-*s | %-*s | %-*s",
		idWidth, h.CustomerID,
		equipment[0],
		nightsWidth, h.Nights,
		totalWidth, money.Format(h.TotalPence),
		onTimeWidth, onTime,
		extraWidth, money.Format(h.LateReturnPence))}

	for _, cont := range equipment[1:] {
		lines = append(lines, fmt.Sprintf("%-*s | %s | %-*s | %-*s | %-*s | %-*s",
			idWidth, "",
			cont,
			nightsWidth, "",
			totalWidth, "",
			onTimeWidth, "",
			extraWidth, ""))
	}
	return lines
}

// wrapEquipment word-wraps the comma-separated equipment summary to the
// column width, keeping each item intact where possible and chunking items
// longer than a whole line. Every returned line is padded to width.
func wrapEquipment(text string, width int) []string {
	var lines []string
	var cur string

	flush := func() {
		if cur != "" {
			lines = append(lines, pad(cur, width))
			cur = ""
		}
	}

	for _, raw := range strings.Split(text, ",") {
		item := strings.TrimSpace(raw)
		if item == "" {
			continue
		}

		// Widths count runes; summaries contain non-ASCII separators.
		runes := []rune(item)
		if len(runes) > width {
			flush()
			for start := 0; start < len(runes); start += width {
				end := start + width
				if end > len(runes) {
					end = len(runes)
				}
				lines = append(lines, pad(string(runes[start:end]), width))
			}
			continue
		}

		token := item
		if cur != "" {
			token = ", " + item
		}
		if utf8.RuneCountInString(cur)+utf8.RuneCountInString(token) <= width {
			cur += token
		} else {
			flush()
			cur = item
		}
	}

	if cur != "" || len(lines) == 0 {
		lines = append(lines, pad(cur, width))
	}
	return lines
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
