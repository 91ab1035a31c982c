// Package pricing implements the shop's nightly-rate calculation. The
// first night is charged at the full daily rate, every additional night at
// half the daily rate, and a late return adds exactly one more half-night
// charge regardless of how many nights were billed.
package pricing

import (
	"tacklehire/internal/domain"
)

// LineCosts is the cost breakdown for one item line, in integer pence.
type LineCosts struct {
	FirstNightPence       int
	AdditionalNightsPence int
	LateReturnPence       int
}

// TotalPence returns the full charge for the line.
func (lc LineCosts) TotalPence() int {
	return lc.FirstNightPence + lc.AdditionalNightsPence + lc.LateReturnPence
}

// Calculate computes the cost breakdown for quantity units hired for nights
// nights at dailyPence per unit per night.
//
// The half-night rate is floor-divided; the truncation is part of the
// pricing rules, not an approximation. Callers are expected to have
// validated quantity and nights already, so a violation here reports a
// malformed-input failure rather than prompting correction.
func Calculate(dailyPence, quantity, nights int, returnedOnTime bool) (LineCosts, error) {
	if quantity < 1 {
		return LineCosts{}, domain.ErrInvalidQuantity
	}
	if nights < 1 {
		return LineCosts{}, domain.ErrInvalidNights
	}

	firstNight := dailyPence * quantity
	perAdditionalNight := firstNight / 2

	costs := LineCosts{
		FirstNightPence:       firstNight,
		AdditionalNightsPence: perAdditionalNight * (nights - 1),
	}
	if !returnedOnTime {
		costs.LateReturnPence = perAdditionalNight
	}
	return costs, nil
}

// BuildLine prices a catalog entry into a complete hire line.
func BuildLine(entry domain.CatalogEntry, quantity, nights int, returnedOnTime bool) (domain.LineItem, error) {
	costs, err := Calculate(entry.DailyPence, quantity, nights, returnedOnTime)
	if err != nil {
		return domain.LineItem{}, err
	}

	return domain.LineItem{
		Code:                  entry.Code,
		Name:                  entry.Name,
		Quantity:              quantity,
		DailyPence:            entry.DailyPence,
		FirstNightPence:       costs.FirstNightPence,
		AdditionalNightsPence: costs.AdditionalNightsPence,
		LateReturnPence:       costs.LateReturnPence,
		LineTotalPence:        costs.TotalPence(),
	}, nil
}
