package service

import (
	"context"

	"tacklehire/internal/domain"
)

// ItemRequest is one validated (code, quantity) pair entered for a hire.
type ItemRequest struct {
	Code     string
	Quantity int
}

type HireService interface {
	CreateHire(ctx context.Context, customer domain.Customer, nights int, returnedOnTime bool, items []ItemRequest) (*domain.HireRecord, error)
}

type ReportService interface {
	EarningsReport(ctx context.Context) ([]string, error)
}
