package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tacklehire/internal/catalog"
	"tacklehire/internal/domain"
	"tacklehire/internal/logger"
	"tacklehire/internal/pricing"
	"tacklehire/internal/repository"
)

type hireService struct {
	catalog        *catalog.Catalog
	ledger         repository.LedgerRepository
	nextCustomerID int
}

// NewHireService returns a hire builder that assigns customer ids
// sequentially starting at firstCustomerID. The counter belongs to this
// service instance; an id is consumed even if the hire is later discarded,
// so ids are never reused within a session.
func NewHireService(cat *catalog.Catalog, ledger repository.LedgerRepository, firstCustomerID int) HireService {
	return &hireService{
		catalog:        cat,
		ledger:         ledger,
		nextCustomerID: firstCustomerID,
	}
}

// CreateHire prices each requested item, assembles the hire record and
// appends it to the ledger. The input is expected to be validated already;
// unknown codes and empty item lists are reported as correctable errors.
func (s *hireService) CreateHire(ctx context.Context, customer domain.Customer, nights int, returnedOnTime bool, items []ItemRequest) (*domain.HireRecord, error) {
	if len(items) == 0 {
		return nil, domain.ErrNoLineItems
	}
	if nights < 1 {
		return nil, domain.ErrInvalidNights
	}

	lines := make([]domain.LineItem, 0, len(items))
	summary := make([]string, 0, len(items))
	total := 0
	lateReturn := 0

	for _, item := range items {
		entry, ok := s.catalog.Lookup(item.Code)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownItemCode, item.Code)
		}

		line, err := pricing.BuildLine(entry, item.Quantity, nights, returnedOnTime)
		if err != nil {
			return nil, fmt.Errorf("pricing item %q: %w", entry.Code, err)
		}

		lines = append(lines, line)
		summary = append(summary, fmt.Sprintf("%s – %d", line.Name, line.Quantity))
		total += line.LineTotalPence
		lateReturn += line.LateReturnPence
	}

	record := &domain.HireRecord{
		CustomerID:       s.nextCustomerID,
		Reference:        uuid.NewString(),
		Customer:         customer,
		Nights:           nights,
		ReturnedOnTime:   returnedOnTime,
		Lines:            lines,
		TotalPence:       total,
		LateReturnPence:  lateReturn,
		EquipmentSummary: strings.Join(summary, ", "),
	}
	s.nextCustomerID++

	if err := s.ledger.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save hire: %w", err)
	}

	logger.Info("hire saved",
		"customer_id", record.CustomerID,
		"reference", record.Reference,
		"lines", len(record.Lines),
		"total_pence", record.TotalPence)

	return record, nil
}
