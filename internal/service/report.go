package service

import (
	"context"
	"fmt"

	"tacklehire/internal/logger"
	"tacklehire/internal/report"
	"tacklehire/internal/repository"
)

type reportService struct {
	ledger   repository.LedgerRepository
	renderer *report.Renderer
}

func NewReportService(ledger repository.LedgerRepository, renderer *report.Renderer) ReportService {
	return &reportService{ledger: ledger, renderer: renderer}
}

// EarningsReport renders the earnings table over every hire recorded this
// session. An empty ledger is a valid state and renders an informational
// line rather than an empty table.
func (s *reportService) EarningsReport(ctx context.Context) ([]string, error) {
	records, err := s.ledger.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	logger.Debug("rendering earnings report", "hires", len(records))
	return s.renderer.Render(records), nil
}
