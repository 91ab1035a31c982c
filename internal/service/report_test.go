package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tacklehire/internal/catalog"
	"tacklehire/internal/domain"
	"tacklehire/internal/report"
	"tacklehire/internal/repository/memory"
)

func TestReportService_EarningsReport(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty ledger", func(t *testing.T) {
		ledger := memory.NewLedgerStore()
		svc := NewReportService(ledger, report.NewRenderer(report.DefaultEquipmentWidth))

		lines, err := svc.EarningsReport(ctx)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "No hires recorded yet.", lines[0])
	})

	t.Run("Grand total matches the recorded hires", func(t *testing.T) {
		ledger := memory.NewLedgerStore()
		hires := NewHireService(catalog.Default(), ledger, 101)
		reports := NewReportService(ledger, report.NewRenderer(report.DefaultEquipmentWidth))

		customer := domain.Customer{Name: "Jane Smith"}
		_, err := hires.CreateHire(ctx, customer, 1, true, []ItemRequest{{Code: "DCH", Quantity: 1}})
		require.NoError(t, err)
		_, err = hires.CreateHire(ctx, customer, 2, true, []ItemRequest{{Code: "BCH", Quantity: 1}})
		require.NoError(t, err)
		_, err = hires.CreateHire(ctx, customer, 1, false, []ItemRequest{{Code: "DCH", Quantity: 1}})
		require.NoError(t, err)

		lines, err := reports.EarningsReport(ctx)
		require.NoError(t, err)

		// 1500 + 3750 + 2250 across three hires, 750 of it late charges.
		assert.Contains(t, lines, "Grand total earnings: £75.00")
		assert.Contains(t, lines, "Of which late-return charges: £7.50")

		var ids []string
		for _, line := range lines {
			if strings.HasPrefix(line, "10") {
				ids = append(ids, strings.Fields(line)[0])
			}
		}
		assert.Equal(t, []string{"101", "102", "103"}, ids, "rows should appear in ledger order")
	})
}
