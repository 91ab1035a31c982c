package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tacklehire/internal/catalog"
	"tacklehire/internal/logger"
	"tacklehire/internal/report"
	"tacklehire/internal/repository/memory"
	"tacklehire/internal/service"
	"tacklehire/internal/shell"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive hire-desk session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		ledger := memory.NewLedgerStore()
		hires := service.NewHireService(cat, ledger, cfg.Hire.FirstCustomerID)
		reports := service.NewReportService(ledger, report.NewRenderer(cfg.Report.EquipmentWidth))

		logger.Info("starting hire-desk session",
			"catalog_items", len(cat.Codes()),
			"first_customer_id", cfg.Hire.FirstCustomerID)

		sh := shell.New(os.Stdin, cmd.OutOrStdout(), cat, hires, reports)
		return sh.Run(cmd.Context())
	},
}

// loadCatalog uses the configured price-list file when one is named and
// the built-in list otherwise.
func loadCatalog() (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("loaded catalog file", "path", cfg.Catalog.Path, "items", len(cat.Codes()))
	return cat, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
