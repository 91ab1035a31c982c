package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tacklehire/internal/money"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the equipment price list",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-6s %-40s %s\n", "Code", "Item", "Price per night")
		for _, entry := range cat.Entries() {
			fmt.Fprintf(out, "%-6s %-40s %s\n", entry.Code, entry.Name, money.Format(entry.DailyPence))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
