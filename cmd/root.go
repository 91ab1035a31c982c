package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"tacklehire/internal/config"
	"tacklehire/internal/logger"
)

// cfgFile holds the path to the configuration file, settable via --config.
var cfgFile string

// cfg is populated before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "tacklehire",
	Short: "Equipment hire desk for a fishing and camping shop",
	Long: `tacklehire records customer hires against the shop's fixed price list
and produces an earnings report. All records live for the session only;
nothing is persisted between runs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env file is optional; real environment variables win either way.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logger.Initialize(cfg.Log.Level, cfg.Log.Format)
		return nil
	},
}

// Execute runs the CLI, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to configuration file (optional)")
}
