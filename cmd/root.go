// =============================================================================
// Subcontract Valuations Dashboard - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All subcommands
// (import, report, simulate, edit, export, serve, version) are attached here.
//
// COBRA CLI STRUCTURE:
//   rootCmd (subdash)
//   ├── importCmd   (subdash import)
//   ├── reportCmd   (subdash report)
//   ├── simulateCmd (subdash simulate)
//   ├── editCmd     (subdash edit)
//   ├── exportCmd   (subdash export)
//   ├── serveCmd    (subdash serve)
//   └── versionCmd  (subdash version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yrvking/dashboard-s10/internal/config"
	"github.com/Yrvking/dashboard-s10/internal/store"
)

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

// cfgFile holds the path to the configuration file, overridable with --config.
var cfgFile string

// verbose enables per-record output on commands that support it.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "subdash",
	Short: "Subcontract valuations dashboard over S10 spreadsheet exports",
	Long: `subdash ingests "Subcontratos_Administrador" spreadsheet exports, rebuilds
the provider / work order / weekly valuation hierarchy into a flat record
set, and keeps it in a local JSON snapshot.

On top of that snapshot it computes the dashboard views: financial KPIs,
per-provider and per-status summaries, critical open orders, guarantee-fund
metrics, and what-if progress projections.

Example Usage:
  subdash import export.xlsx        # Parse an export and replace the record set
  subdash report                    # Print KPIs and summaries
  subdash simulate --id 3 --target 80
  subdash serve                     # Expose the views as a JSON API`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output",
	)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig loads the configuration referenced by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// openStore builds the snapshot store for the loaded configuration.
func openStore(cfg *config.Config) *store.Store {
	return store.New(cfg.DataFile, cfg.SeedWhenEmpty)
}
