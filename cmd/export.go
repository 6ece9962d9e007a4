// =============================================================================
// Subcontract Valuations Dashboard - Export Command
// =============================================================================
//
// This file defines the 'export' command, which writes the current record
// set out as a flat-layout .xlsx workbook. The generated file uses the
// header vocabulary the flat parser reads, so an exported workbook can be
// re-imported (user-entered fields travel in the snapshot, not in exports).
//
// COMMAND USAGE:
//   subdash export
//   subdash export --out ./exports --provider "ACERO PERUANO S.R.L."
//
// FLAGS:
//   --out      : Directory receiving the workbook (default "./exports")
//   --search   : Export only records matching a search term
//   --provider : Export only one provider's records
//   --status   : Export only records in one status
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Yrvking/dashboard-s10/internal/exporter"
	"github.com/Yrvking/dashboard-s10/internal/views"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	exportOut      string
	exportSearch   string
	exportProvider string
	exportStatus   string
)

// =============================================================================
// EXPORT COMMAND DEFINITION
// =============================================================================

// exportCmd represents the 'export' command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the record set as a flat-layout workbook",
	Long: `The export command renders the persisted record set (optionally filtered)
as a "DashboardData" sheet, one record per row, using the same column names
the flat-layout importer understands.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "./exports", "Directory receiving the workbook")
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "Export only records matching a search term")
	exportCmd.Flags().StringVar(&exportProvider, "provider", "", "Export only one provider's records")
	exportCmd.Flags().StringVar(&exportStatus, "status", "", "Export only records in one status")
}

// =============================================================================
// EXPORT EXECUTION
// =============================================================================

func runExport() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	records := views.Filter(openStore(cfg).Load(), views.Filters{
		Search:   exportSearch,
		Provider: exportProvider,
		Status:   exportStatus,
	})
	if len(records) == 0 {
		fmt.Println("Nada que exportar: ningún registro coincide con los filtros.")
		return nil
	}

	path, err := exporter.Write(records, exportOut)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("✓ Exportados %d registros a %s\n", len(records), path)
	return nil
}
