// =============================================================================
// Subcontract Valuations Dashboard - Import Command
// =============================================================================
//
// This file defines the 'import' command, which ingests one or more
// spreadsheet exports and replaces the persisted record set.
//
// COMMAND USAGE:
//   subdash import <workbook.xlsx> [more.xls ...]
//   subdash import --dir ./exports
//
// FLAGS:
//   --dir     : Import every workbook found in a directory
//   --dry-run : Parse and report, but do not touch the snapshot
//
// Each file is parsed independently; a rejected file (unrecognized layout
// or zero valid records) prints its warning and leaves the snapshot as it
// was, while the remaining files still import.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Yrvking/dashboard-s10/internal/config"
	"github.com/Yrvking/dashboard-s10/internal/enrich"
	"github.com/Yrvking/dashboard-s10/internal/importer"
	"github.com/Yrvking/dashboard-s10/internal/parser"
	"github.com/Yrvking/dashboard-s10/internal/sheet"
	"github.com/Yrvking/dashboard-s10/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// importDir imports every workbook in a directory instead of named files.
var importDir string

// importDryRun parses without persisting.
var importDryRun bool

// =============================================================================
// IMPORT COMMAND DEFINITION
// =============================================================================

// importCmd represents the 'import' command.
var importCmd = &cobra.Command{
	Use:   "import [workbook ...]",
	Short: "Parse spreadsheet exports and replace the record set",
	Long: `The import command reads each workbook, prefers a sheet named
"Subcontratos" (then "DashboardData", then the first sheet), detects whether
it is the hierarchical administrator export or a flat table, and parses it
into dashboard records.

The parsed set replaces the persisted one wholesale; only the user-entered
fields (closed flag, internal note) are carried forward, matched by the
provider / order / contract natural key. A workbook that yields zero valid
records is rejected with a warning and changes nothing.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(args)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(
		&importDir,
		"dir",
		"",
		"Import every workbook found in this directory",
	)

	importCmd.Flags().BoolVar(
		&importDryRun,
		"dry-run",
		false,
		"Parse and report without writing the snapshot",
	)
}

// =============================================================================
// MAIN IMPORT FUNCTION
// =============================================================================

func runImport(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	files := args
	if importDir != "" {
		discovered, err := utils.DiscoverWorkbooks(importDir)
		if err != nil {
			return fmt.Errorf("failed to discover workbooks: %w", err)
		}
		files = append(files, discovered...)
	}
	if len(files) == 0 {
		return fmt.Errorf("nothing to import: pass workbook paths or --dir")
	}

	if importDryRun {
		return dryRunImport(cfg, files)
	}

	imp := importer.New(cfg, openStore(cfg))

	var okCount, failCount int
	for _, file := range files {
		res := imp.Run(file)
		switch {
		case res.Err != nil:
			failCount++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(file), res.Err)
		case !res.Success:
			failCount++
			fmt.Printf("  ✗ %s: %s\n", filepath.Base(file), res.Warning)
		default:
			okCount++
			fmt.Printf("  ✓ %s [%s/%s] -> %d registros (%d con campos manuales conservados)\n",
				filepath.Base(file), res.Sheet, res.Layout, res.Imported, res.Carried)
			if res.ArchivePath != "" {
				fmt.Printf("    archivado en %s\n", res.ArchivePath)
			}
		}
	}

	fmt.Printf("\nImportados: %d  Rechazados: %d\n", okCount, failCount)
	return nil
}

// dryRunImport parses each workbook and reports what an import would do.
func dryRunImport(cfg *config.Config, files []string) error {
	opts := parser.Options{StrictDetection: cfg.StrictLayoutDetection}

	for _, file := range files {
		matrix, sheetName, err := sheet.ReadMatrix(file, cfg.PreferredSheets)
		if err != nil {
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(file), err)
			continue
		}

		if parser.LooksLikeAdministrador(matrix, opts) {
			contracts := parser.ParseAdministrador(matrix)
			fmt.Printf("  • %s [%s/%s]: %d órdenes válidas\n",
				filepath.Base(file), sheetName, importer.LayoutAdministrador, len(contracts))
			if verbose {
				for _, rec := range enrich.FromContracts(contracts) {
					fmt.Printf("      %-12s %-30.30s %12.2f\n",
						rec.ServiceOrderCode, rec.Provider, rec.Contracted)
				}
			}
			continue
		}

		records := parser.ParseFlat(matrix)
		fmt.Printf("  • %s [%s/%s]: %d registros válidos\n",
			filepath.Base(file), sheetName, importer.LayoutFlat, len(records))
	}
	return nil
}
