// =============================================================================
// Subcontract Valuations Dashboard - Import Pipeline
// =============================================================================
//
// This module orchestrates a single workbook import, from file to persisted
// snapshot.
//
// IMPORT PIPELINE:
//   1. Read the selected sheet as a raw matrix (no header interpretation)
//   2. Detect the layout: hierarchical administrator export vs. flat table
//   3. Parse with the matching parser
//   4. Map parsed records into dashboard records
//   5. Merge with the previous snapshot (carry forward closed/internal note)
//   6. Persist the merged set and optionally archive the workbook
//
// FAILURE POLICY:
//   An import that yields zero valid records — unrecognized layout or a
//   recognized layout with nothing passing the acceptance filter — is a
//   no-op: the Result carries a user-facing warning and the previous record
//   set stays untouched. Only I/O-level problems (unreadable file, failed
//   snapshot write) surface as errors.
//
// =============================================================================

package importer

import (
	"fmt"

	"github.com/Yrvking/dashboard-s10/internal/config"
	"github.com/Yrvking/dashboard-s10/internal/enrich"
	"github.com/Yrvking/dashboard-s10/internal/parser"
	"github.com/Yrvking/dashboard-s10/internal/sheet"
	"github.com/Yrvking/dashboard-s10/internal/store"
	"github.com/Yrvking/dashboard-s10/internal/types"
	"github.com/Yrvking/dashboard-s10/pkg/utils"
)

// Layout names reported in Result.
const (
	LayoutAdministrador = "administrador"
	LayoutFlat          = "flat"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of importing a single workbook.
type Result struct {
	// FilePath is the imported workbook.
	FilePath string

	// Success indicates whether the record set was replaced.
	Success bool

	// Sheet and Layout describe what was detected and parsed.
	Sheet  string
	Layout string

	// Imported is the number of records in the new set; Carried is how
	// many of them kept user-entered fields from the previous set.
	Imported int
	Carried  int

	// Warning is the user-facing message on a rejected import (zero valid
	// records). Empty on success.
	Warning string

	// ArchivePath is where the workbook was moved, when archival is on.
	ArchivePath string

	// Err is set for I/O-level failures only.
	Err error
}

// =============================================================================
// IMPORTER
// =============================================================================

// Importer runs workbook imports against a snapshot store.
type Importer struct {
	cfg *config.Config
	st  *store.Store
}

// New creates an Importer.
func New(cfg *config.Config, st *store.Store) *Importer {
	return &Importer{cfg: cfg, st: st}
}

// Run imports one workbook and persists the merged record set.
func (imp *Importer) Run(path string) Result {
	res := Result{FilePath: path}

	matrix, sheetName, err := sheet.ReadMatrix(path, imp.cfg.PreferredSheets)
	if err != nil {
		res.Err = fmt.Errorf("failed to read workbook: %w", err)
		return res
	}
	res.Sheet = sheetName

	imported := parseMatrix(matrix, parser.Options{StrictDetection: imp.cfg.StrictLayoutDetection}, &res)
	if len(imported) == 0 {
		if res.Warning == "" {
			res.Warning = "No se encontraron registros válidos en la hoja seleccionada. Revisa los nombres de las columnas."
		}
		return res
	}

	previous := imp.st.Load()
	merged := enrich.Merge(previous, imported)
	res.Imported = len(merged)
	res.Carried = enrich.CarriedCount(previous, imported)

	if err := imp.st.Save(merged); err != nil {
		res.Err = fmt.Errorf("failed to persist snapshot: %w", err)
		return res
	}

	if imp.cfg.ArchiveOnImport {
		archived, err := utils.ArchiveWorkbook(path, imp.cfg.ArchiveDir)
		if err == nil {
			res.ArchivePath = archived
		}
		// Archival is a courtesy; a failure never rolls back the import.
	}

	res.Success = true
	return res
}

// parseMatrix detects the layout and runs the matching parser, recording
// layout details and warnings on res.
func parseMatrix(matrix sheet.Matrix, opts parser.Options, res *Result) []types.DashboardRecord {
	if parser.LooksLikeAdministrador(matrix, opts) {
		res.Layout = LayoutAdministrador
		contracts := parser.ParseAdministrador(matrix)
		if len(contracts) == 0 {
			res.Warning = "No se encontraron registros válidos en el formato de Subcontratos_Administrador. Revisa que el layout no haya cambiado."
			return nil
		}
		return enrich.FromContracts(contracts)
	}

	res.Layout = LayoutFlat
	return parser.ParseFlat(matrix)
}
