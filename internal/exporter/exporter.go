// =============================================================================
// Subcontract Valuations Dashboard - Workbook Exporter
// =============================================================================
//
// This module writes the current record set back out as a flat-layout
// workbook, the shape the flat parser reads. Exported files round-trip:
// importing an exported workbook reproduces the record set (modulo the
// user-entered fields, which travel in the snapshot, not in exports).
//
// SHEET STRUCTURE:
//   Sheet "DashboardData", row 1 as header, one record per row:
//
//   | Subcontratista | Especialidad | N° Subcontrato | N° O.C. / O.S. | ...
//   | ACME S.A.C.    | ELECTRICA    | 001            | O.S. 0012      | ...
//
//   Monetary cells are written as numbers so spreadsheet consumers can keep
//   aggregating them; labels and dates stay text.
//
// =============================================================================

package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/Yrvking/dashboard-s10/internal/types"
)

// SheetName is the sheet the exporter writes and the flat parser prefers.
const SheetName = "DashboardData"

// headerRow lists the flat-layout columns, in the order the original
// dashboard exported them. The names must stay in the flat parser's
// vocabulary or round-tripping breaks.
var headerRow = []string{
	"Subcontratista",
	"Especialidad",
	"N° Subcontrato",
	"N° O.C. / O.S.",
	"Contratado (S/.)",
	"Costo Directo (S/.)",
	"% Avance",
	"Valorización",
	"Estado",
	"Comentarios",
	"Fecha",
	"Subcontrato",
	"Adelanto Calculado",
	"Adelanto Amortizado",
	"Retenido",
}

// Write renders records as a flat-layout .xlsx workbook in dir and returns
// the generated file path. The file name carries a timestamp and a short
// unique suffix so repeated exports never collide.
func Write(records []types.DashboardRecord, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return "", fmt.Errorf("failed to name export sheet: %w", err)
	}

	header := make([]interface{}, len(headerRow))
	for i, name := range headerRow {
		header[i] = name
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return "", fmt.Errorf("failed to write header row: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		row := recordRow(rec)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	name := fmt.Sprintf("subcontratos_%s_%s.xlsx",
		time.Now().Format("20060102"), uuid.New().String()[:8])
	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

// recordRow maps one record onto the header columns.
func recordRow(rec types.DashboardRecord) []interface{} {
	return []interface{}{
		rec.Provider,
		rec.Specialty,
		text(rec.ContractNumber),
		rec.ServiceOrderCode,
		rec.Contracted,
		rec.DirectCost,
		rec.ProgressPct,
		text(rec.ValuationLabel),
		rec.Status,
		rec.Comments,
		text(rec.Date),
		rec.ContractName,
		number(rec.AdvanceCalculated),
		number(rec.AdvanceAmortized),
		rec.Retained,
	}
}

func text(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func number(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
