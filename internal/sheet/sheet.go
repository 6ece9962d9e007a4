// =============================================================================
// Subcontract Valuations Dashboard - Workbook Reader
// =============================================================================
//
// This module reads a spreadsheet workbook into a raw cell matrix, with no
// header interpretation. Layout detection and parsing happen downstream in
// the parser package; this module only answers two questions:
//   1. Which sheet should be read? Preference order is "Subcontratos",
//      then "DashboardData", then the first sheet in the workbook.
//   2. What does that sheet contain, row by row, column by column?
//
// Both .xlsx (excelize) and legacy .xls (extrame/xls) workbooks are
// supported; the dispatch is purely by file extension.
//
// =============================================================================

package sheet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// =============================================================================
// RAW MATRIX
// =============================================================================

// Matrix is a sheet read as raw rows of cell text. Rows may be ragged;
// use Cell for bounds-safe access. Row positions are preserved, including
// fully blank rows, because the hierarchical layout is positional (title
// row, two header rows, data from row 3).
type Matrix [][]string

// Cell returns the cell at (row, col), or "" when the coordinate falls
// outside the matrix.
func (m Matrix) Cell(row, col int) string {
	if row < 0 || row >= len(m) {
		return ""
	}
	r := m[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Row returns row i, or nil when out of range.
func (m Matrix) Row(i int) []string {
	if i < 0 || i >= len(m) {
		return nil
	}
	return m[i]
}

// =============================================================================
// READING
// =============================================================================

// ReadMatrix opens the workbook at path, selects a sheet by preference
// order, and returns its raw matrix along with the selected sheet name.
func ReadMatrix(path string, preferred []string) (Matrix, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readXLSX(path, preferred)
	case ".xls":
		return readXLS(path, preferred)
	default:
		return nil, "", fmt.Errorf("unsupported workbook format: %s", filepath.Ext(path))
	}
}

// pickSheet returns the first preferred name present in names, or the first
// sheet when none match.
func pickSheet(names, preferred []string) string {
	if len(names) == 0 {
		return ""
	}
	for _, want := range preferred {
		for _, name := range names {
			if name == want {
				return name
			}
		}
	}
	return names[0]
}

// readXLSX reads a modern workbook via excelize.
func readXLSX(path string, preferred []string) (Matrix, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	name := pickSheet(f.GetSheetList(), preferred)
	if name == "" {
		return nil, "", fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read sheet %q: %w", name, err)
	}
	return Matrix(rows), name, nil
}

// readXLS reads a legacy workbook via extrame/xls.
func readXLS(path string, preferred []string) (Matrix, string, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, "", fmt.Errorf("failed to open workbook: %w", err)
	}

	names := make([]string, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		if s := wb.GetSheet(i); s != nil {
			names = append(names, s.Name)
		}
	}

	name := pickSheet(names, preferred)
	if name == "" {
		return nil, "", fmt.Errorf("workbook has no sheets")
	}

	var ws *xls.WorkSheet
	for i := 0; i < wb.NumSheets(); i++ {
		if s := wb.GetSheet(i); s != nil && s.Name == name {
			ws = s
			break
		}
	}
	if ws == nil {
		return nil, "", fmt.Errorf("sheet %q not found", name)
	}

	// Blank rows come back nil; keep them as empty rows so positional
	// layout detection still lines up.
	matrix := make(Matrix, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			matrix = append(matrix, nil)
			continue
		}
		cols := make([]string, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cols[j] = row.Col(j)
		}
		matrix = append(matrix, cols)
	}
	return matrix, name, nil
}
