// =============================================================================
// Subcontract Valuations Dashboard - Column Locator
// =============================================================================
//
// The hierarchical export carries a compound two-level header: row 1 holds
// grouping labels ("Adelantos", "Valorizado"), row 2 holds sub-labels
// ("Calculado", "%"). Column positions shift between exports, so fields are
// located by fuzzy header text instead of fixed indices.
//
// A matcher predicate sees the normalized text of both header cells at a
// column. The search runs in three passes, widening the signal it accepts:
//   1. both header rows jointly
//   2. row 1 alone
//   3. row 2 alone
// The first matching column wins. Unresolved columns are an explicit state
// of the Column type, never a sentinel index, so readers are forced to
// handle the missing-column case.
//
// =============================================================================

package parser

import (
	"strings"

	"github.com/Yrvking/dashboard-s10/internal/normalize"
)

// =============================================================================
// COLUMN TYPE
// =============================================================================

// Column is a located-or-unresolved column index.
type Column struct {
	index int
	ok    bool
}

// Resolved reports whether the column was located.
func (c Column) Resolved() bool {
	return c.ok
}

// Text returns the normalized cell text of this column in row, or "" when
// the column is unresolved or the row is too short.
func (c Column) Text(row []string) string {
	if !c.ok || c.index >= len(row) {
		return ""
	}
	return normalize.Text(row[c.index])
}

// Number returns the coerced numeric value of this column in row, or 0 when
// the column is unresolved.
func (c Column) Number(row []string) float64 {
	if !c.ok || c.index >= len(row) {
		return 0
	}
	return normalize.Number(row[c.index])
}

// =============================================================================
// LOCATING
// =============================================================================

// matcher decides whether the column at index col, with normalized header
// texts h1 (grouping row) and h2 (sub-label row), carries a given field.
type matcher func(h1, h2 string, col int) bool

// locate scans the two header rows for the first column satisfying m, in
// the three-pass order described above.
func locate(header1, header2 []string, m matcher) Column {
	cell := func(row []string, i int) string {
		if i >= len(row) {
			return ""
		}
		return normalize.Text(row[i])
	}

	for i := range header1 {
		if m(cell(header1, i), cell(header2, i), i) {
			return Column{index: i, ok: true}
		}
	}
	for i := range header1 {
		if m(cell(header1, i), "", i) {
			return Column{index: i, ok: true}
		}
	}
	for i := range header2 {
		if m("", cell(header2, i), i) {
			return Column{index: i, ok: true}
		}
	}
	return Column{}
}

// contains is the case-insensitive substring test used by fuzzy matchers.
func contains(txt, token string) bool {
	return txt != "" && strings.Contains(strings.ToLower(txt), strings.ToLower(token))
}

// =============================================================================
// ADMINISTRATOR-LAYOUT COLUMNS
// =============================================================================

// adminColumns holds the located columns of the hierarchical layout.
// desc, contracted, progressPct and directCost are required; the rest
// degrade to zero/absent values when missing from an export.
type adminColumns struct {
	desc        Column
	specialty   Column
	contracted  Column
	progressPct Column
	directCost  Column
	retained    Column
	advCalc     Column
	advGranted  Column
	advAmort    Column
	pendingBy   Column
	orderCode   Column
}

// locateAdminColumns resolves every field of the administrator layout
// against the two header rows.
func locateAdminColumns(header1, header2 []string) adminColumns {
	return adminColumns{
		desc: locate(header1, header2, func(h1, _ string, _ int) bool {
			return h1 == "Descripción"
		}),
		specialty: locate(header1, header2, func(h1, _ string, _ int) bool {
			return h1 == "Especialidad"
		}),
		contracted: locate(header1, header2, func(h1, _ string, _ int) bool {
			return contains(h1, "Contratado")
		}),
		progressPct: locate(header1, header2, func(h1, h2 string, _ int) bool {
			return contains(h1, "Valorizado") && (h2 == "%" || contains(h2, "%"))
		}),
		directCost: locate(header1, header2, func(h1, h2 string, _ int) bool {
			return contains(h1, "Costo Directo") || contains(h2, "Costo Directo")
		}),
		retained: locate(header1, header2, func(h1, h2 string, _ int) bool {
			return contains(h1, "Retenido") || contains(h2, "Retenido")
		}),
		advCalc: locate(header1, header2, func(h1, h2 string, _ int) bool {
			return (contains(h1, "Adelanto") || contains(h1, "Adelantos")) &&
				(contains(h2, "Calculado") || contains(h2, "Calc"))
		}),
		advGranted: locate(header1, header2, func(h1, h2 string, _ int) bool {
			return (contains(h1, "Adelanto") || contains(h1, "Adelantos")) &&
				contains(h2, "Otorg")
		}),
		advAmort: locate(header1, header2, func(h1, h2 string, _ int) bool {
			return (contains(h1, "Adelanto") || contains(h1, "Adelantos") || contains(h2, "Adelanto")) &&
				(contains(h2, "Amort") || contains(h1, "Amort"))
		}),
		pendingBy: locate(header1, header2, func(h1, _ string, _ int) bool {
			return contains(h1, "Pendiente por")
		}),
		orderCode: locate(header1, header2, func(h1, _ string, _ int) bool {
			return contains(h1, "O.C.") || contains(h1, "O.S.")
		}),
	}
}

// requiredResolved reports whether all columns the parse cannot run without
// were located. A false result means "unrecognized layout" to the caller.
func (c adminColumns) requiredResolved() bool {
	return c.desc.Resolved() &&
		c.contracted.Resolved() &&
		c.directCost.Resolved() &&
		c.progressPct.Resolved()
}
