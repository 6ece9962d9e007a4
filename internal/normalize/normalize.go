// =============================================================================
// Subcontract Valuations Dashboard - Cell Normalizers
// =============================================================================
//
// Best-effort coercion of raw spreadsheet cell text into the values the
// parser works with. The S10 exports this dashboard targets are loosely
// structured: numeric columns may carry locale-formatted strings with
// thousands separators, text columns may carry stray whitespace, and any
// cell may simply be empty.
//
// Both normalizers are total: they never return an error. An unparseable
// numeric cell coerces to 0 rather than failing the import; malformed cells
// are far more often cosmetic (a dash, a note, a merged-cell artifact) than
// meaningful, and the import boundary still rejects layouts where the
// required columns cannot be located at all.
//
// The package also holds the display formatters (PEN currency under es-PE
// conventions, percentages) used by the report and serve commands.
//
// =============================================================================

package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// =============================================================================
// NORMALIZERS
// =============================================================================

// Text trims the cell and collapses internal whitespace runs to single
// spaces. Empty or absent cells normalize to "".
func Text(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

// Number coerces a cell to a numeric value. Thousands-separator commas are
// stripped before parsing. Empty or unparseable cells coerce to 0.
func Number(v string) float64 {
	s := strings.TrimSpace(v)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return n
}

// =============================================================================
// DISPLAY FORMATTERS
// =============================================================================

// printer renders numbers under Peruvian Spanish conventions. Display only;
// stored amounts stay plain floats.
var printer = message.NewPrinter(language.MustParse("es-PE"))

// Currency formats an amount as PEN, e.g. "S/ 118,000.00".
func Currency(v float64) string {
	return printer.Sprintf("%v", currency.Symbol(currency.MustParseISO("PEN").Amount(v)))
}

// Percent formats a percentage with two decimals, e.g. "59.00%".
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
