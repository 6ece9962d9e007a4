// =============================================================================
// Subcontract Valuations Dashboard - Row Classifier
// =============================================================================
//
// The hierarchical S10 export interleaves three kinds of data rows under a
// shared description column:
//   - provider rows   : the subcontractor name, scoping everything below
//   - work-order rows : "O.S. 0012 - Instalación ..." (or O.C. variants)
//   - weekly rows     : "SEMANA 3", one per valuation
//
// Classification is purely textual, by prefix. Export variants are sloppy
// about the separator after the order token ("OS ", "O.S.", "OS-", no space
// at all), so the work-order predicate carries a loose dot-tolerant pattern
// as a fallback.
//
// =============================================================================

package parser

import (
	"regexp"
	"strings"

	"github.com/Yrvking/dashboard-s10/internal/normalize"
)

// looseOrderPattern matches order tokens where the export omitted the space
// after the prefix, e.g. "O.S.0012" or "OS12".
var looseOrderPattern = regexp.MustCompile(`(?i)O\.?S\.?\s*\d+`)

// orderCodePattern captures the digits following an O.S./O.C. token,
// skipping leading zeros.
var orderCodePattern = regexp.MustCompile(`(?i)(O\.?S\.?|O\.?C\.?|OS|OC)[^\d]*0*([0-9]+)`)

// IsWeeklyRow reports whether the row text opens a weekly valuation block
// entry ("SEMANA n").
func IsWeeklyRow(text string) bool {
	return strings.HasPrefix(strings.ToUpper(normalize.Text(text)), "SEMANA ")
}

// IsWorkOrderRow reports whether the row text opens a work order.
func IsWorkOrderRow(text string) bool {
	d := strings.ToUpper(normalize.Text(text))
	if d == "" {
		return false
	}
	if strings.HasPrefix(d, "OS ") || strings.HasPrefix(d, "O.S.") || strings.HasPrefix(d, "OS-") {
		return true
	}
	if strings.HasPrefix(d, "OC ") || strings.HasPrefix(d, "O.C.") {
		return true
	}
	return looseOrderPattern.MatchString(d)
}

// ExtractOrderCode synthesizes a canonical service-order code from a
// work-order description: the digits following the order token, left-padded
// to four, rendered as "O.S. NNNN". Returns "" when no token is found.
func ExtractOrderCode(desc string) string {
	m := orderCodePattern.FindStringSubmatch(normalize.Text(desc))
	if m == nil {
		return ""
	}
	num := m[2]
	for len(num) < 4 {
		num = "0" + num
	}
	return "O.S. " + num
}

// ExtractContractName strips the leading order token from a work-order
// description: everything after the first hyphen, or the whole description
// when no hyphen is present.
func ExtractContractName(desc string) string {
	d := normalize.Text(desc)
	idx := strings.Index(d, "-")
	if idx == -1 {
		return d
	}
	return normalize.Text(d[idx+1:])
}
