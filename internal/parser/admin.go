// =============================================================================
// Subcontract Valuations Dashboard - Hierarchical Parser
// =============================================================================
//
// Parser for the "Subcontratos_Administrador" export: a loosely structured
// sheet where row 0 is a title, rows 1-2 form a compound header, and data
// rows from row 3 interleave provider names, work orders and weekly
// valuations under a single description column.
//
// The scan is a single forward pass. The current provider is an accumulator
// threaded through the loop: any non-blank row that is neither a weekly row
// nor a work-order row (nor the "SUBCONTRATOS" section header) resets it.
// A work-order row opens a record and hands control to a sub-loop that
// consumes the contiguous weekly rows below it; the first non-blank,
// non-weekly row breaks the sub-loop WITHOUT being consumed, so the outer
// pass re-examines it (it may be the next provider or the next order).
//
// Failure mode: when the required columns cannot be located, or no parsed
// record passes the acceptance filter, the result is empty. The caller
// treats that as "unrecognized layout", surfaces a warning, and leaves the
// previous record set untouched.
//
// =============================================================================

package parser

import (
	"strings"

	"github.com/Yrvking/dashboard-s10/internal/normalize"
	"github.com/Yrvking/dashboard-s10/internal/sheet"
	"github.com/Yrvking/dashboard-s10/internal/types"
)

// Data rows start below the title row and the two header rows.
const dataStartRow = 3

// valuationNumberColumn is the fixed column (historically column C) holding
// the valuation number token on weekly rows.
const valuationNumberColumn = 2

// sectionHeader is the sheet-level section row skipped during the scan.
const sectionHeader = "SUBCONTRATOS"

// =============================================================================
// OPTIONS & LAYOUT DETECTION
// =============================================================================

// Options controls layout detection.
type Options struct {
	// StrictDetection additionally requires the "# Val." header marker
	// before a sheet is treated as the administrator layout. Some export
	// variants carry it, some do not; permissive detection is the default.
	StrictDetection bool
}

// LooksLikeAdministrador reports whether the raw matrix appears to be the
// hierarchical administrator layout: header row 1 contains a cell
// normalizing exactly to "Descripción" (and "# Val." under strict mode).
func LooksLikeAdministrador(m sheet.Matrix, opts Options) bool {
	if len(m) < 3 {
		return false
	}
	hasDesc, hasVal := false, false
	for _, cell := range m.Row(1) {
		switch normalize.Text(cell) {
		case "Descripción":
			hasDesc = true
		case "# Val.":
			hasVal = true
		}
	}
	if !hasDesc {
		return false
	}
	if opts.StrictDetection && !hasVal {
		return false
	}
	return true
}

// =============================================================================
// PARSE
// =============================================================================

// ParseAdministrador extracts one ContractRecord per work order from the
// raw matrix. Records missing a provider, a service-order code or a
// positive contracted amount are dropped. An empty result signals an
// unrecognized layout.
func ParseAdministrador(m sheet.Matrix) []types.ContractRecord {
	if len(m) < dataStartRow+1 {
		return nil
	}

	cols := locateAdminColumns(m.Row(1), m.Row(2))
	if !cols.requiredResolved() {
		return nil
	}

	var parsed []types.ContractRecord
	provider := ""

	r := dataStartRow
	for r < len(m) {
		desc := cols.desc.Text(m.Row(r))

		if desc == "" {
			r++
			continue
		}
		if strings.ToUpper(desc) == sectionHeader {
			r++
			continue
		}

		weekly := IsWeeklyRow(desc)
		order := IsWorkOrderRow(desc)

		// Provider row: reset the running scope.
		if !weekly && !order {
			provider = desc
			r++
			continue
		}

		// Stray weekly row outside an order block.
		if weekly {
			r++
			continue
		}

		rec, next := parseOrderBlock(m, cols, provider, desc, r)
		parsed = append(parsed, rec)
		r = next
	}

	// Acceptance filter.
	accepted := make([]types.ContractRecord, 0, len(parsed))
	for _, rec := range parsed {
		if rec.Provider != "" && rec.ServiceOrderCode != "" && rec.ContractedAmount > 0 {
			accepted = append(accepted, rec)
		}
	}
	return accepted
}

// parseOrderBlock reads the work-order row at r and the contiguous weekly
// rows below it. It returns the record and the index of the first row it
// did not consume.
func parseOrderBlock(m sheet.Matrix, cols adminColumns, provider, desc string, r int) (types.ContractRecord, int) {
	row := m.Row(r)

	contracted := cols.contracted.Number(row)
	directCost := cols.directCost.Number(row)
	advCalc := cols.advCalc.Number(row)
	advGranted := cols.advGranted.Number(row)
	advAmort := cols.advAmort.Number(row)

	advance := advGranted
	if advance == 0 {
		advance = advCalc
	}

	orderCode := cols.orderCode.Text(row)
	if orderCode == "" {
		orderCode = ExtractOrderCode(desc)
	}

	rec := types.ContractRecord{
		Provider:          normalize.Text(provider),
		Description:       desc,
		ContractName:      ExtractContractName(desc),
		Specialty:         cols.specialty.Text(row),
		ServiceOrderCode:  orderCode,
		ContractedAmount:  contracted,
		DirectCost:        directCost,
		ProgressPct:       cols.progressPct.Number(row),
		AdvanceCalculated: nonZero(advCalc),
		AdvanceGranted:    nonZero(advGranted),
		AdvanceAmortized:  nonZero(advAmort),
		Advance:           advance,
		RetainedOnOrder:   cols.retained.Number(row),
	}

	if cols.pendingBy.Resolved() {
		rec.PendingBy = types.Float(cols.pendingBy.Number(row))
	}
	if contracted != 0 && directCost != 0 {
		rec.BalanceToExecute = types.Float(contracted - directCost)
	}
	if advance != 0 && advAmort != 0 {
		rec.AdvanceBalance = types.Float(advance - advAmort)
	}

	// Weekly sub-loop: consume contiguous valuation rows. Blank rows are
	// structural, skip them; any other row ends the block and stays
	// unconsumed for the outer pass.
	next := r + 1
	for next < len(m) {
		wdesc := cols.desc.Text(m.Row(next))
		if wdesc == "" {
			next++
			continue
		}
		if !IsWeeklyRow(wdesc) {
			break
		}

		wrow := m.Row(next)
		var number *string
		if raw := m.Cell(next, valuationNumberColumn); raw != "" {
			number = types.String(raw)
		}

		rec.WeeklyValuations = append(rec.WeeklyValuations, types.WeeklyValuation{
			Number:      number,
			Description: wdesc,
			ProgressPct: cols.progressPct.Number(wrow),
			DirectCost:  cols.directCost.Number(wrow),
			Retained:    cols.retained.Number(wrow),
		})
		next++
	}

	if len(rec.WeeklyValuations) > 0 {
		total := 0.0
		for _, v := range rec.WeeklyValuations {
			total += v.Retained
		}
		rec.RetainedTotal = total
	} else {
		rec.RetainedTotal = rec.RetainedOnOrder
	}

	return rec, next
}

// nonZero returns a pointer to v, or nil when v is zero. The export leaves
// advance cells at 0 when no advance exists, which downstream treats as
// absent.
func nonZero(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return types.Float(v)
}
