// =============================================================================
// Subcontract Valuations Dashboard - Record Enricher
// =============================================================================
//
// This module guarantees the record schema. Records reach the dashboard
// from three provenances — a hierarchical import, a flat-layout import, or
// a persisted snapshot — and none of them is trusted to carry every field.
// Enrich is total and idempotent: applied to any partial record it fills
// every field with its documented default, and applied twice it changes
// nothing.
//
// It also owns the identity rules:
//   - IDs are reassigned sequentially (1..N) on every load or import.
//   - The natural key (uppercased provider / order code / contract name) is
//     the only identity stable across imports; Merge uses it to carry the
//     user-entered fields (closed flag, internal note) forward while every
//     imported field is replaced wholesale.
//
// =============================================================================

package enrich

import (
	"strings"

	"github.com/Yrvking/dashboard-s10/internal/normalize"
	"github.com/Yrvking/dashboard-s10/internal/types"
)

// =============================================================================
// ENRICH
// =============================================================================

// Enrich fills every unset field of rec with its default and assigns id.
// Defaults: numeric fields 0, optional descriptive fields nil, status
// "Sin Estado", closed false, internal note "", valuations empty list, and
// the direct-cost budget computed as contracted / 1.18 when absent.
func Enrich(rec types.DashboardRecord, id int) types.DashboardRecord {
	rec.ID = id

	if rec.Status == "" {
		rec.Status = types.StatusNone
	}
	if rec.Valuations == nil {
		rec.Valuations = []types.WeeklyValuation{}
	}
	if rec.DirectCostBudget == 0 && rec.Contracted != 0 {
		rec.DirectCostBudget = rec.Contracted / types.TaxFactor
	}
	return rec
}

// EnrichAll enriches a whole record set, reassigning ids 1..N in order.
func EnrichAll(records []types.DashboardRecord) []types.DashboardRecord {
	out := make([]types.DashboardRecord, len(records))
	for i, rec := range records {
		out[i] = Enrich(rec, i+1)
	}
	return out
}

// =============================================================================
// CONTRACT -> DASHBOARD MAPPING
// =============================================================================

// FromContract maps a parsed work-order record into a dashboard record.
// Status is derived from progress: essentially complete orders (>= 99.9%)
// are closing, started orders are in progress, untouched orders are still
// being drafted.
func FromContract(c types.ContractRecord) types.DashboardRecord {
	status := types.StatusDrafting
	switch {
	case c.ProgressPct >= 99.9:
		status = types.StatusClosing
	case c.ProgressPct > 0:
		status = types.StatusInProgress
	}

	retained := c.RetainedTotal
	if retained == 0 {
		retained = c.RetainedOnOrder
	}

	name := c.ContractName
	if name == "" {
		name = c.Description
	}

	rec := types.DashboardRecord{
		Provider:          c.Provider,
		Specialty:         c.Specialty,
		ServiceOrderCode:  c.ServiceOrderCode,
		Contracted:        c.ContractedAmount,
		DirectCost:        c.DirectCost,
		ProgressPct:       c.ProgressPct,
		Status:            status,
		Advance:           c.Advance,
		AdvanceCalculated: c.AdvanceCalculated,
		AdvanceAmortized:  c.AdvanceAmortized,
		PendingBy:         c.PendingBy,
		BalanceToExecute:  c.BalanceToExecute,
		AdvanceBalance:    c.AdvanceBalance,
		ContractName:      name,
		Valuations:        c.WeeklyValuations,
		Retained:          retained,
	}
	if c.ContractedAmount != 0 {
		rec.DirectCostBudget = c.ContractedAmount / types.TaxFactor
	}
	return rec
}

// FromContracts maps a parsed record set in order.
func FromContracts(contracts []types.ContractRecord) []types.DashboardRecord {
	out := make([]types.DashboardRecord, len(contracts))
	for i, c := range contracts {
		out[i] = FromContract(c)
	}
	return out
}

// =============================================================================
// NATURAL KEY & MERGE
// =============================================================================

// NaturalKey derives the identity that survives re-imports: uppercased
// provider, service-order code and contract name, joined with "||".
func NaturalKey(rec types.DashboardRecord) string {
	return strings.Join([]string{
		strings.ToUpper(normalize.Text(rec.Provider)),
		strings.ToUpper(normalize.Text(rec.ServiceOrderCode)),
		strings.ToUpper(normalize.Text(rec.ContractName)),
	}, "||")
}

// Merge replaces the record set with a fresh import, carrying forward the
// user-entered fields (Closed, InternalNote) of any previous record with
// the same natural key. The result is fully enriched with ids 1..N.
func Merge(previous, imported []types.DashboardRecord) []types.DashboardRecord {
	type manual struct {
		closed bool
		note   string
	}
	carry := make(map[string]manual, len(previous))
	for _, rec := range previous {
		carry[NaturalKey(rec)] = manual{closed: rec.Closed, note: rec.InternalNote}
	}

	merged := make([]types.DashboardRecord, len(imported))
	for i, rec := range imported {
		base := Enrich(rec, i+1)
		if meta, ok := carry[NaturalKey(base)]; ok {
			base.Closed = meta.closed
			base.InternalNote = meta.note
		}
		merged[i] = base
	}
	return merged
}

// CarriedCount reports how many imported records found a previous record to
// carry manual fields from. Used for import summaries.
func CarriedCount(previous, imported []types.DashboardRecord) int {
	keys := make(map[string]struct{}, len(previous))
	for _, rec := range previous {
		keys[NaturalKey(rec)] = struct{}{}
	}
	n := 0
	for _, rec := range imported {
		if _, ok := keys[NaturalKey(rec)]; ok {
			n++
		}
	}
	return n
}
