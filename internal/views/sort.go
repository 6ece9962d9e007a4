// =============================================================================
// Subcontract Valuations Dashboard - View Sorting
// =============================================================================
//
// Named-field comparators for the two sortable table views. Sorting is
// stable: equal keys keep their relative order from the input, which is the
// spreadsheet import order. The provider-summary view and the detail view
// hold independent sort state.
//
// =============================================================================

package views

import (
	"sort"
	"strings"

	"github.com/Yrvking/dashboard-s10/internal/types"
)

// Sort directions.
const (
	Ascending  = "asc"
	Descending = "desc"
)

// Detail view sort fields.
const (
	DetailByOrderCode       = "orden_servicio"
	DetailByContracted      = "contratado"
	DetailByBudget          = "cd_contrat"
	DetailByDirectCost      = "cd_acum"
	DetailByBudgetBalance   = "saldo_cd"
	DetailByAdvance         = "adelanto"
	DetailByAdvanceAmortized = "adel_amort"
)

// Provider-summary sort fields.
const (
	SummaryByContracts  = "contracts"
	SummaryByContracted = "monto_contratado"
	SummaryByDirectCost = "monto_costo_directo"
)

// SortDetail returns a copy of records ordered by the named field. An
// unknown or empty field returns the input order unchanged.
func SortDetail(records []types.DashboardRecord, field, direction string) []types.DashboardRecord {
	out := make([]types.DashboardRecord, len(records))
	copy(out, records)
	if field == "" {
		return out
	}

	numeric := func(rec types.DashboardRecord) float64 {
		switch field {
		case DetailByContracted:
			return rec.Contracted
		case DetailByBudget:
			return budget(rec)
		case DetailByDirectCost:
			return rec.DirectCost
		case DetailByBudgetBalance:
			return budget(rec) - rec.DirectCost
		case DetailByAdvance:
			return rec.Advance
		case DetailByAdvanceAmortized:
			if rec.AdvanceAmortized != nil {
				return *rec.AdvanceAmortized
			}
			return 0
		default:
			return 0
		}
	}

	desc := direction == Descending
	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		if field == DetailByOrderCode {
			less = strings.Compare(out[i].ServiceOrderCode, out[j].ServiceOrderCode) < 0
		} else {
			less = numeric(out[i]) < numeric(out[j])
		}
		if desc {
			return !less && !equalKey(out[i], out[j], field, numeric)
		}
		return less
	})
	return out
}

// equalKey keeps descending sorts stable by refusing to reorder equal keys.
func equalKey(a, b types.DashboardRecord, field string, numeric func(types.DashboardRecord) float64) bool {
	if field == DetailByOrderCode {
		return a.ServiceOrderCode == b.ServiceOrderCode
	}
	return numeric(a) == numeric(b)
}

// budget is the contracted amount excluding tax, recomputed when the
// enriched field is missing.
func budget(rec types.DashboardRecord) float64 {
	if rec.DirectCostBudget != 0 {
		return rec.DirectCostBudget
	}
	if rec.Contracted != 0 {
		return rec.Contracted / types.TaxFactor
	}
	return 0
}

// SortProviderSummaries returns a copy of summaries ordered by the named
// field.
func SortProviderSummaries(summaries []ProviderSummary, field, direction string) []ProviderSummary {
	out := make([]ProviderSummary, len(summaries))
	copy(out, summaries)

	value := func(s ProviderSummary) float64 {
		switch field {
		case SummaryByContracts:
			return float64(s.Contracts)
		case SummaryByDirectCost:
			return s.TotalDirectCost
		default:
			return s.TotalContracted
		}
	}

	desc := direction == Descending
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return value(out[i]) > value(out[j])
		}
		return value(out[i]) < value(out[j])
	})
	return out
}
