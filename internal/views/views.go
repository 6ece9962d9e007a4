// =============================================================================
// Subcontract Valuations Dashboard - Derived Views
// =============================================================================
//
// Pure functions over an immutable snapshot of the record set. Nothing here
// caches or mutates: every view is recomputed from its inputs, which keeps
// the engine re-entrant and trivially testable. Dataset sizes are small
// (low thousands of rows at most), so there is no need for incremental
// derivation.
//
// Views:
//   - Filter            : search term + provider/status selections
//   - KPIs              : contracted/direct-cost totals, value-weighted progress
//   - SimulationItems   : per-order rows for the what-if projector, with a
//                         cumulative view when valuations exist
//   - Simulate          : projected cost at a target progress percentage
//   - ProviderSummaries : group-by-provider totals
//   - StatusSummaries   : group-by-status contracted totals
//   - CriticalContracts : open orders with the least progress
//   - GuaranteeFund     : withholding metrics
//   - sorting           : named-field comparators for the two table views
//
// =============================================================================

package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Yrvking/dashboard-s10/internal/types"
)

// =============================================================================
// FILTERING
// =============================================================================

// FilterAll is the selection value matching every provider or status.
const FilterAll = "all"

// Filters is the user's current filter state.
type Filters struct {
	// Search matches case-insensitively against provider and service-order
	// code. Empty matches everything.
	Search string

	// Provider and Status are exact selections; FilterAll (or empty)
	// disables them.
	Provider string
	Status   string
}

// Filter returns the records matching f, preserving input order.
func Filter(records []types.DashboardRecord, f Filters) []types.DashboardRecord {
	search := strings.ToLower(f.Search)

	out := make([]types.DashboardRecord, 0, len(records))
	for _, rec := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.Provider), search) &&
			!strings.Contains(strings.ToLower(rec.ServiceOrderCode), search) {
			continue
		}
		if f.Provider != "" && f.Provider != FilterAll && rec.Provider != f.Provider {
			continue
		}
		status := rec.Status
		if status == "" {
			status = types.StatusNone
		}
		if f.Status != "" && f.Status != FilterAll && status != f.Status {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Providers returns the distinct provider names in first-seen order.
func Providers(records []types.DashboardRecord) []string {
	return distinct(records, func(r types.DashboardRecord) string { return r.Provider })
}

// Statuses returns the distinct statuses in first-seen order.
func Statuses(records []types.DashboardRecord) []string {
	return distinct(records, func(r types.DashboardRecord) string {
		if r.Status == "" {
			return types.StatusNone
		}
		return r.Status
	})
}

func distinct(records []types.DashboardRecord, key func(types.DashboardRecord) string) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, rec := range records {
		k := key(rec)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// =============================================================================
// KPIs
// =============================================================================

// KPIs are the headline aggregates over a (filtered) record set.
type KPIs struct {
	TotalContracted float64 `json:"total_contratado"`
	TotalDirectCost float64 `json:"total_costo_directo"`

	// AvgProgress is weighted by contract value, not a simple average of
	// percentages: totalDirectCost / totalContracted * 100. A large barely
	// started order should drag the global figure more than a small
	// finished one.
	AvgProgress float64 `json:"avance_promedio"`

	Count int `json:"registros"`
}

// ComputeKPIs aggregates the record set.
func ComputeKPIs(records []types.DashboardRecord) KPIs {
	k := KPIs{Count: len(records)}
	for _, rec := range records {
		k.TotalContracted += rec.Contracted
		k.TotalDirectCost += rec.DirectCost
	}
	if k.TotalContracted > 0 {
		k.AvgProgress = k.TotalDirectCost / k.TotalContracted * 100
	}
	return k
}

// =============================================================================
// SIMULATION
// =============================================================================

// SimulationItem is one selectable row of the what-if projector. Orders
// with valuations get a cumulative view: progress is the MAX across
// valuations (percentage is a watermark metric), direct cost is the SUM
// (cost is additive).
type SimulationItem struct {
	SimID            string  `json:"sim_id"`
	RecordID         int     `json:"contrato_id"`
	Provider         string  `json:"subcontratista"`
	ServiceOrderCode string  `json:"orden_servicio"`
	ContractName     string  `json:"subcontrato"`
	ValuationCount   int     `json:"n_valorizacion"`
	ValuationLabel   string  `json:"label_valorizacion"`
	ProgressPct      float64 `json:"avance_pct"`
	Contracted       float64 `json:"contratado"`
	DirectCost       float64 `json:"costo_directo"`
}

// SimulationItems builds the selectable rows for a (filtered) record set.
func SimulationItems(records []types.DashboardRecord) []SimulationItem {
	items := make([]SimulationItem, 0, len(records))
	for _, rec := range records {
		if len(rec.Valuations) > 0 {
			totalCost := 0.0
			maxPct := 0.0
			for _, v := range rec.Valuations {
				totalCost += v.DirectCost
				if v.ProgressPct > maxPct {
					maxPct = v.ProgressPct
				}
			}
			items = append(items, SimulationItem{
				SimID:            fmt.Sprintf("%d::acum", rec.ID),
				RecordID:         rec.ID,
				Provider:         rec.Provider,
				ServiceOrderCode: rec.ServiceOrderCode,
				ContractName:     rec.ContractName,
				ValuationCount:   len(rec.Valuations),
				ValuationLabel:   fmt.Sprintf("ACUM-VAL %02d", len(rec.Valuations)),
				ProgressPct:      maxPct,
				Contracted:       rec.Contracted,
				DirectCost:       totalCost,
			})
			continue
		}

		items = append(items, SimulationItem{
			SimID:            fmt.Sprintf("%d::os", rec.ID),
			RecordID:         rec.ID,
			Provider:         rec.Provider,
			ServiceOrderCode: rec.ServiceOrderCode,
			ContractName:     rec.ContractName,
			ProgressPct:      rec.ProgressPct,
			Contracted:       rec.Contracted,
			DirectCost:       rec.DirectCost,
		})
	}
	return items
}

// FindSimulationItem locates an item by its SimID.
func FindSimulationItem(items []SimulationItem, simID string) (SimulationItem, bool) {
	for _, item := range items {
		if item.SimID == simID {
			return item, true
		}
	}
	return SimulationItem{}, false
}

// SimulationResult is the projection at a target progress percentage.
type SimulationResult struct {
	Item        SimulationItem `json:"item"`
	CurrentPct  float64        `json:"avance_actual"`
	TargetPct   float64        `json:"avance_meta"`
	CurrentCost float64        `json:"cd_actual"`
	NewCost     float64        `json:"cd_proyectado"`
	DeltaCost   float64        `json:"delta"`
}

// Simulate projects the direct cost of item at targetPct, clamped to
// [0, 100]: projected = contracted * target/100, delta = projected - current.
func Simulate(item SimulationItem, targetPct float64) SimulationResult {
	if targetPct < 0 {
		targetPct = 0
	}
	if targetPct > 100 {
		targetPct = 100
	}

	newCost := item.Contracted * targetPct / 100
	return SimulationResult{
		Item:        item,
		CurrentPct:  item.ProgressPct,
		TargetPct:   targetPct,
		CurrentCost: item.DirectCost,
		NewCost:     newCost,
		DeltaCost:   newCost - item.DirectCost,
	}
}

// =============================================================================
// GROUPING SUMMARIES
// =============================================================================

// ProviderSummary is the per-subcontractor rollup behind the summary table.
type ProviderSummary struct {
	// Name is the first word of the provider name, used as a short chart
	// label; FullName is the provider as imported.
	Name      string `json:"name"`
	FullName  string `json:"full_name"`
	Contracts int    `json:"contracts"`

	TotalContracted float64 `json:"monto_contratado"`
	TotalDirectCost float64 `json:"monto_costo_directo"`
}

// ProviderSummaries groups the record set by provider, in first-seen order.
func ProviderSummaries(records []types.DashboardRecord) []ProviderSummary {
	index := make(map[string]int)
	var out []ProviderSummary
	for _, rec := range records {
		name := rec.Provider
		if name == "" {
			name = "Sin Proveedor"
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, ProviderSummary{
				Name:     strings.SplitN(name, " ", 2)[0],
				FullName: name,
			})
		}
		out[i].Contracts++
		out[i].TotalContracted += rec.Contracted
		out[i].TotalDirectCost += rec.DirectCost
	}
	return out
}

// StatusSummary is the per-status contracted total behind the status chart.
type StatusSummary struct {
	Name            string  `json:"name"`
	TotalContracted float64 `json:"monto"`
}

// StatusSummaries groups contracted amounts by status, in first-seen order.
func StatusSummaries(records []types.DashboardRecord) []StatusSummary {
	index := make(map[string]int)
	var out []StatusSummary
	for _, rec := range records {
		status := rec.Status
		if status == "" {
			status = types.StatusNone
		}
		i, ok := index[status]
		if !ok {
			i = len(out)
			index[status] = i
			out = append(out, StatusSummary{Name: status})
		}
		out[i].TotalContracted += rec.Contracted
	}
	return out
}

// =============================================================================
// CRITICAL CONTRACTS
// =============================================================================

// CriticalContracts returns the open (not closed) records with the least
// progress, ascending, capped at limit.
func CriticalContracts(records []types.DashboardRecord, limit int) []types.DashboardRecord {
	open := make([]types.DashboardRecord, 0, len(records))
	for _, rec := range records {
		if !rec.Closed {
			open = append(open, rec)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].ProgressPct < open[j].ProgressPct
	})
	if limit > 0 && len(open) > limit {
		open = open[:limit]
	}
	return open
}

// =============================================================================
// GUARANTEE FUND
// =============================================================================

// guaranteeRate is the 5% withholding applied to valorized and advanced
// amounts.
const guaranteeRate = 0.05

// GuaranteeFund summarizes the withholding position over a record set.
type GuaranteeFund struct {
	// Theoretical is what the fund should hold: 5% of the tax-inclusive
	// valorized amount.
	Theoretical float64 `json:"fg_teorico"`

	// FromS10 is the retained total actually reported by the export.
	FromS10 float64 `json:"fg_s10"`

	// AdvanceTotal and AdvanceAmortized are 5% of the calculated advances
	// and of their amortized portion.
	AdvanceTotal     float64 `json:"fg_adelanto_total"`
	AdvanceAmortized float64 `json:"fg_adelanto_amortizado"`
}

// ComputeGuaranteeFund aggregates the fund metrics.
func ComputeGuaranteeFund(records []types.DashboardRecord) GuaranteeFund {
	var directCost, retained, advCalc, advAmort float64
	for _, rec := range records {
		directCost += rec.DirectCost
		retained += rec.Retained
		if rec.AdvanceCalculated != nil {
			advCalc += *rec.AdvanceCalculated
		} else {
			advCalc += rec.Advance
		}
		if rec.AdvanceAmortized != nil {
			advAmort += *rec.AdvanceAmortized
		}
	}
	return GuaranteeFund{
		Theoretical:      directCost * types.TaxFactor * guaranteeRate,
		FromS10:          retained,
		AdvanceTotal:     advCalc * guaranteeRate,
		AdvanceAmortized: advAmort * guaranteeRate,
	}
}
