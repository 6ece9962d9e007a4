// =============================================================================
// Subcontract Valuations Dashboard - Shared Types
// =============================================================================
//
// This package contains the record types shared across multiple modules to
// avoid import cycles. Types defined here are used by:
//   - parser
//   - enrich
//   - views
//   - store
//   - importer
//
// Two record shapes exist:
//   - ContractRecord: the parser's intermediate output, one per work order
//     (O.S./O.C.) as reconstructed from the spreadsheet. Fields that the
//     export may simply not carry are pointers, so "absent" and "zero" stay
//     distinguishable.
//   - DashboardRecord: the enriched, application-facing record. Every field
//     has a documented default, so downstream consumers always see a complete
//     shape regardless of whether the record came from an import, a persisted
//     snapshot, or the built-in seed.
//
// =============================================================================

package types

// =============================================================================
// WEEKLY VALUATION
// =============================================================================

// WeeklyValuation is a single periodic ("SEMANA n") valuation row accumulated
// against a work order. JSON tags mirror the snapshot schema of the original
// dashboard so previously exported state remains loadable.
type WeeklyValuation struct {
	// Number is the valuation number token read from the fixed valuation
	// column. Nil when the cell was empty.
	Number *string `json:"n_valorizacion"`

	// Description is the normalized row text, e.g. "SEMANA 3".
	Description string `json:"descripcion"`

	// ProgressPct is the cumulative physical progress reported by this
	// valuation, 0-100.
	ProgressPct float64 `json:"avance_pct"`

	// DirectCost is the direct cost valorized by this valuation.
	DirectCost float64 `json:"costo_directo"`

	// Retained is the guarantee withholding deducted from this valuation.
	Retained float64 `json:"retenido"`
}

// =============================================================================
// CONTRACT RECORD (parser output)
// =============================================================================

// ContractRecord is the hierarchical parser's output for one work order.
// It is not persisted; the enricher maps it into a DashboardRecord.
type ContractRecord struct {
	// Provider is the subcontractor name carried from the enclosing
	// provider row. Never empty on an accepted record.
	Provider string

	// Description is the raw work-order row text.
	Description string

	// ContractName is the description with the leading order token removed:
	// the substring after the first hyphen, or the whole description when no
	// hyphen is present.
	ContractName string

	// Specialty is the specialty column text. May be empty.
	Specialty string

	// ServiceOrderCode identifies the work order ("O.S. NNNN"). Taken from
	// the dedicated column when present, otherwise synthesized from the
	// description. Never empty on an accepted record.
	ServiceOrderCode string

	// ContractedAmount is the tax-inclusive contracted amount. Must be
	// positive for the record to be accepted.
	ContractedAmount float64

	// DirectCost is the cumulative direct cost to date.
	DirectCost float64

	// ProgressPct is the percentage valorized, 0-100.
	ProgressPct float64

	// Advance fields. The granted amount wins over the calculated one;
	// Advance is granted-or-calculated-or-zero.
	AdvanceCalculated *float64
	AdvanceGranted    *float64
	AdvanceAmortized  *float64
	Advance           float64

	// PendingBy is the "Pendiente por" column value, when the column exists.
	PendingBy *float64

	// BalanceToExecute is ContractedAmount - DirectCost when both are
	// present, nil otherwise.
	BalanceToExecute *float64

	// AdvanceBalance is Advance - AdvanceAmortized when both are present,
	// nil otherwise.
	AdvanceBalance *float64

	// WeeklyValuations holds the valuation rows in spreadsheet order.
	WeeklyValuations []WeeklyValuation

	// RetainedOnOrder is the retained value read from the work-order row
	// itself. Used as RetainedTotal when no weekly valuations exist.
	RetainedOnOrder float64

	// RetainedTotal is the sum of the weekly retained amounts when any
	// valuations exist, RetainedOnOrder otherwise.
	RetainedTotal float64
}

// =============================================================================
// DASHBOARD RECORD (application-facing, persisted)
// =============================================================================

// TaxFactor is the fixed 18% tax uplift included in contracted amounts.
// "Excluding tax" divides by this factor.
const TaxFactor = 1.18

// Record statuses. Flat-layout imports may carry free-text statuses beyond
// these; the enricher only guarantees a non-empty value.
const (
	StatusDrafting   = "En Elaboración"
	StatusInProgress = "En Proceso"
	StatusClosing    = "Cierre"
	StatusNone       = "Sin Estado"
)

// DashboardRecord is the enriched record consumed by the derived-view engine
// and persisted as part of the snapshot. JSON tags mirror the original
// dashboard's storage schema.
type DashboardRecord struct {
	// ID is assigned sequentially (1..N) on every load or import. It is not
	// stable across imports; the natural key is used to carry user-entered
	// fields forward.
	ID int `json:"id"`

	// Provider is the subcontractor name.
	Provider string `json:"subcontratista"`

	// Specialty is the work specialty, e.g. "INSTALACIONES ELÉCTRICAS".
	Specialty string `json:"especialidad"`

	// ContractNumber is the subcontract number from flat-layout imports.
	ContractNumber *string `json:"n_contrato"`

	// ServiceOrderCode identifies the work order.
	ServiceOrderCode string `json:"orden_servicio"`

	// Contracted is the tax-inclusive contracted amount.
	Contracted float64 `json:"contratado"`

	// DirectCost is the cumulative direct cost valorized to date.
	DirectCost float64 `json:"costo_directo"`

	// DirectCostBudget is the contracted amount excluding the fixed 18% tax
	// uplift (Contracted / 1.18).
	DirectCostBudget float64 `json:"monto_costo_directo_os"`

	// ProgressPct is the percentage valorized, 0-100.
	ProgressPct float64 `json:"avance_pct"`

	// ValuationLabel is the latest valuation label from flat-layout imports,
	// e.g. "ACUM-VAL 04".
	ValuationLabel *string `json:"n_valorizacion"`

	// Status is one of the Status* constants or free text from a flat-layout
	// import. Never empty after enrichment.
	Status string `json:"estado"`

	// Comments is the comments column from flat-layout imports.
	Comments string `json:"comentarios"`

	// Date is the record date from flat-layout imports, as exported.
	Date *string `json:"fecha"`

	// Advance fields, see ContractRecord.
	Advance           float64  `json:"adelanto"`
	AdvanceCalculated *float64 `json:"adelanto_calculado"`
	AdvanceAmortized  *float64 `json:"adelanto_amortizado"`

	PendingBy        *float64 `json:"pendiente_por"`
	BalanceToExecute *float64 `json:"saldo_por_ejecutar"`
	AdvanceBalance   *float64 `json:"saldo_adelanto"`

	// ContractName is the subcontract description, e.g.
	// "INSTALACIONES ELÉCTRICAS PISOS 14 Y 15".
	ContractName string `json:"subcontrato"`

	// Valuations holds the weekly valuation rows in spreadsheet order.
	Valuations []WeeklyValuation `json:"valorizaciones"`

	// Retained is the total guarantee withholding for the work order.
	Retained float64 `json:"retenido"`

	// Closed is a user-set flag. Carried forward across re-imports by
	// natural key.
	Closed bool `json:"cerrado"`

	// InternalNote is user-entered free text. Carried forward across
	// re-imports by natural key.
	InternalNote string `json:"observacion_manual"`
}

// =============================================================================
// POINTER HELPERS
// =============================================================================

// Float returns a pointer to v. Convenience for optional numeric fields.
func Float(v float64) *float64 {
	return &v
}

// String returns a pointer to s. Convenience for optional text fields.
func String(s string) *string {
	return &s
}
