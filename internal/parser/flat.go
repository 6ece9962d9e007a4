// =============================================================================
// Subcontract Valuations Dashboard - Flat-Layout Parser
// =============================================================================
//
// Fallback parser for sheets that are NOT the hierarchical administrator
// export: a plain table with row 0 as header and one record per row
// (typically a "DashboardData" sheet produced by an earlier version of the
// dashboard itself). Columns are mapped by documented header strings, with
// per-row fallbacks where exports have used more than one label for the
// same field.
//
// Rows missing a subcontractor or a service-order value are dropped.
//
// =============================================================================

package parser

import (
	"github.com/Yrvking/dashboard-s10/internal/normalize"
	"github.com/Yrvking/dashboard-s10/internal/sheet"
	"github.com/Yrvking/dashboard-s10/internal/types"
)

// ParseFlat extracts partially-filled dashboard records from a flat-layout
// matrix. The enricher completes them.
func ParseFlat(m sheet.Matrix) []types.DashboardRecord {
	if len(m) < 2 {
		return nil
	}

	// Header name -> column index, first occurrence wins.
	headers := make(map[string]int)
	for i, cell := range m.Row(0) {
		name := normalize.Text(cell)
		if name == "" {
			continue
		}
		if _, seen := headers[name]; !seen {
			headers[name] = i
		}
	}

	// value returns the first non-empty cell among the fallback headers.
	value := func(row []string, names ...string) string {
		for _, name := range names {
			idx, ok := headers[name]
			if !ok || idx >= len(row) {
				continue
			}
			if cell := row[idx]; cell != "" {
				return cell
			}
		}
		return ""
	}

	var out []types.DashboardRecord
	for r := 1; r < len(m); r++ {
		row := m.Row(r)
		if len(row) == 0 {
			continue
		}

		contracted := normalize.Number(value(row, "Contratado (S/.)"))

		rec := types.DashboardRecord{
			Provider:         normalize.Text(value(row, "Subcontratista")),
			Specialty:        normalize.Text(value(row, "Especialidad")),
			ContractNumber:   optionalText(value(row, "N° Subcontrato", "Nº Subcontrato")),
			ServiceOrderCode: normalize.Text(value(row, "N° O.C. / O.S.", "O.S. / Val", "Orden Servicio")),
			Contracted:       contracted,
			DirectCost:       normalize.Number(value(row, "Costo Directo (S/.)")),
			ProgressPct:      normalize.Number(value(row, "% Avance")),
			ValuationLabel:   optionalText(value(row, "Valorización", "Val")),
			Status:           normalize.Text(value(row, "Estado")),
			Comments:         value(row, "Comentarios"),
			Date:             optionalText(value(row, "Fecha")),
			ContractName: normalize.Text(value(row,
				"Subcontrato", "Descripción Subcontrato", "Descripcion Subcontrato")),
			Valuations:        []types.WeeklyValuation{},
			AdvanceCalculated: types.Float(normalize.Number(value(row, "Adelanto Calculado", "Adelanto"))),
			AdvanceAmortized:  types.Float(normalize.Number(value(row, "Adelanto Amortizado"))),
			Retained:          normalize.Number(value(row, "Retenido")),
		}
		if contracted != 0 {
			rec.DirectCostBudget = contracted / types.TaxFactor
		}

		if rec.Provider == "" || rec.ServiceOrderCode == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// optionalText wraps a non-empty cell in a pointer, nil otherwise.
func optionalText(v string) *string {
	if v == "" {
		return nil
	}
	return types.String(v)
}
