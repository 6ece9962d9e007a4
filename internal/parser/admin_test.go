package parser_test

import (
	"testing"

	"github.com/Yrvking/dashboard-s10/internal/parser"
	"github.com/Yrvking/dashboard-s10/internal/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminWidth = 13

// adminHeader1/adminHeader2 mirror the compound header of a real
// "Subcontratos_Administrador" export: grouping labels on the first row,
// sub-labels on the second.
var adminHeader1 = []string{
	"Item", "Descripción", "# Val.", "Especialidad", "Contratado (S/.)",
	"Valorizado", "", "", "Adelantos", "Adelantos", "Adelantos",
	"Pendiente por Valorizar", "N° O.S.",
}

var adminHeader2 = []string{
	"", "", "", "", "",
	"%", "Costo Directo", "Retenido", "Calculado", "Otorgado", "Amortizado",
	"", "",
}

// row builds a sparse data row from column index -> cell text.
func row(cells map[int]string) []string {
	out := make([]string, adminWidth)
	for i, v := range cells {
		out[i] = v
	}
	return out
}

func adminMatrix() sheet.Matrix {
	return sheet.Matrix{
		{"REPORTE DE SUBCONTRATOS"},
		adminHeader1,
		adminHeader2,
		row(map[int]string{1: "SUBCONTRATOS"}),
		row(map[int]string{1: "CONSTRUCTORA DEL SUR S.A.C."}),
		row(map[int]string{
			1: "O.S. 0012 - Instalación Eléctrica Pisos 14 y 15", 3: "ELECTRICA",
			4: "118,000.00", 5: "50", 6: "59000", 8: "10000", 10: "2000", 11: "5000",
		}),
		row(map[int]string{1: "SEMANA 1", 2: "VAL-01", 5: "20", 6: "23600", 7: "500"}),
		nil, // blank rows are structural inside a valuation block
		row(map[int]string{1: "SEMANA 2", 2: "VAL-02", 5: "50", 6: "35400", 7: "300"}),
		row(map[int]string{1: "ACERO PERUANO S.R.L."}),
		row(map[int]string{1: "OS 7 - Encofrado de losas", 5: "10"}),
		row(map[int]string{
			1: "O.C. 44 - Suministro de acero",
			4: "59,000.00", 5: "100", 6: "59000", 12: "OC-2025-044",
		}),
	}
}

func TestLooksLikeAdministrador(t *testing.T) {
	m := adminMatrix()

	assert.True(t, parser.LooksLikeAdministrador(m, parser.Options{}))
	assert.True(t, parser.LooksLikeAdministrador(m, parser.Options{StrictDetection: true}))

	// Without the "# Val." marker only permissive detection accepts the sheet.
	noMarker := adminMatrix()
	h1 := append([]string(nil), adminHeader1...)
	h1[2] = ""
	noMarker[1] = h1
	assert.True(t, parser.LooksLikeAdministrador(noMarker, parser.Options{}))
	assert.False(t, parser.LooksLikeAdministrador(noMarker, parser.Options{StrictDetection: true}))

	// Too short, or no description header at all.
	assert.False(t, parser.LooksLikeAdministrador(sheet.Matrix{{"x"}, {"y"}}, parser.Options{}))
	assert.False(t, parser.LooksLikeAdministrador(sheet.Matrix{
		{"título"}, {"Subcontratista", "Estado"}, {""}, {"fila"},
	}, parser.Options{}))
}

func TestParseAdministrador(t *testing.T) {
	records := parser.ParseAdministrador(adminMatrix())
	require.Len(t, records, 2) // "OS 7" has no contracted amount and is dropped

	rec := records[0]
	assert.Equal(t, "CONSTRUCTORA DEL SUR S.A.C.", rec.Provider)
	assert.Equal(t, "O.S. 0012", rec.ServiceOrderCode)
	assert.Equal(t, "Instalación Eléctrica Pisos 14 y 15", rec.ContractName)
	assert.Equal(t, "ELECTRICA", rec.Specialty)
	assert.Equal(t, 118000.0, rec.ContractedAmount)
	assert.Equal(t, 59000.0, rec.DirectCost)
	assert.Equal(t, 50.0, rec.ProgressPct)

	// No granted advance, so the calculated one becomes the advance.
	require.NotNil(t, rec.AdvanceCalculated)
	assert.Equal(t, 10000.0, *rec.AdvanceCalculated)
	assert.Nil(t, rec.AdvanceGranted)
	assert.Equal(t, 10000.0, rec.Advance)
	require.NotNil(t, rec.AdvanceAmortized)
	assert.Equal(t, 2000.0, *rec.AdvanceAmortized)
	require.NotNil(t, rec.AdvanceBalance)
	assert.Equal(t, 8000.0, *rec.AdvanceBalance)

	require.NotNil(t, rec.PendingBy)
	assert.Equal(t, 5000.0, *rec.PendingBy)
	require.NotNil(t, rec.BalanceToExecute)
	assert.Equal(t, 59000.0, *rec.BalanceToExecute)

	// Weekly valuations survive the blank row between them; the retained
	// total is the sum of the weekly amounts.
	require.Len(t, rec.WeeklyValuations, 2)
	require.NotNil(t, rec.WeeklyValuations[0].Number)
	assert.Equal(t, "VAL-01", *rec.WeeklyValuations[0].Number)
	assert.Equal(t, 20.0, rec.WeeklyValuations[0].ProgressPct)
	assert.Equal(t, 23600.0, rec.WeeklyValuations[0].DirectCost)
	assert.Equal(t, "SEMANA 2", rec.WeeklyValuations[1].Description)
	assert.Equal(t, 800.0, rec.RetainedTotal)

	rec = records[1]
	assert.Equal(t, "ACERO PERUANO S.R.L.", rec.Provider)
	// The dedicated column wins over the code synthesized from the text.
	assert.Equal(t, "OC-2025-044", rec.ServiceOrderCode)
	assert.Equal(t, "Suministro de acero", rec.ContractName)
	assert.Equal(t, 59000.0, rec.ContractedAmount)
	assert.Equal(t, 100.0, rec.ProgressPct)
	assert.Empty(t, rec.WeeklyValuations)
	assert.Equal(t, 0.0, rec.RetainedTotal)

	// The pending column exists in this export, so even an empty cell yields
	// an explicit zero rather than an absent value.
	require.NotNil(t, rec.PendingBy)
	assert.Equal(t, 0.0, *rec.PendingBy)
}

func TestParseAdministradorUnrecognized(t *testing.T) {
	// Required columns missing: the parse reports an unrecognized layout.
	m := sheet.Matrix{
		{"título"},
		{"Descripción", "Especialidad"},
		{"", ""},
		{"PROVEEDOR", ""},
	}
	assert.Empty(t, parser.ParseAdministrador(m))

	// Too short for header plus data.
	assert.Empty(t, parser.ParseAdministrador(adminMatrix()[:3]))
}

func TestParseAdministradorStrayWeeklyRows(t *testing.T) {
	// Weekly rows before any work order are skipped, not attached anywhere.
	m := sheet.Matrix{
		{"título"},
		adminHeader1,
		adminHeader2,
		row(map[int]string{1: "SEMANA 1", 5: "10", 6: "1000"}),
		row(map[int]string{1: "CONSTRUCTORA DEL SUR S.A.C."}),
		row(map[int]string{1: "O.S. 0001 - Obras provisionales", 4: "10,000", 5: "25", 6: "2500"}),
	}

	records := parser.ParseAdministrador(m)
	require.Len(t, records, 1)
	assert.Equal(t, "O.S. 0001", records[0].ServiceOrderCode)
	assert.Empty(t, records[0].WeeklyValuations)
}
