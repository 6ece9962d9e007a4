package parser_test

import (
	"testing"

	"github.com/Yrvking/dashboard-s10/internal/parser"
	"github.com/Yrvking/dashboard-s10/internal/sheet"
	"github.com/Yrvking/dashboard-s10/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlat(t *testing.T) {
	m := sheet.Matrix{
		{
			"Subcontratista", "Especialidad", "N° Subcontrato", "N° O.C. / O.S.",
			"Contratado (S/.)", "Costo Directo (S/.)", "% Avance", "Valorización",
			"Estado", "Comentarios", "Fecha", "Subcontrato",
			"Adelanto Calculado", "Adelanto Amortizado", "Retenido",
		},
		{
			"CONSTRUCTORA DEL SUR S.A.C.", "ELECTRICA", "001", "OS-2025-012",
			"118,000.00", "59,000.00", "50", "ACUM-VAL 02",
			"En Proceso", "avance según cronograma", "2025-10-12", "INSTALACIONES PISOS 14 Y 15",
			"10000", "2000", "800",
		},
		{
			"", "SANITARIA", "002", "OS-2025-013", // no provider: dropped
			"40,000.00", "0", "0", "", "", "", "", "", "", "", "",
		},
		{
			"ACERO PERUANO S.R.L.", "", "", "", // no order code: dropped
			"59,000.00", "59,000.00", "100", "", "", "", "", "", "", "", "",
		},
	}

	records := parser.ParseFlat(m)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "CONSTRUCTORA DEL SUR S.A.C.", rec.Provider)
	assert.Equal(t, "ELECTRICA", rec.Specialty)
	require.NotNil(t, rec.ContractNumber)
	assert.Equal(t, "001", *rec.ContractNumber)
	assert.Equal(t, "OS-2025-012", rec.ServiceOrderCode)
	assert.Equal(t, 118000.0, rec.Contracted)
	assert.Equal(t, 59000.0, rec.DirectCost)
	assert.InDelta(t, 118000.0/types.TaxFactor, rec.DirectCostBudget, 0.001)
	assert.Equal(t, 50.0, rec.ProgressPct)
	require.NotNil(t, rec.ValuationLabel)
	assert.Equal(t, "ACUM-VAL 02", *rec.ValuationLabel)
	assert.Equal(t, "En Proceso", rec.Status)
	assert.Equal(t, "avance según cronograma", rec.Comments)
	require.NotNil(t, rec.Date)
	assert.Equal(t, "2025-10-12", *rec.Date)
	assert.Equal(t, "INSTALACIONES PISOS 14 Y 15", rec.ContractName)
	assert.Equal(t, 800.0, rec.Retained)
}

func TestParseFlatHeaderFallbacks(t *testing.T) {
	// Older exports used different labels for the same fields; the first
	// non-empty fallback wins per row.
	m := sheet.Matrix{
		{"Subcontratista", "Orden Servicio", "Contratado (S/.)", "Val", "Adelanto"},
		{"ACERO PERUANO S.R.L.", "O.S. 0044", "59,000.00", "VAL 03", "5000"},
	}

	records := parser.ParseFlat(m)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "O.S. 0044", rec.ServiceOrderCode)
	require.NotNil(t, rec.ValuationLabel)
	assert.Equal(t, "VAL 03", *rec.ValuationLabel)
	require.NotNil(t, rec.AdvanceCalculated)
	assert.Equal(t, 5000.0, *rec.AdvanceCalculated)
}

func TestParseFlatEmpty(t *testing.T) {
	assert.Empty(t, parser.ParseFlat(nil))
	assert.Empty(t, parser.ParseFlat(sheet.Matrix{{"Subcontratista"}}))
}
