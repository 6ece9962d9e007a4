package exporter_test

import (
	"testing"

	"github.com/Yrvking/dashboard-s10/internal/exporter"
	"github.com/Yrvking/dashboard-s10/internal/parser"
	"github.com/Yrvking/dashboard-s10/internal/sheet"
	"github.com/Yrvking/dashboard-s10/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRoundTripsThroughFlatParser(t *testing.T) {
	records := []types.DashboardRecord{
		{
			ID: 1, Provider: "CONSTRUCTORA DEL SUR S.A.C.", Specialty: "ELECTRICA",
			ContractNumber: types.String("001"), ServiceOrderCode: "O.S. 0012",
			Contracted: 118000, DirectCost: 59000, ProgressPct: 50,
			ValuationLabel: types.String("ACUM-VAL 02"), Status: types.StatusInProgress,
			Comments: "avance según cronograma", Date: types.String("2025-10-12"),
			ContractName:      "INSTALACIONES PISOS 14 Y 15",
			AdvanceCalculated: types.Float(10000), AdvanceAmortized: types.Float(2000),
			Retained: 800,
		},
		{
			ID: 2, Provider: "ACERO PERUANO S.R.L.", ServiceOrderCode: "O.S. 0044",
			Contracted: 59000, DirectCost: 59000, ProgressPct: 100,
			Status: types.StatusClosing, ContractName: "SUMINISTRO DE ACERO",
		},
	}

	path, err := exporter.Write(records, t.TempDir())
	require.NoError(t, err)

	matrix, sheetName, err := sheet.ReadMatrix(path, []string{exporter.SheetName})
	require.NoError(t, err)
	assert.Equal(t, exporter.SheetName, sheetName)

	parsed := parser.ParseFlat(matrix)
	require.Len(t, parsed, 2)

	rec := parsed[0]
	assert.Equal(t, "CONSTRUCTORA DEL SUR S.A.C.", rec.Provider)
	assert.Equal(t, "O.S. 0012", rec.ServiceOrderCode)
	assert.Equal(t, 118000.0, rec.Contracted)
	assert.Equal(t, 59000.0, rec.DirectCost)
	assert.Equal(t, 50.0, rec.ProgressPct)
	require.NotNil(t, rec.ValuationLabel)
	assert.Equal(t, "ACUM-VAL 02", *rec.ValuationLabel)
	assert.Equal(t, types.StatusInProgress, rec.Status)
	assert.Equal(t, "INSTALACIONES PISOS 14 Y 15", rec.ContractName)
	assert.Equal(t, 800.0, rec.Retained)

	assert.Equal(t, "ACERO PERUANO S.R.L.", parsed[1].Provider)
	assert.Equal(t, 100.0, parsed[1].ProgressPct)
}

func TestWriteEmptyRecordSet(t *testing.T) {
	path, err := exporter.Write(nil, t.TempDir())
	require.NoError(t, err)

	matrix, _, err := sheet.ReadMatrix(path, []string{exporter.SheetName})
	require.NoError(t, err)
	assert.Empty(t, parser.ParseFlat(matrix))
}
