package enrich_test

import (
	"testing"

	"github.com/Yrvking/dashboard-s10/internal/enrich"
	"github.com/Yrvking/dashboard-s10/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichDefaults(t *testing.T) {
	rec := enrich.Enrich(types.DashboardRecord{Contracted: 118000}, 7)

	assert.Equal(t, 7, rec.ID)
	assert.Equal(t, types.StatusNone, rec.Status)
	assert.NotNil(t, rec.Valuations)
	assert.Empty(t, rec.Valuations)
	assert.InDelta(t, 100000.0, rec.DirectCostBudget, 0.001)
}

func TestEnrichIsIdempotent(t *testing.T) {
	rec := enrich.Enrich(types.DashboardRecord{
		Provider:   "CONSTRUCTORA DEL SUR S.A.C.",
		Contracted: 118000,
		Status:     types.StatusInProgress,
	}, 1)

	assert.Equal(t, rec, enrich.Enrich(rec, 1))
}

func TestEnrichAllAssignsSequentialIDs(t *testing.T) {
	records := enrich.EnrichAll([]types.DashboardRecord{
		{Provider: "A", ID: 99},
		{Provider: "B"},
		{Provider: "C", ID: 1},
	})

	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, i+1, rec.ID)
	}
}

func TestFromContractStatus(t *testing.T) {
	cases := []struct {
		progress float64
		want     string
	}{
		{0, types.StatusDrafting},
		{0.1, types.StatusInProgress},
		{50, types.StatusInProgress},
		{99.89, types.StatusInProgress},
		{99.9, types.StatusClosing},
		{100, types.StatusClosing},
	}

	for _, tc := range cases {
		rec := enrich.FromContract(types.ContractRecord{ProgressPct: tc.progress})
		assert.Equal(t, tc.want, rec.Status, "progress %v", tc.progress)
	}
}

func TestFromContractMapping(t *testing.T) {
	rec := enrich.FromContract(types.ContractRecord{
		Provider:         "CONSTRUCTORA DEL SUR S.A.C.",
		Description:      "O.S. 0012 - Instalación Eléctrica",
		ContractName:     "Instalación Eléctrica",
		ServiceOrderCode: "O.S. 0012",
		ContractedAmount: 118000,
		DirectCost:       59000,
		ProgressPct:      50,
		Advance:          10000,
		RetainedTotal:    800,
	})

	assert.Equal(t, "CONSTRUCTORA DEL SUR S.A.C.", rec.Provider)
	assert.Equal(t, 118000.0, rec.Contracted)
	assert.InDelta(t, 100000.0, rec.DirectCostBudget, 0.001)
	assert.Equal(t, "Instalación Eléctrica", rec.ContractName)
	assert.Equal(t, 800.0, rec.Retained)

	// Name falls back to the raw description, retained to the per-order value.
	rec = enrich.FromContract(types.ContractRecord{
		Description:     "OS 7 Encofrado",
		RetainedOnOrder: 300,
	})
	assert.Equal(t, "OS 7 Encofrado", rec.ContractName)
	assert.Equal(t, 300.0, rec.Retained)
}

func TestNaturalKey(t *testing.T) {
	key := enrich.NaturalKey(types.DashboardRecord{
		Provider:         "Constructora del  Sur S.A.C.",
		ServiceOrderCode: "o.s. 0012",
		ContractName:     "Instalación Eléctrica",
	})
	assert.Equal(t, "CONSTRUCTORA DEL SUR S.A.C.||O.S. 0012||INSTALACIÓN ELÉCTRICA", key)

	// Identity ignores everything except the three key fields.
	a := types.DashboardRecord{Provider: "A", ServiceOrderCode: "O.S. 0001", ContractName: "Obra", Contracted: 1}
	b := types.DashboardRecord{Provider: "a", ServiceOrderCode: "O.S. 0001", ContractName: "OBRA", Contracted: 2}
	assert.Equal(t, enrich.NaturalKey(a), enrich.NaturalKey(b))
}

func TestMergeCarriesManualFields(t *testing.T) {
	previous := []types.DashboardRecord{
		{
			ID: 1, Provider: "CONSTRUCTORA DEL SUR S.A.C.",
			ServiceOrderCode: "O.S. 0012", ContractName: "INSTALACIONES",
			Closed: true, InternalNote: "pendiente de conformidad",
		},
		{
			ID: 2, Provider: "ACERO PERUANO S.R.L.",
			ServiceOrderCode: "O.S. 0044", ContractName: "SUMINISTRO",
			InternalNote: "se va",
		},
	}
	imported := []types.DashboardRecord{
		{
			Provider: "CONSTRUCTORA DEL SUR S.A.C.", ServiceOrderCode: "O.S. 0012",
			ContractName: "INSTALACIONES", Contracted: 118000, ProgressPct: 60,
		},
		{
			Provider: "NUEVO PROVEEDOR E.I.R.L.", ServiceOrderCode: "O.S. 0099",
			ContractName: "PINTURA",
		},
	}

	merged := enrich.Merge(previous, imported)
	require.Len(t, merged, 2)

	// Same natural key: the imported figures win, the manual fields carry.
	assert.Equal(t, 1, merged[0].ID)
	assert.Equal(t, 60.0, merged[0].ProgressPct)
	assert.True(t, merged[0].Closed)
	assert.Equal(t, "pendiente de conformidad", merged[0].InternalNote)

	// New record: fresh manual fields; the unmatched previous record is gone.
	assert.Equal(t, 2, merged[1].ID)
	assert.False(t, merged[1].Closed)
	assert.Empty(t, merged[1].InternalNote)

	assert.Equal(t, 1, enrich.CarriedCount(previous, imported))
}
