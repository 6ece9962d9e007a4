package views_test

import (
	"testing"

	"github.com/Yrvking/dashboard-s10/internal/types"
	"github.com/Yrvking/dashboard-s10/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortDetail(t *testing.T) {
	records := []types.DashboardRecord{
		{ID: 1, ServiceOrderCode: "O.S. 0030", Contracted: 118000},
		{ID: 2, ServiceOrderCode: "O.S. 0010", Contracted: 59000},
		{ID: 3, ServiceOrderCode: "O.S. 0020", Contracted: 236000},
	}

	byCode := views.SortDetail(records, views.DetailByOrderCode, views.Ascending)
	assert.Equal(t, []int{2, 3, 1}, ids(byCode))

	byAmount := views.SortDetail(records, views.DetailByContracted, views.Descending)
	assert.Equal(t, []int{3, 1, 2}, ids(byAmount))

	// Unknown or empty field keeps the import order; the input is never
	// mutated.
	assert.Equal(t, []int{1, 2, 3}, ids(views.SortDetail(records, "", views.Ascending)))
	assert.Equal(t, []int{1, 2, 3}, ids(records))
}

func TestSortDetailStability(t *testing.T) {
	// Equal keys keep their import order in both directions.
	records := []types.DashboardRecord{
		{ID: 1, Contracted: 100},
		{ID: 2, Contracted: 100},
		{ID: 3, Contracted: 50},
		{ID: 4, Contracted: 100},
	}

	asc := views.SortDetail(records, views.DetailByContracted, views.Ascending)
	assert.Equal(t, []int{3, 1, 2, 4}, ids(asc))

	desc := views.SortDetail(records, views.DetailByContracted, views.Descending)
	assert.Equal(t, []int{1, 2, 4, 3}, ids(desc))
}

func TestSortDetailBudgetBalance(t *testing.T) {
	// The budget column derives from the contracted amount when the enriched
	// field is missing.
	records := []types.DashboardRecord{
		{ID: 1, Contracted: 118000, DirectCost: 90000},
		{ID: 2, DirectCostBudget: 50000, DirectCost: 10000},
	}

	sorted := views.SortDetail(records, views.DetailByBudgetBalance, views.Descending)
	require.Len(t, sorted, 2)
	assert.Equal(t, 2, sorted[0].ID) // 40000 > 100000 - 90000
}

func TestSortProviderSummaries(t *testing.T) {
	summaries := []views.ProviderSummary{
		{FullName: "A", Contracts: 1, TotalContracted: 50000, TotalDirectCost: 1000},
		{FullName: "B", Contracts: 3, TotalContracted: 20000, TotalDirectCost: 9000},
		{FullName: "C", Contracts: 2, TotalContracted: 80000, TotalDirectCost: 4000},
	}

	byContracted := views.SortProviderSummaries(summaries, views.SummaryByContracted, views.Descending)
	assert.Equal(t, "C", byContracted[0].FullName)
	assert.Equal(t, "B", byContracted[2].FullName)

	byContracts := views.SortProviderSummaries(summaries, views.SummaryByContracts, views.Ascending)
	assert.Equal(t, "A", byContracts[0].FullName)

	byCost := views.SortProviderSummaries(summaries, views.SummaryByDirectCost, views.Descending)
	assert.Equal(t, "B", byCost[0].FullName)

	// Input untouched.
	assert.Equal(t, "A", summaries[0].FullName)
}

func ids(records []types.DashboardRecord) []int {
	out := make([]int, len(records))
	for i, rec := range records {
		out[i] = rec.ID
	}
	return out
}
