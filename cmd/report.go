// =============================================================================
// Subcontract Valuations Dashboard - Report Command
// =============================================================================
//
// This file defines the 'report' command, the console rendering of the
// dashboard: KPIs, per-provider and per-status summaries, critical open
// orders and guarantee-fund metrics, all over the filtered record set.
//
// COMMAND USAGE:
//   subdash report [flags]
//
// FLAGS:
//   --search    : Match provider or order code (case-insensitive substring)
//   --provider  : Keep a single provider ("all" keeps everything)
//   --status    : Keep a single status ("all" keeps everything)
//   --sort      : Detail sort field (orden_servicio, contratado, cd_contrat,
//                 cd_acum, saldo_cd, adelanto, adel_amort)
//   --desc      : Sort descending
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Yrvking/dashboard-s10/internal/normalize"
	"github.com/Yrvking/dashboard-s10/internal/views"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	reportSearch   string
	reportProvider string
	reportStatus   string
	reportSortBy   string
	reportDesc     bool
)

// =============================================================================
// REPORT COMMAND DEFINITION
// =============================================================================

// reportCmd represents the 'report' command.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print dashboard KPIs and summaries for the current record set",

	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport()
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportSearch, "search", "", "Filter by provider or order code substring")
	reportCmd.Flags().StringVar(&reportProvider, "provider", views.FilterAll, "Filter by exact provider name")
	reportCmd.Flags().StringVar(&reportStatus, "status", views.FilterAll, "Filter by exact status")
	reportCmd.Flags().StringVar(&reportSortBy, "sort", "", "Detail sort field")
	reportCmd.Flags().BoolVar(&reportDesc, "desc", false, "Sort descending")
}

// =============================================================================
// MAIN REPORT FUNCTION
// =============================================================================

func runReport() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	records := openStore(cfg).Load()
	filtered := views.Filter(records, views.Filters{
		Search:   reportSearch,
		Provider: reportProvider,
		Status:   reportStatus,
	})

	kpis := views.ComputeKPIs(filtered)
	fmt.Println("=== Control de Subcontratos & Valorizaciones ===")
	fmt.Printf("Registros:                %d de %d\n", len(filtered), len(records))
	fmt.Printf("Monto total contratado:   %s\n", normalize.Currency(kpis.TotalContracted))
	fmt.Printf("Costo directo acumulado:  %s\n", normalize.Currency(kpis.TotalDirectCost))
	fmt.Printf("Avance físico global:     %s (ponderado por monto)\n", normalize.Percent(kpis.AvgProgress))

	fg := views.ComputeGuaranteeFund(filtered)
	fmt.Println("\nFondo de garantía")
	fmt.Printf("  FG teórico:             %s\n", normalize.Currency(fg.Theoretical))
	fmt.Printf("  FG S10:                 %s\n", normalize.Currency(fg.FromS10))
	fmt.Printf("  FG adelanto total:      %s\n", normalize.Currency(fg.AdvanceTotal))
	fmt.Printf("  FG adelanto amortizado: %s\n", normalize.Currency(fg.AdvanceAmortized))

	fmt.Println("\nResumen por subcontratista")
	summaries := views.SortProviderSummaries(
		views.ProviderSummaries(filtered), views.SummaryByContracted, views.Descending)
	for _, s := range summaries {
		fmt.Printf("  %-40.40s %3d OS  %16s  CD %16s\n",
			s.FullName, s.Contracts,
			normalize.Currency(s.TotalContracted),
			normalize.Currency(s.TotalDirectCost))
	}

	fmt.Println("\nMix por estado")
	for _, s := range views.StatusSummaries(filtered) {
		fmt.Printf("  %-16s %16s\n", s.Name, normalize.Currency(s.TotalContracted))
	}

	critical := views.CriticalContracts(filtered, cfg.CriticalLimit)
	fmt.Println("\nSubcontratos críticos (menor avance y abiertos)")
	if len(critical) == 0 {
		fmt.Println("  No hay subcontratos abiertos con avance crítico.")
	}
	for _, rec := range critical {
		fmt.Printf("  %-12s %-30.30s %8s  saldo CD %s\n",
			rec.ServiceOrderCode, rec.Provider,
			normalize.Percent(rec.ProgressPct),
			normalize.Currency(rec.DirectCostBudget-rec.DirectCost))
	}

	if verbose {
		direction := views.Ascending
		if reportDesc {
			direction = views.Descending
		}
		fmt.Println("\nDetalle de subcontratos")
		for _, rec := range views.SortDetail(filtered, reportSortBy, direction) {
			closed := " "
			if rec.Closed {
				closed = "✓"
			}
			fmt.Printf("  [%s] %-12s %-28.28s %-20.20s %14s  %s\n",
				closed, rec.ServiceOrderCode, rec.Provider, rec.Status,
				normalize.Currency(rec.Contracted),
				normalize.Percent(rec.ProgressPct))
		}
	}

	return nil
}
