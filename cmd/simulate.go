// =============================================================================
// Subcontract Valuations Dashboard - Simulate Command
// =============================================================================
//
// This file defines the 'simulate' command: the what-if projector. Given a
// work order and a target progress percentage it projects the direct cost
// at that target and the delta against the current cumulative cost.
//
// COMMAND USAGE:
//   subdash simulate                       # list selectable items
//   subdash simulate --id 3 --target 80
//
// Orders with weekly valuations are simulated on their cumulative view:
// progress is the max across valuations, cost is their sum.
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

// simulateID selects the record to project.
var simulateID int

// simulateTarget is the target progress percentage; values outside [0,100]
// are clamped.
var simulateTarget float64

// =============================================================================
// SIMULATE COMMAND DEFINITION
// =============================================================================

// simulateCmd represents the 'simulate' command.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project direct cost at a target progress percentage",

	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulate()
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVar(&simulateID, "id", 0, "Record id to simulate (see list output)")
	simulateCmd.Flags().Float64Var(&simulateTarget, "target", -1, "Target progress percentage, 0-100")
}

// =============================================================================
// MAIN SIMULATE FUNCTION
// =============================================================================

func runSimulate() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	items := views.SimulationItems(openStore(cfg).Load())

	// No selection: list what can be simulated.
	if simulateID == 0 {
		fmt.Println("Seleccionar (Proveedor / OS / acumulado):")
		for _, item := range items {
			label := "Contrato"
			if item.ValuationLabel != "" {
				label = item.ValuationLabel
			}
			fmt.Printf("  id=%-3d %-25.25s | %-12s - %s (%s)\n",
				item.RecordID, item.Provider, item.ServiceOrderCode,
				label, normalize.Percent(item.ProgressPct))
		}
		return nil
	}

	var selected *views.SimulationItem
	for i := range items {
		if items[i].RecordID == simulateID {
			selected = &items[i]
			break
		}
	}
	if selected == nil {
		return fmt.Errorf("record id %d not found", simulateID)
	}

	target := simulateTarget
	if target < 0 {
		target = selected.ProgressPct
	}
	result := views.Simulate(*selected, target)

	fmt.Printf("%s\n%s · %s\n", result.Item.Provider, result.Item.ServiceOrderCode, result.Item.ContractName)
	if result.Item.ValuationLabel != "" {
		fmt.Printf("%s · %% acum: %s\n", result.Item.ValuationLabel, normalize.Percent(result.CurrentPct))
	} else {
		fmt.Println("Contrato sin valorizaciones registradas")
	}

	fmt.Printf("\nMeta de avance:       %s (actual %s)\n",
		normalize.Percent(result.TargetPct), normalize.Percent(result.CurrentPct))
	fmt.Printf("CD acumulado actual:  %s\n", normalize.Currency(result.CurrentCost))
	fmt.Printf("CD proyectado:        %s\n", normalize.Currency(result.NewCost))
	sign := ""
	if result.DeltaCost >= 0 {
		sign = "+"
	}
	fmt.Printf("Delta (a pagar):      %s%s\n", sign, normalize.Currency(result.DeltaCost))
	return nil
}
