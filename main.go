// =============================================================================
// Subcontract Valuations Dashboard - Main Entry Point
// =============================================================================
//
// This is the main entry point for the subcontract valuations dashboard CLI.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   subdash import          - Import S10 spreadsheet exports into the snapshot
//   subdash report          - Print KPIs, summaries and the record detail
//   subdash simulate        - Project direct cost at a target progress
//   subdash edit            - Toggle closures and manage internal notes
//   subdash export          - Write the record set as a flat-layout workbook
//   subdash serve           - Serve the derived views as a JSON API
//   subdash version         - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/Yrvking/dashboard-s10/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
