// =============================================================================
// PNL Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the PNL Generator CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   pnlgen aero --file manifest.xlsx      - Generate the airport (Aero) export
//   pnlgen avio --file manifest.xlsx      - Generate the airline PNL (Avio) export
//   pnlgen version                        - Display the application version
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
	"github.com/ctstest25/Avio-Aero-Obrada/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
