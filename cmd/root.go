// =============================================================================
// PNL Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the pipeline commands ('aero', 'avio', 'version') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (pnlgen)
//   ├── aeroCmd (pnlgen aero)
//   ├── avioCmd (pnlgen avio)
//   └── versionCmd (pnlgen version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ctstest25/Avio-Aero-Obrada/internal/config"
	"github.com/ctstest25/Avio-Aero-Obrada/internal/logger"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pnlgen",
	Short: "PNL Generator - Convert passenger manifests to Aero and Avio text exports",
	Long: `PNL Generator converts passenger manifest spreadsheets into the two
fixed-format text documents consumed by downstream airport and airline
reservation systems:

  aero    Airport-side passport/identity record blocks (aerodrom_export.txt)
  avio    Airline PNL telex message (PNL_Export_{DDMMYYYY}.txt)

Per-passenger defects (missing passports, unparseable dates, unknown
nationalities) never abort a run: fields degrade to fixed placeholders and
warnings travel along as comment lines. The only fatal failure is a manifest
whose column layout cannot be recognized at all.

Example Usage:
  pnlgen aero --file manifest.xlsx
  pnlgen avio --file manifest.xlsx --flight "CAI198/01JUL TZL PART1" --code "-AYT025Y"`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the application configuration and initializes logging.
// Shared by every pipeline command.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.LogLevel, verbose)

	return cfg, nil
}

// init sets up the global flags.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
