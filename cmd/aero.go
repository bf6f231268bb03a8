// =============================================================================
// PNL Generator - Aero Command
// =============================================================================
//
// This file defines the 'aero' command, which runs the airport pipeline:
// decode the manifest, resolve its column layout, validate every passenger,
// and emit the passport/identity record blocks.
//
// COMMAND USAGE:
//   pnlgen aero --file manifest.xlsx [--out dir]
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Decode the XLSX manifest into a table
//   3. Resolve the column layout (standard, then positional fallback)
//   4. Validate each passenger and log the warnings
//   5. Format the Aero document and write aerodrom_export.txt
//
// Layout resolution is the only fatal step: per-passenger defects degrade to
// placeholders and advisory warnings instead of aborting the run.
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ctstest25/Avio-Aero-Obrada/internal/format"
	"github.com/ctstest25/Avio-Aero-Obrada/internal/logger"
	"github.com/ctstest25/Avio-Aero-Obrada/internal/nationality"
	"github.com/ctstest25/Avio-Aero-Obrada/internal/passenger"
	"github.com/ctstest25/Avio-Aero-Obrada/internal/schema"
	"github.com/ctstest25/Avio-Aero-Obrada/internal/xlsxreader"
	"github.com/ctstest25/Avio-Aero-Obrada/pkg/utils"
)

// aeroFile is the path to the input manifest.
var aeroFile string

// aeroOut overrides the configured output directory.
var aeroOut string

// aeroCmd represents the 'aero' command.
var aeroCmd = &cobra.Command{
	Use:   "aero",
	Short: "Generate the airport (Aero) passport record export",
	Long: `The aero command reads a passenger manifest spreadsheet, determines which
known column layout it uses, validates every passenger against the manifest
rule set, and writes the passport/identity record blocks to
aerodrom_export.txt.

Rows with missing or malformed fields still produce output: the affected
fields are substituted with fixed placeholders and a warning comment line is
appended to the passenger's block.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runAero()
	},
}

// init registers the aero command and its flags.
func init() {
	rootCmd.AddCommand(aeroCmd)

	aeroCmd.Flags().StringVar(&aeroFile, "file", "", "Path to the manifest .xlsx file")
	aeroCmd.Flags().StringVar(&aeroOut, "out", "", "Output directory (overrides config)")
	aeroCmd.MarkFlagRequired("file")
}

// runAero executes the Aero pipeline.
func runAero() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir := cfg.OutputDir
	if aeroOut != "" {
		outputDir = aeroOut
	}
	fm := utils.NewFileManager(outputDir, cfg.ArchiveDir)

	logger.WithField("file", aeroFile).Info("Decoding manifest")

	table, err := xlsxreader.Decode(aeroFile, xlsxreader.Options{})
	if err != nil {
		return fmt.Errorf("failed to decode manifest: %w", err)
	}

	resolver := &schema.Resolver{
		HeaderRow:        cfg.AeroHeaderRow,
		FallbackSkipRows: cfg.AeroFallbackSkipRows,
	}

	resolution, err := resolver.Resolve(table)
	if err != nil {
		// Fatal: no partial output. Leave an error log for the operator.
		if logPath, logErr := fm.WriteErrorLog([]string{err.Error()}); logErr == nil {
			logger.WithField("log", logPath).Error("Manifest layout not recognized")
		}
		return err
	}

	logger.WithField("layout", resolution.Layout).Info("Manifest layout resolved")

	countries := nationality.NewResolver()
	validator := passenger.NewValidator(countries)
	formatter := format.NewAeroFormatter(validator, countries)

	// Per-row warnings are advisory; log them so the operator can fix the
	// manifest before sending the export downstream.
	flagged := 0
	for i, rec := range resolution.Records {
		if warnings := validator.Validate(rec); len(warnings) > 0 {
			flagged++
			logger.WithField("row", i+1).Warn(strings.Join(warnings, ", "))
		}
	}

	summary := passenger.Summarize(resolution.Records)
	logger.Log.Infof("Passengers: %d total, %d adults, %d children, %d infants, %d unknown title",
		summary.Total, summary.Adults, summary.Children, summary.Infants, summary.Unknown)
	if flagged > 0 {
		logger.Log.Warnf("%d passenger(s) have warnings; check them before sending", flagged)
	}

	document := formatter.FormatDocument(resolution.Records)

	outputPath, err := fm.WriteExport(format.AeroExportFilename, document)
	if err != nil {
		return err
	}

	logger.WithField("output", outputPath).Info("Aero export written")

	return nil
}
