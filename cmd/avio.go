// =============================================================================
// PNL Generator - Avio Command
// =============================================================================
//
// This file defines the 'avio' command, which runs the airline pipeline:
// decode the fixed four-column manifest, drop rows with no passenger name,
// allocate reservation codes, and emit the PNL telex message.
//
// COMMAND USAGE:
//   pnlgen avio --file manifest.xlsx [--flight "..."] [--code "..."] [--out dir]
//
// The flight designator and flight code are opaque pass-through strings; they
// default to the configured values when the flags are omitted.
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ctstest25/Avio-Aero-Obrada/internal/format"
	"github.com/ctstest25/Avio-Aero-Obrada/internal/logger"
	"github.com/ctstest25/Avio-Aero-Obrada/internal/schema"
	"github.com/ctstest25/Avio-Aero-Obrada/internal/xlsxreader"
	"github.com/ctstest25/Avio-Aero-Obrada/pkg/utils"
)

// avioFile is the path to the input manifest.
var avioFile string

// avioFlight is the flight designator line of the PNL message.
var avioFlight string

// avioCode is the flight code line of the PNL message.
var avioCode string

// avioOut overrides the configured output directory.
var avioOut string

// avioCmd represents the 'avio' command.
var avioCmd = &cobra.Command{
	Use:   "avio",
	Short: "Generate the airline PNL export",
	Long: `The avio command reads the fixed four-column airline manifest (reservation,
title, surname, name), assigns a synthetic reservation code to each distinct
reservation in first-seen order, and writes the PNL telex message to
PNL_Export_{DDMMYYYY}.txt.

Rows missing the surname or the given name are dropped silently.
Passengers without a reservation number each receive their own code.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runAvio()
	},
}

// init registers the avio command and its flags.
func init() {
	rootCmd.AddCommand(avioCmd)

	avioCmd.Flags().StringVar(&avioFile, "file", "", "Path to the manifest .xlsx file")
	avioCmd.Flags().StringVar(&avioFlight, "flight", "", "Flight designator line (defaults to config)")
	avioCmd.Flags().StringVar(&avioCode, "code", "", "Flight code line (defaults to config)")
	avioCmd.Flags().StringVar(&avioOut, "out", "", "Output directory (overrides config)")
	avioCmd.MarkFlagRequired("file")
}

// runAvio executes the Avio pipeline.
func runAvio() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	flight := avioFlight
	if flight == "" {
		flight = cfg.FlightDesignator
	}
	code := avioCode
	if code == "" {
		code = cfg.FlightCode
	}

	outputDir := cfg.OutputDir
	if avioOut != "" {
		outputDir = avioOut
	}
	fm := utils.NewFileManager(outputDir, cfg.ArchiveDir)

	logger.WithField("file", avioFile).Info("Decoding manifest")

	table, err := xlsxreader.Decode(avioFile, xlsxreader.Options{
		SkipRows: cfg.AvioSkipRows,
		MaxCols:  4,
	})
	if err != nil {
		return fmt.Errorf("failed to decode manifest: %w", err)
	}

	rows := schema.AvioRows(table)
	logger.WithField("passengers", len(rows)).Info("Manifest rows read")

	formatter := format.NewAvioFormatter()
	document := formatter.FormatDocument(flight, code, rows)

	outputPath, err := fm.WriteExport(format.AvioExportFilename(time.Now()), document)
	if err != nil {
		return err
	}

	logger.WithField("output", outputPath).Info("PNL export written")

	return nil
}
