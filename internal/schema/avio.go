// =============================================================================
// PNL Generator - Avio Fixed Layout
// =============================================================================
//
// The Avio pipeline does not need layout detection: airline manifests always
// carry the same four positional columns (Reservation, Title, Surname, Name)
// below a fixed number of preamble rows. This file maps such a table onto raw
// Avio records and applies the pipeline's filtering invariant.
//
// =============================================================================

package schema

import (
	"github.com/ctstest25/Avio-Aero-Obrada/internal/passenger"
	"github.com/ctstest25/Avio-Aero-Obrada/internal/xlsxreader"
)

// AvioSkipRows is the number of preamble rows above the Avio data block,
// including the column label row.
const AvioSkipRows = 5

// AvioRows reads the fixed four-column Avio layout from a decoded table.
// The table is expected to be decoded with the preamble rows already skipped
// (see AvioSkipRows). Rows missing the surname or the given name are dropped
// silently; that is the pipeline's filtering invariant, not an error.
func AvioRows(table *xlsxreader.Table) []passenger.AvioRecord {
	var rows []passenger.AvioRecord

	for i := 0; i < table.NumRows(); i++ {
		cell := func(col int) string {
			v, _ := table.Cell(i, col)
			return v
		}

		rec := passenger.AvioRecord{
			Reservation: cell(0),
			Title:       cell(1),
			Surname:     cell(2),
			Name:        cell(3),
		}

		if passenger.IsMissing(rec.Surname) || passenger.IsMissing(rec.Name) {
			continue
		}

		rows = append(rows, rec)
	}

	return rows
}
