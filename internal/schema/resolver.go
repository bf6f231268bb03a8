// =============================================================================
// PNL Generator - Manifest Schema Resolver
// =============================================================================
//
// Manifest spreadsheets arrive in one of several column layouts depending on
// which agency exported them. This module determines which known layout a
// decoded table matches and remaps its columns onto the canonical passenger
// record.
//
// RESOLUTION STRATEGY:
//   Layout matchers are tried in a fixed order; the first success wins.
//   1. standard layout - a named header row ("Passenger Surname", ...) at a
//      known offset.
//   2. fallback layout - no header; the first 8 positional columns at a fixed
//      row offset. Note the positional field order deliberately differs from
//      the standard layout; that is how the agency exports are laid out.
//   If every matcher fails, resolution returns a ResolutionError. This is the
//   only fatal failure mode of the whole pipeline: no partial output is ever
//   emitted for an unrecognizable manifest.
//
// =============================================================================

package schema

import (
	"fmt"
	"strings"

	"github.com/ctstest25/Avio-Aero-Obrada/internal/passenger"
	"github.com/ctstest25/Avio-Aero-Obrada/internal/xlsxreader"
)

// Layout names, reported for observability only; formatting logic never
// depends on which layout matched.
const (
	LayoutStandard = "standard layout"
	LayoutFallback = "fallback layout"
)

// Standard layout column headers, expected verbatim on the header row.
const (
	colSurname     = "Passenger Surname"
	colGivenName   = "Passenger Name"
	colTitle       = "Title"
	colPassport    = "Passport"
	colNationality = "Nationality"
	colExpireDate  = "Pass Expire Date"
	colBirthday    = "Birthday"
)

// requiredColumns lists every header the standard layout must carry.
var requiredColumns = []string{
	colSurname, colGivenName, colTitle, colPassport,
	colNationality, colExpireDate, colBirthday,
}

// fallbackWidth is the number of positional columns the fallback layout
// interprets: Reservation, Surname, Name, Title, Nationality, Passport,
// Birthday, Pass Expire Date.
const fallbackWidth = 8

// ResolutionError reports that no known layout matched the table. It carries
// the per-layout failure reasons for the operator.
type ResolutionError struct {
	// Attempts holds one failure message per layout, in matcher order.
	Attempts []string
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("manifest matches no known layout: %s", strings.Join(e.Attempts, "; "))
}

// Resolution is the outcome of a successful schema resolution.
type Resolution struct {
	// Records are the canonical passenger records, in manifest row order.
	Records []passenger.Record

	// Layout names the layout that matched (observability only).
	Layout string
}

// Resolver interprets decoded manifest tables.
type Resolver struct {
	// HeaderRow is the 0-based row index of the standard layout's header row.
	HeaderRow int

	// FallbackSkipRows is the number of leading rows the fallback layout
	// skips before positional data starts.
	FallbackSkipRows int
}

// NewResolver creates a Resolver with the production manifest offsets.
func NewResolver() *Resolver {
	return &Resolver{HeaderRow: 3, FallbackSkipRows: 3}
}

// Resolve tries each known layout in order and returns the records under the
// first layout that matches. If no layout matches, the returned error is a
// *ResolutionError and the run must halt with no output.
func (r *Resolver) Resolve(table *xlsxreader.Table) (*Resolution, error) {
	matchers := []struct {
		name string
		fn   func(*xlsxreader.Table) ([]passenger.Record, error)
	}{
		{LayoutStandard, r.resolveStandard},
		{LayoutFallback, r.resolveFallback},
	}

	var attempts []string
	for _, m := range matchers {
		records, err := m.fn(table)
		if err == nil {
			return &Resolution{Records: records, Layout: m.name}, nil
		}
		attempts = append(attempts, fmt.Sprintf("%s: %v", m.name, err))
	}

	return nil, &ResolutionError{Attempts: attempts}
}

// resolveStandard interprets the table under the named-header layout.
func (r *Resolver) resolveStandard(table *xlsxreader.Table) ([]passenger.Record, error) {
	if r.HeaderRow >= table.NumRows() {
		return nil, fmt.Errorf("table has no header row at offset %d", r.HeaderRow)
	}

	// Map header names to column indexes.
	header := table.Rows[r.HeaderRow]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var records []passenger.Record
	for row := r.HeaderRow + 1; row < table.NumRows(); row++ {
		if rowEmpty(table, row) {
			continue
		}

		cell := func(name string) string {
			v, _ := table.Cell(row, index[name])
			return v
		}

		records = append(records, passenger.Record{
			Surname:        cell(colSurname),
			GivenName:      cell(colGivenName),
			Title:          cell(colTitle),
			Passport:       cell(colPassport),
			NationalityRaw: cell(colNationality),
			PassExpireDate: cell(colExpireDate),
			Birthday:       cell(colBirthday),
		})
	}

	return records, nil
}

// resolveFallback interprets the table under the positional layout. The first
// 8 unlabeled columns, starting below the skipped rows, are read as
// Reservation, Surname, Name, Title, Nationality, Passport, Birthday,
// Pass Expire Date. The reservation column is not part of the canonical
// record; the Aero pipeline does not use it.
func (r *Resolver) resolveFallback(table *xlsxreader.Table) ([]passenger.Record, error) {
	if r.FallbackSkipRows >= table.NumRows() {
		return nil, fmt.Errorf("table has no data rows below offset %d", r.FallbackSkipRows)
	}

	width := 0
	for row := r.FallbackSkipRows; row < table.NumRows(); row++ {
		if len(table.Rows[row]) > width {
			width = len(table.Rows[row])
		}
	}
	if width < fallbackWidth {
		return nil, fmt.Errorf("table has %d columns, positional layout needs %d", width, fallbackWidth)
	}

	var records []passenger.Record
	for row := r.FallbackSkipRows; row < table.NumRows(); row++ {
		if rowEmpty(table, row) {
			continue
		}

		cell := func(col int) string {
			v, _ := table.Cell(row, col)
			return v
		}

		records = append(records, passenger.Record{
			Surname:        cell(1),
			GivenName:      cell(2),
			Title:          cell(3),
			NationalityRaw: cell(4),
			Passport:       cell(5),
			Birthday:       cell(6),
			PassExpireDate: cell(7),
		})
	}

	return records, nil
}

// rowEmpty reports whether every cell in a row is blank.
func rowEmpty(table *xlsxreader.Table, row int) bool {
	for _, cell := range table.Rows[row] {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
