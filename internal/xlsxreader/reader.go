// =============================================================================
// PNL Generator - XLSX Table Reader
// =============================================================================
//
// This module decodes a manifest spreadsheet into a plain table of cell
// values. It owns nothing beyond decoding: layout interpretation belongs to
// the schema resolver, and formatting to the format package.
//
// CELL SEMANTICS:
//   A cell that exists but is empty is distinguishable from a cell that is
//   absent entirely (a short row). Table.Cell reports absence via its second
//   return value; callers that only care about content can treat both the
//   same way.
//
// SHEET SELECTION:
//   Manifests are single-sheet workbooks; the first sheet is always read.
//
// =============================================================================

package xlsxreader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Options controls how a sheet is decoded into a table.
type Options struct {
	// SkipRows drops this many leading rows before the table starts.
	SkipRows int

	// MaxCols restricts the table to the first N columns. Zero means no
	// restriction.
	MaxCols int
}

// Table is a decoded sheet: raw cell text, row-major, as the spreadsheet
// library rendered it.
type Table struct {
	Rows [][]string
}

// Decode reads the first sheet of an XLSX file into a Table.
func Decode(path string, opts Options) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return decodeFile(f, opts)
}

// DecodeReader reads the first sheet of an XLSX byte stream into a Table.
func DecodeReader(r io.Reader, opts Options) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return decodeFile(f, opts)
}

// decodeFile extracts the table from an open workbook.
func decodeFile(f *excelize.File, opts Options) (*Table, error) {
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if opts.SkipRows > 0 {
		if opts.SkipRows >= len(rows) {
			rows = nil
		} else {
			rows = rows[opts.SkipRows:]
		}
	}

	if opts.MaxCols > 0 {
		for i, row := range rows {
			if len(row) > opts.MaxCols {
				rows[i] = row[:opts.MaxCols]
			}
		}
	}

	return &Table{Rows: rows}, nil
}

// Cell returns the text of the cell at (row, col). The second return value is
// false when the cell is absent: the row does not exist or is too short.
func (t *Table) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(t.Rows) {
		return "", false
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return "", false
	}
	return r[col], true
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	return len(t.Rows)
}
