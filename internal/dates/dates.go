// =============================================================================
// PNL Generator - Date Parsing
// =============================================================================
//
// This module provides the date-parsing collaborator used by both the
// validator and the formatters. Manifest spreadsheets arrive with dates in a
// mix of layouts (slashes, dots, dashes, ISO, with or without a time part),
// and ambiguous numeric dates are always read day-first: "01/02/1990" is the
// 1st of February, not the 2nd of January.
//
// PARSE FAILURES:
//   Parsing never returns an error. An unparseable or absent value reports
//   ok=false and the formatters render the XXMMMXX placeholder instead, so a
//   bad date in one row never blocks output for the rest of the manifest.
//
// =============================================================================

package dates

import (
	"strings"
	"time"
)

// Placeholder is rendered wherever a date is missing or unparseable, keeping
// the downstream fixed-width consumers supplied with a well-formed field.
const Placeholder = "XXMMMXX"

// dayFirstLayouts is the ordered list of accepted layouts. Day-first layouts
// come before ISO so that ambiguous values resolve day-first.
var dayFirstLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"02.01.2006",
	"2.1.2006",
	"02-01-2006",
	"2-1-2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"02Jan2006",
	"02Jan06",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02-01-06",
}

// ParseDayFirst parses a manifest cell value as a date, trying each accepted
// layout in order. The second return value is false when the value is empty
// or matches no layout.
func ParseDayFirst(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// Render formats a date as day + abbreviated month + 2-digit year, uppercased,
// e.g. "05JUL27". This is the only date rendering the telex formats use.
func Render(t time.Time) string {
	return strings.ToUpper(t.Format("02Jan06"))
}

// RenderCell parses a cell value day-first and renders it, degrading to the
// placeholder when the value is missing or unparseable.
func RenderCell(value string) string {
	t, ok := ParseDayFirst(value)
	if !ok {
		return Placeholder
	}
	return Render(t)
}
