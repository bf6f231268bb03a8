// =============================================================================
// PNL Generator - Passenger Record Types
// =============================================================================
//
// This package holds the canonical passenger record produced by schema
// resolution, plus the validation and summary logic that operates on it.
// Types live here so that the schema resolver and the formatters can share
// them without import cycles.
//
// =============================================================================

package passenger

import "strings"

// Titles recognized as passenger categories. Anything else is carried through
// verbatim and flagged by the validator.
const (
	TitleMr     = "MR"
	TitleMrs    = "MRS"
	TitleChild  = "CHD"
	TitleInfant = "INF"
)

// Record is the canonical passenger record of the Aero pipeline. All fields
// hold raw cell text; normalization happens at validation/formatting time.
// A Record is immutable for the duration of one formatting pass.
type Record struct {
	// Surname is the passenger's family name.
	Surname string

	// GivenName is the passenger's first name.
	GivenName string

	// Title is the passenger category marker (MR/MRS/CHD/INF), or whatever
	// unrecognized text the manifest carried.
	Title string

	// Passport is the travel document number.
	Passport string

	// NationalityRaw is the free-text nationality column, resolved to a
	// country code by the nationality resolver.
	NationalityRaw string

	// PassExpireDate is the travel document expiry date cell.
	PassExpireDate string

	// Birthday is the date-of-birth cell.
	Birthday string
}

// NormalizedTitle returns the trimmed, uppercased title.
func (r Record) NormalizedTitle() string {
	return strings.ToUpper(strings.TrimSpace(r.Title))
}

// HasValidTitle reports whether the title is one of the recognized categories.
func (r Record) HasValidTitle() bool {
	switch r.NormalizedTitle() {
	case TitleMr, TitleMrs, TitleChild, TitleInfant:
		return true
	default:
		return false
	}
}

// AvioRecord is one raw row of the Avio pipeline's fixed four-column layout
// (reservation, title, surname, name). Rows missing surname or given name are
// dropped before processing; that is a filtering invariant of the pipeline,
// not a validation warning.
type AvioRecord struct {
	// Reservation is the opaque reservation identifier; may be absent.
	Reservation string

	// Title is the passenger category marker, possibly absent.
	Title string

	// Surname is the passenger's family name.
	Surname string

	// Name is the passenger's first name.
	Name string
}

// IsMissing reports whether a cell value is absent for business purposes:
// empty after trimming, or the textual representation of a missing value that
// spreadsheet tooling writes into exported cells.
func IsMissing(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || strings.EqualFold(v, "nan")
}

// NormalizeName collapses internal whitespace and uppercases a name part.
func NormalizeName(value string) string {
	return strings.ToUpper(strings.Join(strings.Fields(value), " "))
}
