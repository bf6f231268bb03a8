// =============================================================================
// PNL Generator - Passenger Validator
// =============================================================================
//
// This module inspects one canonical passenger record and produces an ordered
// list of human-readable warnings describing missing or malformed fields.
// Warnings are advisory: the formatters still emit best-effort output with
// placeholders, and the warnings travel along as a trailing comment line.
//
// VALIDATION STRATEGY:
//   - Checks are independent; several warnings may co-occur on one record.
//   - The check order is fixed so output is deterministic.
//   - The two passport checks (missing vs bad format) are mutually exclusive.
//   - Warnings are collected, never thrown. Nothing here aborts a run.
//
// The highlight matrix for the display layer reuses exactly these predicates,
// so the highlighted cells and the textual warnings can never disagree.
//
// =============================================================================

package passenger

import (
	"regexp"
	"strings"

	"github.com/ctstest25/Avio-Aero-Obrada/internal/dates"
)

// Warning texts, in the order the checks run.
const (
	WarnMissingSurname     = "missing surname"
	WarnMissingGivenName   = "missing given name"
	WarnUnknownTitle       = "unknown or missing title"
	WarnMissingPassport    = "missing passport number"
	WarnInvalidPassport    = "invalid passport format"
	WarnInvalidBirthday    = "invalid or missing birthday"
	WarnInvalidExpiry      = "invalid or missing passport expiry"
	WarnUnknownNationality = "missing or unrecognized nationality"
)

// passportPattern is the accepted travel document number format: 5 to 10
// uppercase alphanumeric characters.
var passportPattern = regexp.MustCompile(`^[A-Z0-9]{5,10}$`)

// ValidPassport reports whether a cell value is a well-formed travel document
// number once trimmed and uppercased. Shared with the Aero formatter so the
// placeholder substitution and the validator warning use the same predicate.
func ValidPassport(value string) bool {
	return passportPattern.MatchString(strings.ToUpper(strings.TrimSpace(value)))
}

// CountryResolver resolves a free-text nationality to a 3-letter code, or the
// XXX sentinel when unrecognized. Implemented by the nationality package.
type CountryResolver interface {
	Resolve(raw string) string
}

// Validator checks canonical passenger records against the manifest rule set.
type Validator struct {
	countries CountryResolver
}

// NewValidator creates a Validator using the given nationality resolver.
func NewValidator(countries CountryResolver) *Validator {
	return &Validator{countries: countries}
}

// Validate returns the ordered warning list for one record. An empty slice
// means the record is clean. Validate is a pure function of the record (the
// country reference data is static) and has no side effects.
func (v *Validator) Validate(rec Record) []string {
	warnings := []string{}

	if strings.TrimSpace(rec.Surname) == "" {
		warnings = append(warnings, WarnMissingSurname)
	}
	if strings.TrimSpace(rec.GivenName) == "" {
		warnings = append(warnings, WarnMissingGivenName)
	}
	if !rec.HasValidTitle() {
		warnings = append(warnings, WarnUnknownTitle)
	}

	// Missing and bad-format are mutually exclusive: only one fires.
	passport := strings.ToUpper(strings.TrimSpace(rec.Passport))
	switch {
	case IsMissing(passport):
		warnings = append(warnings, WarnMissingPassport)
	case !passportPattern.MatchString(passport):
		warnings = append(warnings, WarnInvalidPassport)
	}

	if _, ok := dates.ParseDayFirst(rec.Birthday); !ok {
		warnings = append(warnings, WarnInvalidBirthday)
	}
	if _, ok := dates.ParseDayFirst(rec.PassExpireDate); !ok {
		warnings = append(warnings, WarnInvalidExpiry)
	}

	if v.countries.Resolve(rec.NationalityRaw) == "XXX" {
		warnings = append(warnings, WarnUnknownNationality)
	}

	return warnings
}

// =============================================================================
// HIGHLIGHT MATRIX
// =============================================================================

// Severity classifies a field defect for the display layer. Missing data and
// badly formatted data are highlighted differently.
type Severity int

const (
	// SeverityNone means the field needs no highlighting.
	SeverityNone Severity = iota

	// SeverityMissing marks a field whose value is absent.
	SeverityMissing

	// SeverityInvalid marks a field whose value is present but malformed.
	SeverityInvalid
)

// Highlight is the per-field highlight row for one record. Each field mirrors
// one validator check; the predicates are shared so highlights and warnings
// stay in agreement.
type Highlight struct {
	Surname        Severity
	GivenName      Severity
	Title          Severity
	Passport       Severity
	Birthday       Severity
	PassExpireDate Severity
	Nationality    Severity
}

// Highlights computes the highlight row for one record using exactly the same
// predicates as Validate.
func (v *Validator) Highlights(rec Record) Highlight {
	var h Highlight

	if strings.TrimSpace(rec.Surname) == "" {
		h.Surname = SeverityMissing
	}
	if strings.TrimSpace(rec.GivenName) == "" {
		h.GivenName = SeverityMissing
	}
	if !rec.HasValidTitle() {
		h.Title = SeverityMissing
	}

	passport := strings.ToUpper(strings.TrimSpace(rec.Passport))
	switch {
	case IsMissing(passport):
		h.Passport = SeverityMissing
	case !passportPattern.MatchString(passport):
		h.Passport = SeverityInvalid
	}

	if _, ok := dates.ParseDayFirst(rec.Birthday); !ok {
		h.Birthday = SeverityMissing
	}
	if _, ok := dates.ParseDayFirst(rec.PassExpireDate); !ok {
		h.PassExpireDate = SeverityMissing
	}

	if v.countries.Resolve(rec.NationalityRaw) == "XXX" {
		h.Nationality = SeverityMissing
	}

	return h
}
