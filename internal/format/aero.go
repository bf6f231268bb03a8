// =============================================================================
// PNL Generator - Aero Record Formatter
// =============================================================================
//
// This module emits the airport-side passport/identity text blocks. Each
// passenger becomes one multi-line block whose line templates depend on the
// passenger category (adult, child, infant); blocks are joined with a blank
// line, in manifest row order.
//
// DEGRADATION:
//   The formatter never fails on bad data. Missing or malformed fields are
//   substituted with fixed sentinels (XXXXXXX, XXX, XXMMMXX) so downstream
//   fixed-width consumers still receive well-formed lines, and the validator
//   warnings are appended as a trailing comment line.
//
// =============================================================================

package format

import (
	"strings"

	"github.com/ctstest25/Avio-Aero-Obrada/internal/dates"
	"github.com/ctstest25/Avio-Aero-Obrada/internal/passenger"
)

// PassportPlaceholder is substituted for a missing passport number.
const PassportPlaceholder = "XXXXXXX"

// AeroExportFilename is the download name of the generated Aero document.
const AeroExportFilename = "aerodrom_export.txt"

// AeroFormatter emits Aero passenger blocks. It is stateless and safe for
// concurrent use.
type AeroFormatter struct {
	validator *passenger.Validator
	countries passenger.CountryResolver
}

// NewAeroFormatter creates an AeroFormatter using the given validator and
// nationality resolver.
func NewAeroFormatter(validator *passenger.Validator, countries passenger.CountryResolver) *AeroFormatter {
	return &AeroFormatter{validator: validator, countries: countries}
}

// FormatDocument formats a whole manifest: one block per record, joined with
// a blank line between blocks, in input order. Re-running on identical input
// produces byte-identical output.
func (f *AeroFormatter) FormatDocument(records []passenger.Record) string {
	blocks := make([]string, len(records))
	for i, rec := range records {
		blocks[i] = f.FormatPassenger(rec)
	}
	return strings.Join(blocks, "\n\n")
}

// FormatPassenger formats one passenger block. The block is never empty, even
// for a record with every field missing.
func (f *AeroFormatter) FormatPassenger(rec passenger.Record) string {
	warnings := f.validator.Validate(rec)

	surname := passenger.NormalizeName(rec.Surname)
	name := passenger.NormalizeName(rec.GivenName)
	fullName := surname + "/" + name
	title := rec.NormalizedTitle()

	// Missing and malformed passports both render as the placeholder; the
	// document line must always carry a well-formed field.
	pass := strings.ToUpper(strings.TrimSpace(rec.Passport))
	if !passenger.ValidPassport(pass) {
		pass = PassportPlaceholder
	}

	nat := f.countries.Resolve(rec.NationalityRaw)
	expiry := dates.RenderCell(rec.PassExpireDate)
	birthday := dates.RenderCell(rec.Birthday)

	docLine := ".R/DOCS HK1/P/" + nat + "/" + pass + "/" + nat + "/" + expiry + "/"

	var lines []string
	switch title {
	case passenger.TitleInfant:
		lines = []string{
			".R/INF " + fullName,
			docLine,
			".RN/INF/" + birthday + "/" + fullName,
		}
	case passenger.TitleChild:
		// The child's secondary line always carries the MR marker. That is a
		// fixed convention of the receiving system, independent of the
		// child's own title.
		lines = []string{
			".R/1CHD 1" + fullName + "CHD",
			docLine,
			".RN/MR/" + birthday + "/" + fullName,
		}
	default:
		// Adults, and any unrecognized title carried through verbatim.
		lines = []string{
			"1" + fullName + title,
			docLine,
			".RN/" + title + "/" + birthday + "/" + fullName,
		}
	}

	if len(warnings) > 0 {
		lines = append(lines, "# WARNING: "+strings.Join(warnings, ", "))
	}

	return strings.Join(lines, "\n")
}
