package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctstest25/Avio-Aero-Obrada/internal/nationality"
	"github.com/ctstest25/Avio-Aero-Obrada/internal/passenger"
)

func newAeroFormatter() *AeroFormatter {
	countries := nationality.NewResolver()
	return NewAeroFormatter(passenger.NewValidator(countries), countries)
}

func TestFormatPassengerAdult(t *testing.T) {
	f := newAeroFormatter()

	block := f.FormatPassenger(passenger.Record{
		Surname:        "Smith",
		GivenName:      "John",
		Title:          "mr",
		Passport:       "AB12345",
		NationalityRaw: "Bosnia and Herzegovina",
		Birthday:       "01/02/1990",
		PassExpireDate: "15/09/2030",
	})

	assert.Equal(t, "1SMITH/JOHNMR\n"+
		".R/DOCS HK1/P/BIH/AB12345/BIH/15SEP30/\n"+
		".RN/MR/01FEB90/SMITH/JOHN", block)
}

func TestFormatPassengerInfant(t *testing.T) {
	f := newAeroFormatter()

	block := f.FormatPassenger(passenger.Record{
		Surname:        "Smith",
		GivenName:      "Lea",
		Title:          "INF",
		Passport:       "CD98765",
		NationalityRaw: "Germany",
		Birthday:       "05/07/2024",
		PassExpireDate: "05/07/2027",
	})

	assert.Equal(t, ".R/INF SMITH/LEA\n"+
		".R/DOCS HK1/P/DEU/CD98765/DEU/05JUL27/\n"+
		".RN/INF/05JUL24/SMITH/LEA", block)
}

// The child's secondary line carries the MR marker regardless of the child's
// own title; fixed convention of the receiving system.
func TestFormatPassengerChildUsesMRMarker(t *testing.T) {
	f := newAeroFormatter()

	block := f.FormatPassenger(passenger.Record{
		Surname:        "Smith",
		GivenName:      "Tom",
		Title:          "chd",
		Passport:       "EF55555",
		NationalityRaw: "Croatia",
		Birthday:       "10/10/2015",
		PassExpireDate: "01/01/2031",
	})

	lines := strings.Split(block, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ".R/1CHD 1SMITH/TOMCHD", lines[0])
	assert.Equal(t, ".RN/MR/10OCT15/SMITH/TOM", lines[2])
}

func TestFormatPassengerPlaceholders(t *testing.T) {
	f := newAeroFormatter()

	block := f.FormatPassenger(passenger.Record{
		Surname:   "Doe",
		GivenName: "Jane",
	})

	lines := strings.Split(block, "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "1DOE/JANE", lines[0])
	assert.Equal(t, ".R/DOCS HK1/P/XXX/XXXXXXX/XXX/XXMMMXX/", lines[1])
	assert.Equal(t, ".RN//XXMMMXX/DOE/JANE", lines[2])

	// The trailing warning line lists exactly the five applicable defects:
	// surname and given name are present, everything else is not.
	require.True(t, strings.HasPrefix(lines[3], "# WARNING: "))
	warnings := strings.Split(strings.TrimPrefix(lines[3], "# WARNING: "), ", ")
	assert.Equal(t, []string{
		passenger.WarnUnknownTitle,
		passenger.WarnMissingPassport,
		passenger.WarnInvalidBirthday,
		passenger.WarnInvalidExpiry,
		passenger.WarnUnknownNationality,
	}, warnings)
}

// A malformed passport number is substituted like a missing one; only the
// warning text distinguishes the two cases.
func TestFormatPassengerInvalidPassportPlaceholder(t *testing.T) {
	f := newAeroFormatter()

	rec := passenger.Record{
		Surname:        "Smith",
		GivenName:      "John",
		Title:          "MR",
		Passport:       "AB 1234!",
		NationalityRaw: "Bosnia",
		Birthday:       "01/02/1990",
		PassExpireDate: "15/09/2030",
	}

	block := f.FormatPassenger(rec)
	lines := strings.Split(block, "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, ".R/DOCS HK1/P/BIH/"+PassportPlaceholder+"/BIH/15SEP30/", lines[1])
	assert.Equal(t, "# WARNING: "+passenger.WarnInvalidPassport, lines[3])
}

func TestFormatPassengerNeverEmpty(t *testing.T) {
	f := newAeroFormatter()

	block := f.FormatPassenger(passenger.Record{})
	assert.NotEmpty(t, block)
	assert.Contains(t, block, "# WARNING: ")
}

func TestFormatPassengerNormalizesNames(t *testing.T) {
	f := newAeroFormatter()

	block := f.FormatPassenger(passenger.Record{
		Surname:        " van  der Berg ",
		GivenName:      "  Anna  Maria ",
		Title:          "MRS",
		Passport:       "GH11111",
		NationalityRaw: "Bosnia",
		Birthday:       "02/03/1985",
		PassExpireDate: "04/05/2030",
	})

	assert.True(t, strings.HasPrefix(block, "1VAN DER BERG/ANNA MARIAMRS\n"))
}

func TestFormatDocument(t *testing.T) {
	f := newAeroFormatter()

	records := []passenger.Record{
		{
			Surname: "Smith", GivenName: "John", Title: "MR",
			Passport: "AB12345", NationalityRaw: "Bosnia",
			Birthday: "01/02/1990", PassExpireDate: "15/09/2030",
		},
		{Surname: "Doe", GivenName: "Jane"},
	}

	doc := f.FormatDocument(records)

	// Blocks are separated by exactly one blank line, in input order.
	blocks := strings.Split(doc, "\n\n")
	require.Len(t, blocks, 2)
	assert.True(t, strings.HasPrefix(blocks[0], "1SMITH/JOHNMR"))
	assert.True(t, strings.HasPrefix(blocks[1], "1DOE/JANE"))
}

// Re-running the formatter on identical input produces byte-identical output.
func TestFormatDocumentDeterministic(t *testing.T) {
	f := newAeroFormatter()

	records := []passenger.Record{
		{Surname: "Smith", GivenName: "John", Title: "MR", Passport: "AB12345",
			NationalityRaw: "Bosnia", Birthday: "01/02/1990", PassExpireDate: "15/09/2030"},
		{Surname: "Doe", GivenName: "Jane", Title: "??"},
	}

	first := f.FormatDocument(records)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, f.FormatDocument(records))
	}
}
