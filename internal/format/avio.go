// =============================================================================
// PNL Generator - Avio PNL Formatter
// =============================================================================
//
// This module emits the airline PNL telex message: header lines, one line per
// passenger, and the ENDPNL footer. Rows reach this formatter already
// filtered (surname and given name present); everything else degrades to
// sentinels rather than failing.
//
// LINE TEMPLATES:
//   adult / unknown : 1SURNAME/NAMEMR.L/00001
//   infant          : .R/INFT SURNAME/NAMEINF .L/00001
//   child           : .R/1CHD SURNAME/NAMECHD .L/00001
//
// =============================================================================

package format

import (
	"strings"
	"time"

	"github.com/ctstest25/Avio-Aero-Obrada/internal/passenger"
)

// MissingTitleSentinel marks a passenger whose title column is absent. The
// telex format has no empty-field convention, so the sentinel text is emitted
// literally rather than silently dropping the suffix.
const MissingTitleSentinel = "FALI TITULA"

// PNL message frame.
const (
	pnlHeader = "PNL"
	pnlFooter = "ENDPNL"
)

// AvioFormatter emits PNL documents. Each call to FormatDocument uses a fresh
// reservation code allocator, so the formatter itself is safe for concurrent
// use.
type AvioFormatter struct{}

// NewAvioFormatter creates an AvioFormatter.
func NewAvioFormatter() *AvioFormatter {
	return &AvioFormatter{}
}

// FormatDocument builds the full PNL message. The flight designator and
// flight code are caller-supplied opaque strings, passed through trimmed and
// otherwise unvalidated.
func (f *AvioFormatter) FormatDocument(flightDesignator, flightCode string, rows []passenger.AvioRecord) string {
	codes := NewReservationCodes()

	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, pnlHeader, strings.TrimSpace(flightDesignator), strings.TrimSpace(flightCode))

	for _, row := range rows {
		lines = append(lines, formatAvioLine(row, codes))
	}

	lines = append(lines, pnlFooter)

	return strings.Join(lines, "\n")
}

// formatAvioLine builds one passenger line, allocating the reservation code.
func formatAvioLine(row passenger.AvioRecord, codes *ReservationCodes) string {
	var code string
	if passenger.IsMissing(row.Reservation) {
		code = codes.AllocateAnonymous()
	} else {
		code = codes.Allocate(strings.TrimSpace(row.Reservation))
	}

	surname := strings.ToUpper(strings.TrimSpace(row.Surname))
	name := strings.ToUpper(strings.TrimSpace(row.Name))

	title := strings.ToUpper(strings.TrimSpace(row.Title))
	suffix := title
	if passenger.IsMissing(title) {
		suffix = MissingTitleSentinel
	}

	entry := surname + "/" + name + suffix

	switch title {
	case passenger.TitleInfant:
		return ".R/INFT " + entry + " .L/" + code
	case passenger.TitleChild:
		return ".R/1CHD " + entry + " .L/" + code
	default:
		return "1" + entry + ".L/" + code
	}
}

// AvioExportFilename returns the download name of a PNL document generated at
// the given time, e.g. "PNL_Export_31082026.txt".
func AvioExportFilename(now time.Time) string {
	return "PNL_Export_" + now.Format("02012006") + ".txt"
}
