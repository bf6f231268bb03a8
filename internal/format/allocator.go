// =============================================================================
// PNL Generator - Reservation Code Allocator
// =============================================================================
//
// The airline PNL format references passengers through short numeric codes
// rather than the agency reservation identifiers the manifest carries. This
// module assigns a stable synthetic code to each distinct reservation
// identifier in first-seen order.
//
// SCOPE:
//   One allocator per Avio formatting run. The allocator is plain local state
//   and must not be shared across concurrent runs; each invocation gets a
//   fresh one.
//
// MISSING RESERVATIONS:
//   A row with no reservation identifier gets its own distinct code. Missing
//   rows must never collapse onto one shared code; an earlier revision of the
//   format did exactly that, and downstream systems then merged unrelated
//   passengers into a single booking.
//
// =============================================================================

package format

import "fmt"

// ReservationCodes allocates synthetic reservation codes within one Avio run.
type ReservationCodes struct {
	codes map[string]string
	next  int
	anon  int
}

// NewReservationCodes creates a fresh allocator starting at code "00001".
func NewReservationCodes() *ReservationCodes {
	return &ReservationCodes{
		codes: make(map[string]string),
		next:  1,
	}
}

// Allocate returns the code for a reservation identifier, assigning the next
// code in sequence on first encounter. Repeated calls with the same
// identifier return the same code.
func (a *ReservationCodes) Allocate(id string) string {
	if code, ok := a.codes[id]; ok {
		return code
	}

	code := fmt.Sprintf("%05d", a.next)
	a.next++
	a.codes[id] = code

	return code
}

// AllocateAnonymous allocates a code for a row that carries no reservation
// identifier. Every call produces a distinct code: missing-reservation rows
// never share one.
func (a *ReservationCodes) AllocateAnonymous() string {
	a.anon++
	return a.Allocate(fmt.Sprintf("\x00missing-%d", a.anon))
}
