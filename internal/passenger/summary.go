// =============================================================================
// PNL Generator - Passenger Summary
// =============================================================================
//
// Aggregate counts per passenger category, reported after an Aero run so the
// operator can sanity-check the manifest totals before sending anything
// downstream.
//
// =============================================================================

package passenger

// Summary holds aggregate passenger counts for one manifest.
type Summary struct {
	// Total is the number of passenger rows processed.
	Total int

	// Adults counts MR and MRS titles.
	Adults int

	// Children counts CHD titles.
	Children int

	// Infants counts INF titles.
	Infants int

	// Unknown counts rows whose title is not a recognized category.
	Unknown int
}

// Summarize counts passengers per category across a manifest.
func Summarize(records []Record) Summary {
	s := Summary{Total: len(records)}

	for _, rec := range records {
		switch rec.NormalizedTitle() {
		case TitleMr, TitleMrs:
			s.Adults++
		case TitleChild:
			s.Children++
		case TitleInfant:
			s.Infants++
		default:
			s.Unknown++
		}
	}

	return s
}
