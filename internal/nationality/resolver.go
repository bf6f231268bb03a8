// =============================================================================
// PNL Generator - Nationality Resolver
// =============================================================================
//
// This module maps the free-text nationality column of a manifest to the
// three-letter country code expected by the telex document line. Manifests
// are typed by hand, so the column carries everything from clean ISO names
// ("Bosnia and Herzegovina") to colloquial or historical ones ("Holland",
// "Russia") to plain typos ("Germny").
//
// RESOLUTION PIPELINE:
//   1. Normalize case and whitespace; empty or textual-missing values resolve
//      to the XXX sentinel immediately.
//   2. Consult the override table. Known colloquial and historical names are
//      pinned there so their resolution does not depend on the coverage of
//      the country reference database.
//   3. Exact lookup: an alpha-3 code typed directly, or an exact name match
//      in the reference database.
//   4. Fuzzy lookup: Levenshtein similarity against every reference country
//      name; the best candidate above the threshold wins.
//
// TOTALITY:
//   Resolve never fails. Any internal error, including a panic from the
//   lookup collaborator, degrades to the XXX sentinel.
//
// =============================================================================

package nationality

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/biter777/countries"
)

// Unresolved is the sentinel code returned when no country can be matched.
const Unresolved = "XXX"

// minSimilarity is the minimum normalized Levenshtein similarity (0..1) a
// fuzzy candidate must reach. Below this, misspellings are more likely to hit
// the wrong country than the right one.
const minSimilarity = 0.72

// overrides pins colloquial, historical and abbreviated names to their codes.
// The table is consulted before the reference database so these resolutions
// stay stable regardless of database coverage.
var overrides = map[string]string{
	"bosnia":                 "BIH",
	"bosnia & herzegovina":   "BIH",
	"bosnia and hercegovina": "BIH",
	"bih":                    "BIH",
	"holland":                "NLD",
	"england":                "GBR",
	"great britain":          "GBR",
	"uk":                     "GBR",
	"usa":                    "USA",
	"united states":          "USA",
	"russia":                 "RUS",
	"turkey":                 "TUR",
	"turkiye":                "TUR",
	"south korea":            "KOR",
	"north korea":            "PRK",
	"uae":                    "ARE",
	"czech republic":         "CZE",
	"macedonia":              "MKD",
	"kosovo":                 "XKX",
}

// Resolver resolves free-text nationality strings to alpha-3 country codes.
// The zero value is ready to use; the reference database is static and safe
// for concurrent reads.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve maps a free-text nationality to a 3-letter uppercase country code,
// or the XXX sentinel when the input is missing or unrecognizable. It never
// returns anything other than a well-formed 3-character code.
func (r *Resolver) Resolve(raw string) (code string) {
	// The reference database is an external collaborator; whatever it does,
	// a lookup failure must degrade to the sentinel rather than propagate.
	defer func() {
		if recover() != nil {
			code = Unresolved
		}
	}()

	name := normalize(raw)
	if name == "" || name == "nan" {
		return Unresolved
	}

	if code, ok := overrides[name]; ok {
		return code
	}

	// The original manifests sometimes carry the Bosnia name in longhand
	// variants; any mention of Bosnia resolves to BIH.
	if strings.Contains(name, "bosnia") {
		return "BIH"
	}

	if code, ok := exactMatch(name); ok {
		return code
	}

	if code, ok := fuzzyMatch(name); ok {
		return code
	}

	return Unresolved
}

// normalize lowercases the input and collapses internal whitespace.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// exactMatch recognizes a directly typed alpha-3 code or an exact country
// name from the reference database.
func exactMatch(name string) (string, bool) {
	codeCandidate := len(name) == 3 && isAlpha(name)

	for _, c := range countries.All() {
		a3 := c.Alpha3()
		if len(a3) != 3 {
			continue
		}
		if codeCandidate && strings.EqualFold(a3, name) {
			return a3, true
		}
		if normalize(c.String()) == name {
			return a3, true
		}
	}

	return "", false
}

// fuzzyMatch scores the input against every reference country name and
// returns the alpha-3 code of the best candidate above the threshold.
func fuzzyMatch(name string) (string, bool) {
	bestScore := 0.0
	bestCode := ""

	for _, c := range countries.All() {
		candidate := normalize(c.String())
		if candidate == "" {
			continue
		}

		score := similarity(name, candidate)
		if score > bestScore {
			a3 := c.Alpha3()
			if len(a3) != 3 {
				continue
			}
			bestScore = score
			bestCode = a3
		}
	}

	if bestScore >= minSimilarity && bestCode != "" {
		return bestCode, true
	}

	return "", false
}

// similarity computes a normalized Levenshtein similarity between 0 and 1,
// where 1 means identical strings.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}

	distance := levenshtein.ComputeDistance(a, b)

	return 1.0 - float64(distance)/float64(maxLen)
}

// isAlpha reports whether the string consists of ASCII letters only.
func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(s) > 0
}
