package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]`)

// trailing venue clauses as sources render them, e.g.
// "Worlds End In Long Island, NY" or "Wrestle Kingdom At Tokyo Dome".
// the preposition must be title-cased so event names like
// "Bash at the Beach" survive intact.
var venueClauseRegex = regexp.MustCompile(`\s(?:In|At)\s+[A-Z][A-Za-z0-9 .'&-]*(?:,\s*[A-Za-z0-9 .'-]+)?$`)

// StripVenueClause removes a trailing "In <Venue>[, <Location>]" or
// "At <Venue>[, <Location>]" suffix so the same event scraped from two
// sources with different venue suffixes collapses to one name.
func StripVenueClause(name string) string {
	return venueClauseRegex.ReplaceAllString(name, "")
}

// sources disagree on whether a show name carries its promotion
// ("AEW Worlds End" vs "Worlds End 2025"), so a leading promotion token
// is stripped from the key. long forms come before their abbreviations.
var promotionPrefixes = []string{
	"worldwrestlingentertainment",
	"allelitewrestling",
	"newjapanprowrestling",
	"totalnonstopaction",
	"impactwrestling",
	"ringofhonor",
	"njpw",
	"wwe",
	"aew",
	"tna",
	"roh",
}

var trailingYearRegex = regexp.MustCompile(`(?:19|20)\d{2}$`)

// DedupKey reduces an event name to the key used to decide whether two
// records refer to the same event: venue clause stripped, lowercased,
// non-alphanumeric characters removed, then a leading promotion token
// and a trailing year dropped. either strip is skipped when it would
// empty the key.
func DedupKey(name string) string {
	name = StripVenueClause(name)
	name = strings.ToLower(name)
	name = nonAlphanumericRegex.ReplaceAllString(name, "")

	for _, prefix := range promotionPrefixes {
		trimmed := strings.TrimPrefix(name, prefix)
		if trimmed != name && trimmed != "" {
			name = trimmed
			break
		}
	}
	if trimmed := trailingYearRegex.ReplaceAllString(name, ""); trimmed != "" {
		name = trimmed
	}
	return name
}
