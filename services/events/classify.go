package events

import (
	"regexp"
	"strings"
)

// named events that look like periodic broadcasts but are one-off
// ticketed shows. checked strictly before the pattern list: several of
// these are superstrings of broadcast patterns ("Saturday Night's Main
// Event" contains "main event", "NXT TakeOver" contains "nxt").
var specialEventExceptions = []string{
	"saturday night's main event",
	"saturday night main event",
	"nxt takeover",
	"nxt stand & deliver",
	"nxt stand and deliver",
	"bound for glory",
}

// recurring-program name patterns. kept as data so adding a show does
// not touch the reconciler.
var periodicBroadcastPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\braw\b`),
	regexp.MustCompile(`\bsmackdown\b`),
	regexp.MustCompile(`\bmain event\b`),
	regexp.MustCompile(`\bnxt\b`),
	regexp.MustCompile(`\bdynamite\b`),
	regexp.MustCompile(`\bcollision\b`),
	regexp.MustCompile(`\brampage\b`),
	regexp.MustCompile(`\bdark\b`),
	regexp.MustCompile(`\belevation\b`),
	regexp.MustCompile(`\bimpact\b`),
	regexp.MustCompile(`\bsuperstars\b`),
	regexp.MustCompile(`\bvelocity\b`),
	regexp.MustCompile(`\btelevision taping\b`),
	regexp.MustCompile(`\btv taping\b`),
	regexp.MustCompile(`\bhouse show\b`),
	regexp.MustCompile(`\bdark match\b`),
	regexp.MustCompile(`\blive event\b`),
	regexp.MustCompile(`#\d+`),
}

// Classify reports whether an event name denotes a periodic broadcast
// (a recurring weekly program) as opposed to a special event. the
// exception check must run before the pattern check, that ordering is
// load-bearing.
func Classify(name string) bool {
	lowered := strings.ToLower(name)

	for _, exception := range specialEventExceptions {
		if strings.Contains(lowered, exception) {
			return false
		}
	}
	for _, pattern := range periodicBroadcastPatterns {
		if pattern.MatchString(lowered) {
			return true
		}
	}
	return false
}
