package source

import "strings"

// team separator tokens in rough order of reliability. splitting on
// " and " before ", " keeps "Los Ingobernables" style stable names from
// shattering on commas first.
var teamSeparators = []string{" & ", " and ", ", "}

func SplitParticipants(text string) []Participant {
	parts := []string{strings.TrimSpace(text)}
	for _, sep := range teamSeparators {
		var next []string
		for _, p := range parts {
			next = append(next, strings.Split(p, sep)...)
		}
		parts = next
	}

	var out []Participant
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, Participant{DisplayName: p})
	}
	return out
}

// language-specific outcome markers, longest first so " defeats "
// matches before " defeat ".
var outcomeMarkers = []string{
	" defeats ",
	" defeat ",
	" beats ",
	" beat ",
	" def. ",
	" wins against ",
}

// SplitOutcome splits a result line like "A & B defeat C & D" into the
// winning and losing halves.
func SplitOutcome(text string) (winners string, losers string, ok bool) {
	for _, marker := range outcomeMarkers {
		idx := strings.Index(text, marker)
		if idx < 0 {
			continue
		}
		return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+len(marker):]), true
	}
	return "", "", false
}

var teamTypeHints = []string{"tag", "trios", "six man", "six-man", "8-man", "eight man"}

func IsTeamType(typeText string, participantCount int) bool {
	typeText = strings.ToLower(typeText)
	for _, hint := range teamTypeHints {
		if strings.Contains(typeText, hint) {
			return true
		}
	}
	return participantCount > 2
}

// FallbackSides splits a participant list when no outcome marker was
// found. team-looking matches split at the midpoint in listed order;
// anything else takes the first two participants as the two sides.
// this is a better-than-nothing heuristic, not a guarantee.
func FallbackSides(participants []Participant, typeText string) (side1 []Participant, side2 []Participant) {
	if len(participants) < 2 {
		return nil, nil
	}
	if IsTeamType(typeText, len(participants)) {
		mid := (len(participants) + 1) / 2
		return participants[:mid], participants[mid:]
	}
	return participants[:1], participants[1:2]
}
