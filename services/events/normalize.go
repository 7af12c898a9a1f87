package events

import (
	"strings"

	"ringside-backend/lib/scrapers/source"
	"ringside-backend/lib/textutil"
	"ringside-backend/lib/timezone"
)

const canonicalDateLayout = "Jan 2, 2006"

// NormalizeDate converts the date formats sources emit into the
// canonical "Jan 2, 2006" form. unparseable input passes through
// unchanged so an event that had some date text never loses it.
func NormalizeDate(text string) string {
	t, err := source.ParseDate(text, timezone.Location)
	if err != nil {
		return text
	}
	return t.Format(canonicalDateLayout)
}

type promotionRule struct {
	substr string
	id     string
	name   string
}

// ordered, first match wins. longer names come before their
// abbreviations so "world wrestling entertainment" isn't shadowed.
var promotionRules = []promotionRule{
	{"world wrestling entertainment", "wwe", "WWE"},
	{"wwe", "wwe", "WWE"},
	{"all elite wrestling", "aew", "AEW"},
	{"aew", "aew", "AEW"},
	{"new japan", "njpw", "NJPW"},
	{"njpw", "njpw", "NJPW"},
	{"total nonstop action", "tna", "TNA"},
	{"impact wrestling", "tna", "TNA"},
	{"tna", "tna", "TNA"},
	{"ring of honor", "roh", "ROH"},
	{"roh", "roh", "ROH"},
}

// MapPromotion maps a scraped promotion name onto the canonical
// promotion set by case-insensitive substring match. promotions outside
// the curated set are excluded from further processing.
func MapPromotion(scraped string) (id string, name string, ok bool) {
	lowered := strings.ToLower(scraped)
	for _, rule := range promotionRules {
		if strings.Contains(lowered, rule.substr) {
			return rule.id, rule.name, true
		}
	}
	return "", "", false
}

// Candidate is a raw event after normalization and classification,
// ready for the reconciler. candidates live for one run only.
type Candidate struct {
	Event CanonicalEvent
	// which source produced this candidate
	Source string
	// whether that source carries structured winner data; decides the
	// match-list tie-break
	SourceHasWinners bool
}

type normalizer struct {
	// canonical promotion ids to keep, empty means every known
	// promotion
	allowed map[string]bool
	window  source.Window
}

func newNormalizer(promotions []string, window source.Window) normalizer {
	allowed := map[string]bool{}
	for _, p := range promotions {
		allowed[strings.ToLower(p)] = true
	}
	return normalizer{allowed: allowed, window: window}
}

// candidate turns one raw event into a Candidate. the bool result is
// false when the record is excluded: unmapped promotion, or a
// parseable date outside the window. an unparseable date is kept, it
// just can't be window-checked.
func (n normalizer) candidate(raw source.Event, snap source.Snapshot, hasWinners bool) (Candidate, bool) {
	promoID, promoName, ok := MapPromotion(promotionNameFor(raw, snap))
	if !ok {
		return Candidate{}, false
	}
	if len(n.allowed) > 0 && !n.allowed[promoID] {
		return Candidate{}, false
	}

	date, err := source.ParseDate(raw.DateText, timezone.Location)
	if err == nil && !n.window.Contains(date) {
		return Candidate{}, false
	}

	name := strings.TrimSpace(raw.Name)
	isPeriodic := Classify(name)

	ev := CanonicalEvent{
		DedupKey:            textutil.DedupKey(name),
		Name:                name,
		Date:                NormalizeDate(raw.DateText),
		Venue:               strings.TrimSpace(raw.VenueText),
		PromotionID:         promoID,
		PromotionName:       promoName,
		IsPeriodicBroadcast: isPeriodic,
		IsSpecialEvent:      !isPeriodic,
		Matches:             convertMatches(raw.Matches),
	}
	return Candidate{
		Event:            ev,
		Source:           snap.Source,
		SourceHasWinners: hasWinners,
	}, true
}

// the listing row may carry the promotion name inline, or only a
// reference into the snapshot's promotion records
func promotionNameFor(raw source.Event, snap source.Snapshot) string {
	if raw.PromotionName != "" {
		return raw.PromotionName
	}
	for _, p := range snap.Promotions {
		if p.ExternalID == raw.PromotionExternalID {
			return p.Name
		}
	}
	return ""
}

func convertMatches(raw []source.Match) []Match {
	var out []Match
	for _, m := range raw {
		side1 := convertSide(m.Side1)
		side2 := convertSide(m.Side2)
		if len(side1.Members) == 0 || len(side2.Members) == 0 {
			continue
		}

		winnerLabel := ""
		switch m.Winner {
		case source.WinnerSide1:
			winnerLabel = side1.Label
		case source.WinnerSide2:
			winnerLabel = side2.Label
		}

		out = append(out, Match{
			Ordinal:      m.Ordinal,
			Title:        m.TitleText,
			Side1:        side1,
			Side2:        side2,
			WinnerLabel:  winnerLabel,
			DurationText: m.DurationText,
			TypeText:     m.TypeText,
			IsTeamMatch:  len(m.Side1) > 1 || len(m.Side2) > 1,
		})
	}
	return out
}

func convertSide(members []source.Participant) Side {
	side := Side{}
	names := make([]string, 0, len(members))
	for _, p := range members {
		name := strings.TrimSpace(p.DisplayName)
		if name == "" {
			continue
		}
		names = append(names, name)
		side.Members = append(side.Members, Participant{
			Name: name,
			Slug: p.Slug,
			// image urls are filled in by the downstream resolver
			ImageURL: p.ImageURL,
		})
	}
	side.Label = strings.Join(names, " & ")
	return side
}
