package events

import (
	"testing"
	"time"

	"ringside-backend/lib/scrapers/source"
	"ringside-backend/lib/timezone"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"04.01.2026", "Jan 4, 2026"},
		{"Jan 4th 2026", "Jan 4, 2026"},
		{"28.12.2025", "Dec 28, 2025"},
		{"Dec 28th 2025", "Dec 28, 2025"},
		// unparseable input passes through unchanged
		{"sometime next week", "sometime next week"},
		{"", ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeDate(test.input), test.input)
	}
}

func TestMapPromotion(t *testing.T) {
	testCases := []struct {
		scraped string
		id      string
		ok      bool
	}{
		{"All Elite Wrestling", "aew", true},
		{"AEW", "aew", true},
		{"World Wrestling Entertainment", "wwe", true},
		{"New Japan Pro-Wrestling", "njpw", true},
		{"Impact Wrestling", "tna", true},
		{"Ring Of Honor", "roh", true},
		{"Consejo Mundial de Lucha Libre", "", false},
		{"", "", false},
	}

	for _, test := range testCases {
		id, _, ok := MapPromotion(test.scraped)
		require.Equal(t, test.ok, ok, test.scraped)
		require.Equal(t, test.id, id, test.scraped)
	}
}

func TestCandidate(t *testing.T) {
	now := timezone.Now()
	window := source.Window{
		Start: now.AddDate(0, 0, -14),
		End:   now.AddDate(0, 0, 180),
	}
	norm := newNormalizer([]string{"aew", "wwe"}, window)

	inWindow := now.AddDate(0, 0, 7).Format("02.01.2006")
	snap := source.Snapshot{Source: "cagematch"}

	{
		c, ok := norm.candidate(source.Event{
			Name:          "Worlds End 2025",
			DateText:      inWindow,
			PromotionName: "All Elite Wrestling",
			VenueText:     "Long Island, New York, USA",
		}, snap, true)
		require.True(t, ok)
		require.Equal(t, "worldsend", c.Event.DedupKey)
		require.Equal(t, "aew", c.Event.PromotionID)
		require.Equal(t, "AEW", c.Event.PromotionName)
		require.True(t, c.Event.IsSpecialEvent)
		require.False(t, c.Event.IsPeriodicBroadcast)
		require.Equal(t, "cagematch", c.Source)
		require.True(t, c.SourceHasWinners)
	}
	{
		// unmapped promotion is excluded
		_, ok := norm.candidate(source.Event{
			Name:          "Super Viernes",
			DateText:      inWindow,
			PromotionName: "CMLL",
		}, snap, true)
		require.False(t, ok)
	}
	{
		// mapped but outside the allow-list
		_, ok := norm.candidate(source.Event{
			Name:          "Wrestle Kingdom 20",
			DateText:      inWindow,
			PromotionName: "New Japan Pro-Wrestling",
		}, snap, true)
		require.False(t, ok)
	}
	{
		// a parseable date outside the window is excluded
		_, ok := norm.candidate(source.Event{
			Name:          "Worlds End 2025",
			DateText:      now.AddDate(0, 0, 200).Format("02.01.2006"),
			PromotionName: "AEW",
		}, snap, true)
		require.False(t, ok)
	}
	{
		// an unparseable date is kept, it just can't be window-checked
		c, ok := norm.candidate(source.Event{
			Name:          "Worlds End 2025",
			DateText:      "date TBA",
			PromotionName: "AEW",
		}, snap, true)
		require.True(t, ok)
		require.Equal(t, "date TBA", c.Event.Date)
	}
	{
		// the promotion may come from the snapshot's promotion records
		// instead of the listing row
		withPromos := source.Snapshot{
			Source: "cagematch",
			Promotions: []source.Promotion{
				{ExternalID: "2287", Name: "All Elite Wrestling"},
			},
		}
		c, ok := norm.candidate(source.Event{
			Name:                "Worlds End 2025",
			DateText:            inWindow,
			PromotionExternalID: "2287",
		}, withPromos, true)
		require.True(t, ok)
		require.Equal(t, "aew", c.Event.PromotionID)
	}
}

func TestConvertMatches(t *testing.T) {
	raw := []source.Match{
		{
			Ordinal: 0,
			Side1:   []source.Participant{{DisplayName: "Jon Moxley", Slug: "jon-moxley-2617"}},
			Side2:   []source.Participant{{DisplayName: "Darby Allin"}},
			Winner:  source.WinnerSide1,
		},
		{
			Ordinal: 1,
			Side1: []source.Participant{
				{DisplayName: "Kenny Omega"},
				{DisplayName: "Kota Ibushi"},
			},
			Side2: []source.Participant{
				{DisplayName: "Matt Jackson"},
				{DisplayName: "Nick Jackson"},
			},
			Winner:   source.WinnerSide2,
			TypeText: "Tag Team",
		},
		// a side with no members drops the whole match
		{
			Ordinal: 2,
			Side1:   []source.Participant{{DisplayName: "Sting"}},
		},
	}

	matches := convertMatches(raw)
	require.Len(t, matches, 2)

	require.Equal(t, "Jon Moxley", matches[0].Side1.Label)
	require.Equal(t, "Jon Moxley", matches[0].WinnerLabel)
	require.False(t, matches[0].IsTeamMatch)

	require.Equal(t, "Kenny Omega & Kota Ibushi", matches[1].Side1.Label)
	require.Equal(t, "Matt Jackson & Nick Jackson", matches[1].WinnerLabel)
	require.True(t, matches[1].IsTeamMatch)

	// duration of an unplayed match stays empty rather than zero
	require.Empty(t, matches[0].DurationText)
}

func TestCandidateDateWithinWindow(t *testing.T) {
	// the window check and the canonical form agree on timezone
	loc := timezone.Location
	parsed, err := source.ParseDate("04.01.2026", loc)
	require.NoError(t, err)
	require.Equal(t, time.January, parsed.Month())
	require.Equal(t, loc, parsed.Location())
}
