package cagematch

import (
	"context"
	"testing"

	"ringside-backend/lib/scrapers/source"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const listingFixture = `
<html><body>
<table class="TBase">
  <tr class="THeaderRow"><td>Date</td><td></td><td>Event</td><td>Location</td></tr>
  <tr class="TRow1">
    <td class="TCol">28.12.2025</td>
    <td class="TCol"><a href="?id=8&nr=2287"><img src="/img/aew.png" title="All Elite Wrestling"></a></td>
    <td class="TCol"><a href="?id=1&nr=399019">Worlds End 2025</a></td>
    <td class="TCol">Long&nbsp;Island, New&nbsp;York, USA</td>
  </tr>
  <tr class="TRow2">
    <td class="TCol">04.01.2026</td>
    <td class="TCol"><a href="?id=8&nr=1"><img src="/img/wwe.png" title="World Wrestling Entertainment"></a></td>
    <td class="TCol"><a href="?id=1&nr=400001">Saturday Night's Main Event</a></td>
    <td class="TCol">San Antonio, Texas, USA</td>
  </tr>
  <tr class="TRow1">
    <td class="TCol">05.01.2026</td>
  </tr>
</table>
</body></html>`

func TestExtractListing(t *testing.T) {
	out, err := extractListing(context.Background(), []byte(listingFixture))
	require.NoError(t, err)

	expected := []source.Event{
		{
			ExternalID:          "399019",
			Name:                "Worlds End 2025",
			DateText:            "28.12.2025",
			PromotionExternalID: "2287",
			PromotionName:       "All Elite Wrestling",
			VenueText:           "Long Island, New York, USA",
		},
		{
			ExternalID:          "400001",
			Name:                "Saturday Night's Main Event",
			DateText:            "04.01.2026",
			PromotionExternalID: "1",
			PromotionName:       "World Wrestling Entertainment",
			VenueText:           "San Antonio, Texas, USA",
		},
	}
	diff := cmp.Diff(expected, out.Events)
	if diff != "" {
		t.Fatal(diff)
	}

	require.Len(t, out.Promotions, 2)
	require.Equal(t, "2287", out.Promotions[0].ExternalID)
	require.Equal(t, "/img/aew.png", out.Promotions[0].LogoURL)
}

const matchesFixture = `
<html><body>
<div class="Matches">
  <div class="Match">
    <div class="MatchType">Singles Match</div>
    <div class="MatchResults">Jon Moxley defeats Darby Allin (12:34)</div>
  </div>
  <div class="Match">
    <div class="MatchType"><a href="?id=5&nr=42">AEW World Tag Team Title</a> Tag Team Match</div>
    <div class="MatchResults">Kenny Omega &amp; Kota Ibushi defeat Matt Jackson &amp; Nick Jackson (22:08)</div>
  </div>
  <div class="Match">
    <div class="MatchType">Four Way Match</div>
    <div class="MatchResults"></div>
  </div>
  <div class="Match">
    <div class="MatchType">Tag Team Match</div>
    <div class="MatchResults">A, B, C &amp; D</div>
  </div>
</div>
</body></html>`

func TestExtractMatches(t *testing.T) {
	matches, err := extractMatches(context.Background(), []byte(matchesFixture))
	require.NoError(t, err)
	require.Len(t, matches, 3)

	expected := []source.Match{
		{
			Ordinal:      0,
			Side1:        []source.Participant{{DisplayName: "Jon Moxley"}},
			Side2:        []source.Participant{{DisplayName: "Darby Allin"}},
			Winner:       source.WinnerSide1,
			DurationText: "12:34",
			TypeText:     "Singles Match",
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
			Winner:       source.WinnerSide1,
			DurationText: "22:08",
			TypeText:     "AEW World Tag Team Title Tag Team Match",
			TitleText:    "AEW World Tag Team Title",
		},
		// no outcome marker: four names plus a tag type split 2v2 in
		// listed order, winner undecided
		{
			Ordinal: 2,
			Side1: []source.Participant{
				{DisplayName: "A"},
				{DisplayName: "B"},
			},
			Side2: []source.Participant{
				{DisplayName: "C"},
				{DisplayName: "D"},
			},
			Winner:   source.WinnerNone,
			TypeText: "Tag Team Match",
		},
	}
	diff := cmp.Diff(expected, matches)
	if diff != "" {
		t.Fatal(diff)
	}
}
