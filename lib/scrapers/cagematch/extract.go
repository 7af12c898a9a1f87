package cagematch

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"regexp"

	"ringside-backend/lib/htmlutil"
	"ringside-backend/lib/scrapers/source"

	"github.com/PuerkitoBio/goquery"
)

type listing struct {
	Promotions []source.Promotion
	Events     []source.Event
}

// listing rows look like:
//
//	<tr class="TRow1">
//	  <td class="TCol">28.12.2025</td>
//	  <td class="TCol"><a href="?id=8&nr=2287"><img src="/p.png" title="AEW"></a></td>
//	  <td class="TCol"><a href="?id=1&nr=399019">Worlds End 2025</a></td>
//	  <td class="TCol">Long Island, New York, USA</td>
//	</tr>
//
// a malformed row yields zero records for that row, never a dead page.
func extractListing(ctx context.Context, body []byte) (listing, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return listing{}, err
	}

	var out listing
	doc.Find("table.TBase tr.TRow1, table.TBase tr.TRow2").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td.TCol")
		if cells.Length() < 4 {
			slog.WarnContext(ctx, "skipping malformed listing row", "source", "cagematch", "row", i, "cells", cells.Length())
			return
		}

		dateText := htmlutil.CleanText(cells.Eq(0).Text())
		venueText := htmlutil.CleanText(cells.Eq(3).Text())

		promoCell := cells.Eq(1)
		promoID := queryParam(promoCell.Find("a").First().AttrOr("href", ""), "nr")
		promoImg := promoCell.Find("img").First()
		promoName := htmlutil.CleanText(promoImg.AttrOr("title", ""))
		if promoName == "" {
			promoName = htmlutil.CleanText(promoCell.Text())
		}

		eventAnchor := cells.Eq(2).Find("a").First()
		name := htmlutil.CleanText(eventAnchor.Text())
		externalID := queryParam(eventAnchor.AttrOr("href", ""), "nr")
		if name == "" || externalID == "" {
			slog.WarnContext(ctx, "skipping listing row without event link", "source", "cagematch", "row", i)
			return
		}

		if promoID != "" {
			out.Promotions = append(out.Promotions, source.Promotion{
				ExternalID: promoID,
				Name:       promoName,
				LogoURL:    promoImg.AttrOr("src", ""),
			})
		}
		out.Events = append(out.Events, source.Event{
			ExternalID:          externalID,
			Name:                name,
			DateText:            dateText,
			PromotionExternalID: promoID,
			PromotionName:       promoName,
			VenueText:           venueText,
		})
	})

	return out, nil
}

func queryParam(href string, key string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return u.Query().Get(key)
}

var durationRegex = regexp.MustCompile(`\s*\((\d{1,2}:\d{2}(?::\d{2})?)\)\s*$`)

// match cards are a stack of:
//
//	<div class="Match">
//	  <div class="MatchType">Tag Team Match</div>
//	  <div class="MatchResults">A &amp; B defeat C &amp; D (13:37)</div>
//	</div>
func extractMatches(ctx context.Context, body []byte) ([]source.Match, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var matches []source.Match
	ordinal := 0
	doc.Find("div.Matches div.Match").Each(func(i int, div *goquery.Selection) {
		typeSel := div.Find("div.MatchType")
		typeText := htmlutil.CleanText(typeSel.Text())
		// title matches link the belt's page from the type line
		titleText := htmlutil.CleanText(typeSel.Find(`a[href*="id=5"]`).First().Text())

		results := htmlutil.CleanText(div.Find("div.MatchResults").Text())
		if results == "" {
			slog.WarnContext(ctx, "skipping match without results", "source", "cagematch", "match", i)
			return
		}

		m, ok := parseResultLine(results, typeText)
		if !ok {
			slog.WarnContext(ctx, "skipping unparseable match", "source", "cagematch", "match", i, "text", results)
			return
		}
		m.Ordinal = ordinal
		m.TypeText = typeText
		m.TitleText = titleText
		matches = append(matches, m)
		ordinal++
	})

	return matches, nil
}

func parseResultLine(text string, typeText string) (source.Match, bool) {
	var m source.Match

	if groups := durationRegex.FindStringSubmatch(text); len(groups) >= 2 {
		m.DurationText = groups[1]
		text = durationRegex.ReplaceAllString(text, "")
	}

	winners, losers, ok := source.SplitOutcome(text)
	if ok {
		m.Side1 = source.SplitParticipants(winners)
		m.Side2 = source.SplitParticipants(losers)
		m.Winner = source.WinnerSide1
		return m, len(m.Side1) > 0 && len(m.Side2) > 0
	}

	participants := source.SplitParticipants(text)
	if len(participants) < 2 {
		return m, false
	}
	m.Side1, m.Side2 = source.FallbackSides(participants, typeText)
	m.Winner = source.WinnerNone
	return m, true
}
