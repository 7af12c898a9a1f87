package profightdb

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"ringside-backend/lib/htmlutil"
	"ringside-backend/lib/scrapers/source"

	"github.com/PuerkitoBio/goquery"
)

type listing struct {
	Promotions []source.Promotion
	Events     []source.Event
}

// card listing rows:
//
//	<tr class="gvrow">
//	  <td>Dec 28th 2025</td>
//	  <td><a href="/promotions/aew-21.html">AEW</a></td>
//	  <td><a href="/cards/aew/worlds-end-39104.html">AEW Worlds End</a></td>
//	  <td>Long Island, NY</td>
//	</tr>
func extractListing(ctx context.Context, body []byte) (listing, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return listing{}, err
	}

	var out listing
	doc.Find("table.gvtable tr.gvrow").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			slog.WarnContext(ctx, "skipping malformed listing row", "source", "profightdb", "row", i, "cells", cells.Length())
			return
		}

		dateText := htmlutil.CleanText(cells.Eq(0).Text())
		venueText := htmlutil.CleanText(cells.Eq(3).Text())

		promoAnchor := cells.Eq(1).Find("a").First()
		promoID := slugFromHref(promoAnchor.AttrOr("href", ""))
		promoName := htmlutil.CleanText(promoAnchor.Text())

		cardAnchor := cells.Eq(2).Find("a").First()
		name := htmlutil.CleanText(cardAnchor.Text())
		externalID := cardID(cardAnchor.AttrOr("href", ""))
		if name == "" || externalID == "" {
			slog.WarnContext(ctx, "skipping listing row without card link", "source", "profightdb", "row", i)
			return
		}

		if promoID != "" {
			out.Promotions = append(out.Promotions, source.Promotion{
				ExternalID: promoID,
				Name:       promoName,
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

// "/cards/aew/worlds-end-39104.html" -> "aew/worlds-end-39104"
func cardID(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	p := strings.TrimPrefix(u.Path, "/cards/")
	return strings.TrimSuffix(p, ".html")
}

func slugFromHref(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(path.Base(u.Path), ".html")
}

// card detail rows:
//
//	<tr class="gvrow">
//	  <td><a href="/wrestlers/jon-moxley-2617.html">Jon Moxley</a></td>
//	  <td>def.</td>
//	  <td><a href="/wrestlers/darby-allin-7263.html">Darby Allin</a></td>
//	  <td>12:34</td>
//	  <td>Singles</td>
//	  <td>AEW World Title</td>
//	</tr>
//
// announced-but-unplayed matches carry "vs." in the marker cell.
func extractMatches(ctx context.Context, body []byte) ([]source.Match, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var matches []source.Match
	ordinal := 0
	doc.Find("table.gvtable tr.gvrow").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 5 {
			slog.WarnContext(ctx, "skipping malformed match row", "source", "profightdb", "row", i, "cells", cells.Length())
			return
		}

		m := source.Match{
			DurationText: htmlutil.CleanText(cells.Eq(3).Text()),
			TypeText:     htmlutil.CleanText(cells.Eq(4).Text()),
		}
		if cells.Length() > 5 {
			m.TitleText = htmlutil.CleanText(cells.Eq(5).Text())
		}

		side1 := participantsFromCell(ctx, cells.Eq(0))
		side2 := participantsFromCell(ctx, cells.Eq(2))
		marker := strings.ToLower(htmlutil.CleanText(cells.Eq(1).Text()))

		switch {
		case strings.Contains(marker, "def"):
			m.Side1, m.Side2 = side1, side2
			m.Winner = source.WinnerSide1
		case strings.Contains(marker, "vs"):
			m.Side1, m.Side2 = side1, side2
			m.Winner = source.WinnerNone
		default:
			// no recognizable marker, fall back to splitting the
			// combined participant list
			m.Side1, m.Side2 = source.FallbackSides(append(side1, side2...), m.TypeText)
			m.Winner = source.WinnerNone
		}
		if len(m.Side1) == 0 || len(m.Side2) == 0 {
			slog.WarnContext(ctx, "skipping match without two sides", "source", "profightdb", "row", i)
			return
		}

		m.Ordinal = ordinal
		matches = append(matches, m)
		ordinal++
	})

	return matches, nil
}

func participantsFromCell(ctx context.Context, cell *goquery.Selection) []source.Participant {
	anchors := htmlutil.GetAnchors(ctx, cell.Find("a"))
	if len(anchors) == 0 {
		return source.SplitParticipants(htmlutil.CleanText(cell.Text()))
	}

	var out []source.Participant
	for _, a := range anchors {
		if a.Name == "" {
			continue
		}
		out = append(out, source.Participant{
			DisplayName: a.Name,
			Slug:        slugFromHref(a.Href),
		})
	}
	return out
}
