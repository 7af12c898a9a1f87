package profightdb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ringside-backend/lib/fetch"
	"ringside-backend/lib/scrapers/source"
	"ringside-backend/lib/timezone"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("scrapers/profightdb")

const maxListingPages = 3

type ClientOptions struct {
	BaseURL string
	Delay   time.Duration
}

type Client struct {
	http *fetch.Client
}

func NewClient(opts ClientOptions) *Client {
	return &Client{
		http: fetch.NewClient(fetch.Options{
			BaseURL: opts.BaseURL,
			Delay:   opts.Delay,
		}),
	}
}

func (c *Client) Name() string {
	return "profightdb"
}

// upcoming cards here are announcements, most rows read "vs." with no
// outcome, so cagematch wins the match-list tie-break
func (c *Client) HasWinners() bool {
	return false
}

func (c *Client) Fetch(ctx context.Context, window source.Window) (source.Snapshot, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	snap := source.Snapshot{Source: c.Name()}
	seenPromotions := map[string]bool{}

	for page := 1; page <= maxListingPages; page++ {
		if err := ctx.Err(); err != nil {
			return snap, err
		}

		path := fmt.Sprintf("/cards/pg%d.html", page)
		body, err := c.http.Get(ctx, path)
		if err != nil {
			slog.WarnContext(ctx, "failed to fetch listing page", "source", c.Name(), "page", page, "err", err)
			continue
		}

		listing, err := extractListing(ctx, body)
		if err != nil {
			slog.WarnContext(ctx, "failed to parse listing page", "source", c.Name(), "page", page, "err", err)
			continue
		}
		if len(listing.Events) == 0 {
			break
		}

		for _, p := range listing.Promotions {
			if seenPromotions[p.ExternalID] {
				continue
			}
			seenPromotions[p.ExternalID] = true
			snap.Promotions = append(snap.Promotions, p)
		}

		for _, ev := range listing.Events {
			detailPath, fetchDetail := c.detailPath(ev, window)
			if fetchDetail {
				if err := ctx.Err(); err != nil {
					return snap, err
				}
				ev.Matches = c.fetchMatches(ctx, detailPath)
			}
			snap.Events = append(snap.Events, ev)
		}
	}

	span.SetAttributes(attribute.Int("events", len(snap.Events)))
	return snap, nil
}

func (c *Client) detailPath(ev source.Event, window source.Window) (string, bool) {
	date, err := source.ParseDate(ev.DateText, timezone.Location)
	if err != nil || !window.Contains(date) {
		return "", false
	}
	return fmt.Sprintf("/cards/%s.html", ev.ExternalID), true
}

func (c *Client) fetchMatches(ctx context.Context, path string) []source.Match {
	body, err := c.http.Get(ctx, path)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch card detail", "source", c.Name(), "path", path, "err", err)
		return nil
	}

	matches, err := extractMatches(ctx, body)
	if err != nil {
		slog.WarnContext(ctx, "failed to parse card detail", "source", c.Name(), "path", path, "err", err)
		return nil
	}
	return matches
}
