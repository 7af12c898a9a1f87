package cagematch

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

var tracer = otel.Tracer("scrapers/cagematch")

// rows per listing page, fixed by the site's pagination
const pageSize = 100

const maxListingPages = 5

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
	return "cagematch"
}

// result lines carry an explicit "defeats" marker, so this source is
// the higher-fidelity one for match lists.
func (c *Client) HasWinners() bool {
	return true
}

// Fetch walks the upcoming-events listing page by page, then pulls the
// match card for every event inside the window. a failed page costs
// that page only; a failed detail fetch costs that event's matches
// only.
func (c *Client) Fetch(ctx context.Context, window source.Window) (source.Snapshot, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	snap := source.Snapshot{Source: c.Name()}
	seenPromotions := map[string]bool{}

	for page := 0; page < maxListingPages; page++ {
		if err := ctx.Err(); err != nil {
			return snap, err
		}

		path := fmt.Sprintf("/?id=1&view=events&s=%d", page*pageSize)
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
			if !c.wantDetail(ev, window) {
				snap.Events = append(snap.Events, ev)
				continue
			}

			if err := ctx.Err(); err != nil {
				return snap, err
			}
			ev.Matches = c.fetchMatches(ctx, ev.ExternalID)
			snap.Events = append(snap.Events, ev)
		}
	}

	span.SetAttributes(attribute.Int("events", len(snap.Events)))
	return snap, nil
}

// detail pages are only worth a request for events with a parseable
// date inside the window
func (c *Client) wantDetail(ev source.Event, window source.Window) bool {
	date, err := source.ParseDate(ev.DateText, timezone.Location)
	if err != nil {
		return false
	}
	return window.Contains(date)
}

func (c *Client) fetchMatches(ctx context.Context, externalID string) []source.Match {
	path := fmt.Sprintf("/?id=1&nr=%s", externalID)
	body, err := c.http.Get(ctx, path)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch event detail", "source", c.Name(), "event", externalID, "err", err)
		return nil
	}

	matches, err := extractMatches(ctx, body)
	if err != nil {
		slog.WarnContext(ctx, "failed to parse event detail", "source", c.Name(), "event", externalID, "err", err)
		return nil
	}
	return matches
}
