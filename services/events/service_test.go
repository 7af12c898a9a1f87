package events

import (
	"context"
	"testing"
	"time"

	"ringside-backend/lib/scrapers/source"
	"ringside-backend/lib/testutil"
	"ringside-backend/lib/timezone"
	"ringside-backend/services/events/db"

	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	name       string
	hasWinners bool
	snapshot   source.Snapshot
	err        error
}

func (s fakeSource) Name() string     { return s.name }
func (s fakeSource) HasWinners() bool { return s.hasWinners }
func (s fakeSource) Fetch(ctx context.Context, window source.Window) (source.Snapshot, error) {
	return s.snapshot, s.err
}

func dateIn(days int) string {
	return timezone.Now().AddDate(0, 0, days).Format("02.01.2006")
}

func setupPipeline(t *testing.T, sources ...source.Client) Service {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/events",
		DbSchema: db.Schema,
	})
	t.Cleanup(cleanup)
	return NewService(setup.DB, sources, Options{
		Promotions: []string{"aew", "wwe"},
	})
}

func winnerMatch(ordinal int, winner string, loser string) source.Match {
	return source.Match{
		Ordinal: ordinal,
		Side1:   []source.Participant{{DisplayName: winner}},
		Side2:   []source.Participant{{DisplayName: loser}},
		Winner:  source.WinnerSide1,
	}
}

func TestRunTwoSourceMerge(t *testing.T) {
	date := dateIn(7)
	sourceA := fakeSource{
		name:       "cagematch",
		hasWinners: true,
		snapshot: source.Snapshot{
			Source: "cagematch",
			Events: []source.Event{
				{
					ExternalID:    "399019",
					Name:          "Worlds End 2025",
					DateText:      date,
					PromotionName: "All Elite Wrestling",
					Matches: []source.Match{
						winnerMatch(0, "Jon Moxley", "Darby Allin"),
						winnerMatch(1, "Will Ospreay", "Kenny Omega"),
					},
				},
			},
		},
	}
	sourceB := fakeSource{
		name:       "profightdb",
		hasWinners: false,
		snapshot: source.Snapshot{
			Source: "profightdb",
			Events: []source.Event{
				{
					ExternalID:    "aew/worlds-end-39104",
					Name:          "AEW Worlds End",
					DateText:      date,
					PromotionName: "AEW",
					VenueText:     "Long Island, NY",
				},
			},
		},
	}

	svc := setupPipeline(t, sourceA, sourceB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	report, err := svc.Run(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, report.RunID)
	require.Equal(t, 2, report.EventsSeen)
	require.Equal(t, 1, report.Persisted)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	ev := list[0]
	require.Equal(t, "Worlds End 2025", ev.Name)
	require.Equal(t, "worldsend", ev.DedupKey)
	require.Equal(t, "aew", ev.PromotionID)
	require.Equal(t, "Long Island, NY", ev.Venue)
	require.True(t, ev.IsSpecialEvent)
	require.Len(t, ev.Matches, 2)
	require.Equal(t, "Jon Moxley", ev.Matches[0].WinnerLabel)
	require.Equal(t, "cagematch", ev.SourceTag)
}

func TestRunIdempotent(t *testing.T) {
	src := fakeSource{
		name:       "cagematch",
		hasWinners: true,
		snapshot: source.Snapshot{
			Source: "cagematch",
			Events: []source.Event{
				{
					Name:          "Worlds End 2025",
					DateText:      dateIn(7),
					PromotionName: "AEW",
					Matches:       []source.Match{winnerMatch(0, "A", "B")},
				},
			},
		},
	}
	svc := setupPipeline(t, src)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	_, err := svc.Run(ctx)
	require.NoError(t, err)
	first, err := svc.List(ctx)
	require.NoError(t, err)

	_, err = svc.Run(ctx)
	require.NoError(t, err)
	second, err := svc.List(ctx)
	require.NoError(t, err)

	require.Len(t, second, 1)
	require.Equal(t, first[0].ID, second[0].ID)
	require.Equal(t, first[0].Name, second[0].Name)
	require.Len(t, second[0].Matches, 1)
}

func TestRunProtectionInvariant(t *testing.T) {
	src := fakeSource{
		name:       "cagematch",
		hasWinners: true,
		snapshot: source.Snapshot{
			Source: "cagematch",
			Events: []source.Event{
				{
					Name:          "Worlds End 2025",
					DateText:      dateIn(7),
					PromotionName: "AEW",
					VenueText:     "scraped venue",
					Matches:       []source.Match{winnerMatch(0, "A", "B")},
				},
			},
		},
	}
	svc := setupPipeline(t, src)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	_, err := svc.Run(ctx)
	require.NoError(t, err)
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].ID

	err = svc.SetProtected(ctx, id, "editor@example.com", true)
	require.NoError(t, err)

	report, err := svc.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, report.Persisted)
	require.Equal(t, 1, report.ProtectedSkipped)

	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Worlds End 2025", list[0].Name)
	require.Equal(t, "scraped venue", list[0].Venue)
	require.True(t, list[0].Protected)
	require.Equal(t, "editor@example.com", list[0].LastEditedBy)

	// unprotect and the pipeline takes over again
	err = svc.SetProtected(ctx, id, "editor@example.com", false)
	require.NoError(t, err)

	report, err = svc.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, report.Persisted)
}

func TestRunMatchListNonErasure(t *testing.T) {
	date := dateIn(7)
	withMatches := fakeSource{
		name:       "cagematch",
		hasWinners: true,
		snapshot: source.Snapshot{
			Source: "cagematch",
			Events: []source.Event{
				{
					Name:          "Worlds End 2025",
					DateText:      date,
					PromotionName: "AEW",
					Matches:       []source.Match{winnerMatch(0, "A", "B")},
				},
			},
		},
	}
	svc := setupPipeline(t, withMatches)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	_, err := svc.Run(ctx)
	require.NoError(t, err)

	// the same source comes back with the match list missing
	withoutMatches := withMatches
	withoutMatches.snapshot.Events = []source.Event{
		{
			Name:          "Worlds End 2025",
			DateText:      date,
			PromotionName: "AEW",
		},
	}
	svc.sources = []source.Client{withoutMatches}

	_, err = svc.Run(ctx)
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Matches, 1)
}

// a row written for the same dedup key after the run's snapshot was
// loaded keeps its identifier instead of tripping the unique
// dedup_key constraint
func TestWriteEventDedupKeyCollision(t *testing.T) {
	svc := setupPipeline(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	now := timezone.Now().Unix()

	err := svc.qry.UpsertEvent(ctx, db.UpsertEventParams{
		ID:        "existing-id",
		DedupKey:  "worldsend",
		Name:      "Worlds End 2025",
		Matches:   "[]",
		ScrapedAt: now,
	})
	require.NoError(t, err)

	// the reconciler minted a fresh id because its snapshot predated
	// the row
	p := &proposal{
		event: CanonicalEvent{
			ID:       "minted-id",
			DedupKey: "worldsend",
			Name:     "AEW Worlds End",
		},
		state: stateNew,
	}
	require.NoError(t, svc.writeEvent(ctx, p, now))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "existing-id", list[0].ID)
	require.Equal(t, "AEW Worlds End", list[0].Name)
}

// the dedup-key re-check honors protection the same way the id lookup
// does
func TestWriteEventDedupKeyCollisionProtected(t *testing.T) {
	svc := setupPipeline(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	now := timezone.Now().Unix()

	err := svc.qry.UpsertEvent(ctx, db.UpsertEventParams{
		ID:        "existing-id",
		DedupKey:  "worldsend",
		Name:      "Worlds End 2025 (corrected)",
		Matches:   "[]",
		ScrapedAt: now,
	})
	require.NoError(t, err)
	require.NoError(t, svc.SetProtected(ctx, "existing-id", "editor@example.com", true))

	p := &proposal{
		event: CanonicalEvent{
			ID:       "minted-id",
			DedupKey: "worldsend",
			Name:     "AEW Worlds End",
		},
		state: stateNew,
	}
	err = svc.writeEvent(ctx, p, now)
	require.ErrorContains(t, err, "protection violation attempt")

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Worlds End 2025 (corrected)", list[0].Name)
}

func TestRunSourceFailureDegrades(t *testing.T) {
	healthy := fakeSource{
		name:       "cagematch",
		hasWinners: true,
		snapshot: source.Snapshot{
			Source: "cagematch",
			Events: []source.Event{
				{
					Name:          "Worlds End 2025",
					DateText:      dateIn(7),
					PromotionName: "AEW",
				},
			},
		},
	}
	dead := fakeSource{
		name: "profightdb",
		err:  context.DeadlineExceeded,
	}
	svc := setupPipeline(t, healthy, dead)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	report, err := svc.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, report.EventsSeen)
	require.Equal(t, 1, report.Persisted)
}
