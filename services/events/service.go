package events

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"

	"ringside-backend/lib/scrapers/source"
	"ringside-backend/lib/timezone"
	"ringside-backend/services/events/db"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("services/events")

type Options struct {
	// canonical promotion ids to keep, empty keeps every known
	// promotion
	Promotions []string
	// events with parseable dates outside [now-lookback, now+lookahead]
	// are discarded
	LookbackDays  int
	LookaheadDays int
}

type Service struct {
	db      *sql.DB
	qry     *db.Queries
	sources []source.Client
	options Options
}

// NewService wires the pipeline. sources are in priority order: when
// two sources supply the same field for the same event, the earlier
// one wins.
func NewService(database *sql.DB, sources []source.Client, opts Options) Service {
	if opts.LookbackDays == 0 {
		opts.LookbackDays = 14
	}
	if opts.LookaheadDays == 0 {
		opts.LookaheadDays = 180
	}
	return Service{
		db:      database,
		qry:     db.New(database),
		sources: sources,
		options: opts,
	}
}

type RunReport struct {
	RunID            string
	EventsSeen       int
	Persisted        int
	ProtectedSkipped int
}

// Run executes one full pipeline pass: crawl every source, normalize
// and classify the raw records, fold them with the stored canonical
// set, and persist the result. sources crawl in parallel on
// independent fetchers; they only meet again at the fold, which is a
// pure in-memory operation handed to persistence only once complete.
func (s Service) Run(ctx context.Context) (RunReport, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	runID, err := random.String(8)
	if err != nil {
		return RunReport{}, err
	}
	span.SetAttributes(attribute.String("run_id", runID))

	now := timezone.Now()
	window := source.Window{
		Start: now.AddDate(0, 0, -s.options.LookbackDays),
		End:   now.AddDate(0, 0, s.options.LookaheadDays),
	}

	snapshots := make([]source.Snapshot, len(s.sources))
	wg := sync.WaitGroup{}
	for i, src := range s.sources {
		i, src := i, src
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap, err := src.Fetch(ctx, window)
			if err != nil {
				// a dead source degrades to zero raw records, which
				// the fold treats as "nothing new", never as "these
				// events no longer exist"
				slog.ErrorContext(ctx, "source crawl degraded", "run_id", runID, "source", src.Name(), "err", err)
				sourceFailureCounter.Add(ctx, 1)
			}
			snapshots[i] = snap
		}()
	}
	wg.Wait()

	stored, err := s.loadStored(ctx)
	if err != nil {
		return RunReport{RunID: runID}, err
	}

	winnerTags := map[string]bool{}
	for _, src := range s.sources {
		winnerTags[src.Name()] = src.HasWinners()
	}

	rec := NewReconciler(stored, winnerTags)
	norm := newNormalizer(s.options.Promotions, window)

	seen := 0
	for i, snap := range snapshots {
		for _, raw := range snap.Events {
			c, ok := norm.candidate(raw, snap, s.sources[i].HasWinners())
			if !ok {
				slog.DebugContext(ctx, "excluded raw event", "run_id", runID, "source", snap.Source, "name", raw.Name)
				continue
			}
			seen++
			rec.Add(c)
		}
	}

	report, err := s.persist(ctx, rec.proposals())
	report.RunID = runID
	report.EventsSeen = seen

	eventsSeenCounter.Add(ctx, int64(seen))
	eventsPersistedCounter.Add(ctx, int64(report.Persisted))
	protectedSkippedCounter.Add(ctx, int64(report.ProtectedSkipped))

	slog.InfoContext(
		ctx, "pipeline run complete",
		"run_id", runID,
		"seen", report.EventsSeen,
		"persisted", report.Persisted,
		"protected_skipped", report.ProtectedSkipped,
	)
	return report, err
}

func (s Service) loadStored(ctx context.Context) ([]CanonicalEvent, error) {
	rows, err := s.qry.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CanonicalEvent, len(rows))
	for i, row := range rows {
		out[i] = eventFromRow(row)
	}
	return out, nil
}

// List returns the stored canonical set, for operator tooling.
func (s Service) List(ctx context.Context) ([]CanonicalEvent, error) {
	return s.loadStored(ctx)
}

// SetProtected flips the human-curation flag. a protected event takes
// no further field changes from the pipeline until unprotected.
func (s Service) SetProtected(ctx context.Context, id string, editedBy string, protected bool) error {
	return s.qry.SetProtected(ctx, db.SetProtectedParams{
		Protected:    boolToInt(protected),
		LastEditedBy: editedBy,
		ID:           id,
	})
}
