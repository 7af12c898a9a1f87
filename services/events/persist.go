package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"ringside-backend/lib/timezone"
	"ringside-backend/services/events/db"
)

// persist hands the proposed canonical set to storage, one
// independently idempotent write per event. cancellation between
// events is safe: no event is ever half-updated.
func (s Service) persist(ctx context.Context, proposals []*proposal) (RunReport, error) {
	report := RunReport{}
	now := timezone.Now().Unix()

	for _, p := range proposals {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if p.state == stateProtectedSkip {
			// bookkeeping only, no field may change
			err := s.qry.TouchScrapedAt(ctx, db.TouchScrapedAtParams{
				ScrapedAt: now,
				ID:        p.event.ID,
			})
			if err != nil {
				slog.WarnContext(ctx, "failed to touch protected event", "id", p.event.ID, "err", err)
			}
			report.ProtectedSkipped++
			continue
		}

		err := s.writeEvent(ctx, p, now)
		if err != nil {
			slog.ErrorContext(ctx, "failed to persist event", "id", p.event.ID, "name", p.event.Name, "err", err)
			continue
		}
		p.state = statePersisted
		report.Persisted++
	}

	return report, nil
}

// writeEvent upserts one canonical event. the reconciler must never
// route a protected event here; check again right before writing and
// refuse loudly if it did. the upsert's own `WHERE protected = 0`
// guard backstops any concurrent editor.
func (s Service) writeEvent(ctx context.Context, p *proposal, now int64) error {
	stored, err := s.qry.GetEvent(ctx, p.event.ID)
	if errors.Is(err, sql.ErrNoRows) {
		// a freshly minted id can still collide with a row written for
		// the same dedup key after our snapshot was loaded. reuse that
		// row's identifier so the write key stays stable across runs
		// instead of tripping the unique dedup_key constraint.
		stored, err = s.qry.GetEventByDedupKey(ctx, p.event.DedupKey)
		if err == nil {
			p.event.ID = stored.ID
		}
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if err == nil && stored.Protected != 0 {
		return fmt.Errorf("protection violation attempt: event %s (%s) is protected", p.event.ID, p.event.Name)
	}

	return s.qry.UpsertEvent(ctx, db.UpsertEventParams{
		ID:                  p.event.ID,
		DedupKey:            p.event.DedupKey,
		Name:                p.event.Name,
		Date:                p.event.Date,
		Venue:               p.event.Venue,
		PromotionID:         p.event.PromotionID,
		PromotionName:       p.event.PromotionName,
		IsPeriodicBroadcast: boolToInt(p.event.IsPeriodicBroadcast),
		IsSpecialEvent:      boolToInt(p.event.IsSpecialEvent),
		Matches:             marshalMatches(p.event.Matches),
		SourceTag:           p.event.SourceTag,
		ScrapedAt:           now,
	})
}
