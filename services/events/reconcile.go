package events

import (
	"log/slog"

	"github.com/antzucaro/matchr"
	"github.com/google/uuid"
)

type reconcileState int

const (
	stateNew reconcileState = iota
	stateMerged
	stateProtectedSkip
	statePersisted
)

func (s reconcileState) String() string {
	switch s {
	case stateNew:
		return "NEW"
	case stateMerged:
		return "MERGED"
	case stateProtectedSkip:
		return "PROTECTED_SKIP"
	case statePersisted:
		return "PERSISTED"
	}
	return "UNKNOWN"
}

type proposal struct {
	event CanonicalEvent
	state reconcileState
	// whether the current match list came from a winner-bearing source
	matchFidelity bool
	// stored events not sighted this run are left untouched, absence
	// is not evidence of cancellation
	seenThisRun bool
}

// dedup keys this close that aren't equal usually mean a normalization
// gap worth a look
const nearDuplicateThreshold = 0.93

// Reconciler folds every source's candidates plus the previously
// stored canonical events into one proposed canonical set. it owns the
// set exclusively for the duration of a run; the fold is a pure
// in-memory operation handed to persistence only once complete.
type Reconciler struct {
	byKey map[string]*proposal
	// insertion order of keys seen this run, for deterministic writes
	keys   []string
	mintID func() string
}

// NewReconciler seeds the fold with the stored canonical set.
// winnerTags reports which source tags carry structured winner data,
// so a stored match list keeps its fidelity standing across runs.
func NewReconciler(stored []CanonicalEvent, winnerTags map[string]bool) *Reconciler {
	r := &Reconciler{
		byKey:  map[string]*proposal{},
		mintID: uuid.NewString,
	}
	for _, ev := range stored {
		r.byKey[ev.DedupKey] = &proposal{
			event:         ev,
			matchFidelity: len(ev.Matches) > 0 && winnerTags[ev.SourceTag],
		}
	}
	return r
}

// Add folds one candidate in. candidates must be added in source
// priority order: the first source to supply a non-empty value for a
// field wins against later sources.
func (r *Reconciler) Add(c Candidate) {
	key := c.Event.DedupKey
	if key == "" {
		slog.Warn("dropping candidate without dedup key", "name", c.Event.Name, "source", c.Source)
		return
	}

	p, ok := r.byKey[key]
	if !ok {
		r.warnNearDuplicates(key, c.Event.Name)

		ev := c.Event
		ev.ID = r.mintID()
		if len(ev.Matches) > 0 {
			ev.SourceTag = c.Source
		}
		r.byKey[key] = &proposal{
			event:         ev,
			state:         stateNew,
			matchFidelity: len(ev.Matches) > 0 && c.SourceHasWinners,
			seenThisRun:   true,
		}
		r.keys = append(r.keys, key)
		return
	}

	if !p.seenThisRun {
		// first sighting this run of an event already in storage
		p.seenThisRun = true
		r.keys = append(r.keys, key)

		if p.event.Protected {
			p.state = stateProtectedSkip
			slog.Debug(
				"skipping protected event",
				"id", p.event.ID,
				"name", p.event.Name,
				"edited_by", p.event.LastEditedBy,
			)
			return
		}
		p.state = stateMerged
		r.mergeStored(p, c)
		return
	}

	if p.state == stateProtectedSkip {
		// a protected event takes no fields from any source
		return
	}
	r.mergeRun(p, c)
}

// mergeStored merges a candidate into a stored, non-protected event.
// per-field precedence, evaluated top to bottom: this run's value when
// non-empty, then the existing canonical value, then empty.
func (r *Reconciler) mergeStored(p *proposal, c Candidate) {
	ev := &p.event

	if c.Event.Name != "" {
		// classification flags travel with the name they were derived
		// from
		ev.Name = c.Event.Name
		ev.IsPeriodicBroadcast = c.Event.IsPeriodicBroadcast
		ev.IsSpecialEvent = c.Event.IsSpecialEvent
	}
	ev.Date = pick(c.Event.Date, ev.Date)
	ev.Venue = pick(c.Event.Venue, ev.Venue)
	ev.PromotionID = pick(c.Event.PromotionID, ev.PromotionID)
	ev.PromotionName = pick(c.Event.PromotionName, ev.PromotionName)

	r.mergeMatches(p, c)
}

// mergeRun merges a candidate into a proposal another source already
// touched this run. the earlier source keeps every field it filled.
func (r *Reconciler) mergeRun(p *proposal, c Candidate) {
	ev := &p.event

	ev.Date = pick(ev.Date, c.Event.Date)
	ev.Venue = pick(ev.Venue, c.Event.Venue)
	ev.PromotionID = pick(ev.PromotionID, c.Event.PromotionID)
	ev.PromotionName = pick(ev.PromotionName, c.Event.PromotionName)

	r.mergeMatches(p, c)
}

// match lists replace as a whole set, never per match, so a winner from
// one source is never paired with a type label from another. an empty
// incoming list never erases an existing one; between two non-empty
// lists the winner-bearing source beats the one without, otherwise
// first wins.
func (r *Reconciler) mergeMatches(p *proposal, c Candidate) {
	if len(c.Event.Matches) == 0 {
		return
	}
	if len(p.event.Matches) > 0 && (p.matchFidelity || !c.SourceHasWinners) {
		return
	}
	p.event.Matches = c.Event.Matches
	p.event.SourceTag = c.Source
	p.matchFidelity = c.SourceHasWinners
}

// pick returns the first non-empty candidate, evaluated top to bottom
func pick(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

func (r *Reconciler) warnNearDuplicates(key string, name string) {
	for existing := range r.byKey {
		if existing == key {
			continue
		}
		if matchr.JaroWinkler(existing, key, false) > nearDuplicateThreshold {
			slog.Warn(
				"suspiciously similar dedup keys",
				"key", key,
				"existing", existing,
				"name", name,
			)
		}
	}
}

// proposals returns every event sighted this run, in first-sighting
// order. stored events absent from the run do not appear: they are
// left untouched.
func (r *Reconciler) proposals() []*proposal {
	out := make([]*proposal, 0, len(r.keys))
	for _, key := range r.keys {
		out = append(out, r.byKey[key])
	}
	return out
}
