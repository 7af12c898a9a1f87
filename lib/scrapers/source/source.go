package source

import (
	"context"
	"time"
)

// Window bounds how far into the past and future a crawl cares about.
// events outside it are discarded without fetching their detail pages.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && t.After(w.End) {
		return false
	}
	return true
}

type Promotion struct {
	ExternalID string
	Name       string
	LogoURL    string
}

// Participant image urls are left empty here, a downstream resolver
// fills them in. the pipeline never blocks on image resolution.
type Participant struct {
	DisplayName string
	Slug        string
	ImageURL    string
}

type WinnerSide int

const (
	WinnerNone WinnerSide = iota
	WinnerSide1
	WinnerSide2
)

type Match struct {
	Ordinal      int
	Side1        []Participant
	Side2        []Participant
	Winner       WinnerSide
	DurationText string
	TypeText     string
	TitleText    string
}

type Event struct {
	ExternalID          string
	Name                string
	DateText            string
	PromotionExternalID string
	PromotionName       string
	VenueText           string
	Matches             []Match
}

type Snapshot struct {
	Source     string
	Promotions []Promotion
	Events     []Event
}

type Client interface {
	Name() string
	// HasWinners reports whether this source carries structured
	// winner/loser data on its match rows. match lists from such a
	// source win wholesale when two sources disagree.
	HasWinners() bool
	Fetch(ctx context.Context, window Window) (Snapshot, error)
}
