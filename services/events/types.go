package events

import (
	"encoding/json"
	"time"

	"ringside-backend/services/events/db"
)

type Participant struct {
	Name     string `json:"name"`
	Slug     string `json:"slug,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type Side struct {
	Label   string        `json:"label"`
	Members []Participant `json:"members"`
}

type Match struct {
	Ordinal int    `json:"ordinal"`
	Title   string `json:"title,omitempty"`
	Side1   Side   `json:"side1"`
	Side2   Side   `json:"side2"`
	// equals Side1.Label or Side2.Label, empty while undecided
	WinnerLabel  string `json:"winner_label,omitempty"`
	DurationText string `json:"duration,omitempty"`
	TypeText     string `json:"type,omitempty"`
	IsTeamMatch  bool   `json:"is_team_match"`
}

// CanonicalEvent is the unit of storage and of reconciliation: the
// single merged representation of an event across all sources.
type CanonicalEvent struct {
	ID                  string
	DedupKey            string
	Name                string
	Date                string
	Venue               string
	PromotionID         string
	PromotionName       string
	IsPeriodicBroadcast bool
	IsSpecialEvent      bool
	Matches             []Match
	Protected           bool
	LastEditedBy        string
	SourceTag           string
	ScrapedAt           time.Time
}

func marshalMatches(matches []Match) string {
	if len(matches) == 0 {
		return "[]"
	}
	out, err := json.Marshal(matches)
	if err != nil {
		return "[]"
	}
	return string(out)
}

func unmarshalMatches(raw string) []Match {
	var matches []Match
	err := json.Unmarshal([]byte(raw), &matches)
	if err != nil {
		return nil
	}
	return matches
}

func eventFromRow(row db.Event) CanonicalEvent {
	return CanonicalEvent{
		ID:                  row.ID,
		DedupKey:            row.DedupKey,
		Name:                row.Name,
		Date:                row.Date,
		Venue:               row.Venue,
		PromotionID:         row.PromotionID,
		PromotionName:       row.PromotionName,
		IsPeriodicBroadcast: row.IsPeriodicBroadcast != 0,
		IsSpecialEvent:      row.IsSpecialEvent != 0,
		Matches:             unmarshalMatches(row.Matches),
		Protected:           row.Protected != 0,
		LastEditedBy:        row.LastEditedBy,
		SourceTag:           row.SourceTag,
		ScrapedAt:           time.Unix(row.ScrapedAt, 0),
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
