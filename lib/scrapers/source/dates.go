package source

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var ordinalSuffixRegex = regexp.MustCompile(`(\d{1,2})(st|nd|rd|th)\b`)

// layouts seen across sources, tried in order
var dateLayouts = []string{
	"02.01.2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2006-01-02",
	"02 Jan 2006",
	"2 January 2006",
}

// ParseDate parses the date formats sources emit: "28.12.2025",
// "Jan 4th 2026", and a handful of free-form variants.
func ParseDate(text string, loc *time.Location) (time.Time, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = ordinalSuffixRegex.ReplaceAllString(cleaned, "$1")

	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, cleaned, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date text: %q", text)
}
