package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Timestamp layout names, as reported by ParseTimestamp. Format detection
// happens once at the boundary; everything past it works on time.Time.
const (
	LayoutRFC3339       = "rfc3339"
	LayoutDateTime      = "date-time"
	LayoutDateTimeSpace = "date-time-space"
	LayoutDate          = "date"
)

// timestampLayouts are the accepted input formats, tried in order. The
// more specific layouts come first so a date-time is never mistaken for a
// bare date.
var timestampLayouts = []struct {
	name   string
	layout string
}{
	{LayoutRFC3339, time.RFC3339},
	{LayoutDateTime, "2006-01-02T15:04:05"},
	{LayoutDateTimeSpace, "2006-01-02 15:04:05"},
	{LayoutDate, "2006-01-02"},
}

// ParseTimestamp parses a user- or API-supplied timestamp string and reports
// which layout matched. Accepted forms are RFC 3339, "YYYY-MM-DDTHH:MM:SS",
// "YYYY-MM-DD HH:MM:SS" and "YYYY-MM-DD". The result is normalised to UTC.
func ParseTimestamp(s string) (time.Time, string, error) {
	trimmed := strings.TrimSpace(s)
	for _, candidate := range timestampLayouts {
		t, err := time.Parse(candidate.layout, trimmed)
		if err == nil {
			return t.UTC(), candidate.name, nil
		}
	}
	return time.Time{}, "", fmt.Errorf(
		"%w: unable to parse timestamp %q, expected YYYY-MM-DD or YYYY-MM-DDTHH:MM:SSZ",
		ErrInvalidInput, s)
}

// DateOnly strips the time-of-day from t, returning the calendar date at
// UTC midnight.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var (
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRun        = regexp.MustCompile(`\s+`)
)

// SanitizeFilename makes a string safe for filesystem use: invalid
// characters are removed, whitespace runs become single underscores, and
// the result is trimmed of leading/trailing dots and spaces and truncated
// to maxLen runes. maxLen <= 0 means no truncation.
func SanitizeFilename(name string, maxLen int) string {
	cleaned := invalidFilenameChars.ReplaceAllString(name, "")
	cleaned = whitespaceRun.ReplaceAllString(cleaned, "_")
	cleaned = strings.Trim(cleaned, ". ")
	if maxLen > 0 {
		runes := []rune(cleaned)
		if len(runes) > maxLen {
			cleaned = string(runes[:maxLen])
		}
	}
	return cleaned
}
