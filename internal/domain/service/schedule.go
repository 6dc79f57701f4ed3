package service

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
)

const dateLayout = "2006-01-02"

var dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`)

// ParseLocalDateTime parses a schedule bound in loc. The second result is
// false for an empty or malformed value, which callers treat as an unbounded
// side of the schedule rather than an error.
func ParseLocalDateTime(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range []string{entity.DateTimeLayout, dateLayout} {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, true
		}
	}

	slog.Debug("invalid datetime value", "value", value)
	return time.Time{}, false
}

// SanitizeDateTime normalizes an admin supplied bound before it is stored.
// Anything that is not a valid "YYYY-MM-DD HH:MM" becomes empty.
func SanitizeDateTime(value string, loc *time.Location) string {
	value = strings.TrimSpace(value)
	if value == "" || !dateTimePattern.MatchString(value) {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}

	t, err := time.ParseInLocation(entity.DateTimeLayout, value, loc)
	if err != nil {
		return ""
	}

	return t.Format(entity.DateTimeLayout)
}
