package utility

import (
	"strconv"
	"strings"
	"time"
)

// ToBool interprets query-string booleans: the string "true" in any case
// maps to true, everything else to false. Native bools pass through.
func ToBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}

// ToInt parses a positive integer from a string, returning fallback when
// the value is absent, malformed or non-positive.
func ToInt(value string, fallback int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// dateLayouts accepted by ParseDate, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDate parses a calendar date or RFC3339 timestamp in UTC.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
