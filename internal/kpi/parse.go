package kpi

import (
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are tried in order when parsing created_at. The original
// exports this system consumes mix ISO dates, space-separated datetimes, and
// regional day-first dates.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
	"01/02/2006",
}

// parseTimestamp parses a raw created_at value. Unparseable values yield nil
// rather than an error: bad dates degrade per-row, they never abort a run.
func parseTimestamp(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// parseNumber parses a raw numeric cell. Missing or non-numeric values yield
// nil; downstream sums treat nil as contributing zero. Thousands separators
// are tolerated since spreadsheet exports often carry them.
func parseNumber(raw string) *float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}
