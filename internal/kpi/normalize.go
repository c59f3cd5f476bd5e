// Package kpi implements the campaign reconciliation engine: phone identity
// normalization, buyer filtering, reach matching, and KPI aggregation.
package kpi

import "strings"

// countryPrefix is the dialing prefix local subscriber numbers are
// canonicalized onto.
const countryPrefix = "974"

// localNumberLen is the length of a subscriber number without the prefix.
const localNumberLen = 8

// NormalizePhone canonicalizes a raw phone-like value into a digit-only
// identity key. All non-digit characters are stripped; a bare 8-digit
// subscriber number gets the country prefix prepended; values already
// carrying the prefix pass through. Anything else, including the empty
// string, is returned as-is. Never fails.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	s := b.String()

	if strings.HasPrefix(s, countryPrefix) {
		return s
	}
	if len(s) == localNumberLen {
		return countryPrefix + s
	}
	return s
}
