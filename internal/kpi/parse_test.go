package kpi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input    string
		expected string // RFC3339, "" means nil
	}{
		{"2024-01-15", "2024-01-15T00:00:00Z"},
		{"2024-01-15 13:45:00", "2024-01-15T13:45:00Z"},
		{"2024-01-15T13:45:00", "2024-01-15T13:45:00Z"},
		{"2024-01-15T13:45:00Z", "2024-01-15T13:45:00Z"},
		{"15/01/2024", "2024-01-15T00:00:00Z"},
		{"  2024-01-15  ", "2024-01-15T00:00:00Z"},
		{"not-a-date", ""},
		{"2024-13-45", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := parseTimestamp(tt.input)
		if tt.expected == "" {
			assert.Nil(t, got, "input: %q", tt.input)
			continue
		}
		require.NotNil(t, got, "input: %q", tt.input)
		want, err := time.Parse(time.RFC3339, tt.expected)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "input: %q got %v", tt.input, got)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"100", 100, true},
		{"100.50", 100.5, true},
		{" 2 ", 2, true},
		{"1,250.75", 1250.75, true},
		{"-3", -3, true},
		{"", 0, false},
		{"n/a", 0, false},
	}
	for _, tt := range tests {
		got := parseNumber(tt.input)
		if !tt.ok {
			assert.Nil(t, got, "input: %q", tt.input)
			continue
		}
		require.NotNil(t, got, "input: %q", tt.input)
		assert.InDelta(t, tt.expected, *got, 1e-9, "input: %q", tt.input)
	}
}
