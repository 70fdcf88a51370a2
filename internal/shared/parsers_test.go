package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		hasError bool
	}{
		{"0", 0, false},
		{"30s", 30 * time.Second, false},
		{"5m", 5 * time.Minute, false},
		{"2h", 2 * time.Hour, false},
		{"1d", 24 * time.Hour, false},
		{" 10 s ", 10 * time.Second, false},
		{"1m30s", 90 * time.Second, false},
		{"250ms", 250 * time.Millisecond, false},
		{"", 0, true},
		{"soon", 0, true},
		{"-5s", 0, true},
		{"10x", 0, true},
	}

	for _, tc := range tests {
		val, err := ParseDuration(tc.input)
		if tc.hasError {
			assert.ErrorIs(t, err, ErrInvalidDuration, "Expected error for input: %q", tc.input)
		} else {
			assert.NoError(t, err, "Unexpected error for input: %q", tc.input)
			assert.Equal(t, tc.expected, val, "Mismatch for input: %q", tc.input)
		}
	}
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		hasError bool
	}{
		{"8080", 8080, false},
		{"0", 0, false},
		{"65535", 65535, false},
		{" 9090 ", 9090, false},
		{"", 0, true},
		{"abc", 0, true},
		{"80a", 0, true},
		{"-1", 0, true},
		{"65536", 0, true},
	}

	for _, tc := range tests {
		val, err := ParsePort(tc.input)
		if tc.hasError {
			assert.ErrorIs(t, err, ErrInvalidPort, "Expected error for input: %q", tc.input)
		} else {
			assert.NoError(t, err, "Unexpected error for input: %q", tc.input)
			assert.Equal(t, tc.expected, val, "Mismatch for input: %q", tc.input)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, 5, 1, 14, 30, 15, 123456789, loc)

	assert.Equal(t, "2024-05-01T12:30:15.123Z", FormatTimestamp(ts))

	parsed, err := time.Parse(time.RFC3339, FormatTimestamp(ts))
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(ts.Truncate(time.Millisecond)))
}
