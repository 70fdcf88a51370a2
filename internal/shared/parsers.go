package shared

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var durationRe = regexp.MustCompile(`^(\d+)\s*(d|h|m|s)$`)

// ParseDuration parses a duration string with support for days
// (e.g., "1d", "30s") into a time.Duration. Anything the short form does
// not cover is handed to time.ParseDuration, so "1m30s" and "250ms" work too.
// A special value of "0" is allowed and returns 0 duration (no deadline).
func ParseDuration(durationStr string) (time.Duration, error) {
	trimmedStr := strings.TrimSpace(durationStr)
	if trimmedStr == "0" {
		return 0, nil
	}

	matches := durationRe.FindStringSubmatch(trimmedStr)
	if len(matches) < 3 {
		d, err := time.ParseDuration(trimmedStr)
		if err != nil || d < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, durationStr)
		}
		return d, nil
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, durationStr)
	}

	switch matches[2] {
	case "d":
		return time.Duration(value) * 24 * time.Hour, nil
	case "h":
		return time.Duration(value) * time.Hour, nil
	case "m":
		return time.Duration(value) * time.Minute, nil
	default:
		return time.Duration(value) * time.Second, nil
	}
}

// ParsePort converts a textual port into an integer in the range 0-65535.
// Port 0 is valid and asks the kernel for an ephemeral port.
func ParsePort(portStr string) (int, error) {
	trimmed := strings.TrimSpace(portStr)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidPort)
	}
	p, err := cast.ToIntE(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPort, portStr)
	}
	if p < 0 || p > 65535 {
		return 0, fmt.Errorf("%w: %d is out of range", ErrInvalidPort, p)
	}
	return p, nil
}

// TimestampLayout is ISO-8601 in UTC with millisecond precision,
// e.g. "2024-05-01T12:00:00.000Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in TimestampLayout after converting it to UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
