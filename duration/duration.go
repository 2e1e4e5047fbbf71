// Package duration bridges the ms conversion engine to time.Duration,
// with fallbacks for compound formats the core grammar doesn't cover.
package duration

import (
	"fmt"
	"math"
	"time"

	"github.com/hako/durafmt"
	"github.com/nmeilick/ms"
	str2duration "github.com/xhit/go-str2duration/v2"
)

// Parse parses a duration string with fallbacks to multiple formats:
// the ms grammar first ("90s", "1.5h", "2 days"), then Go-style compound
// durations ("1h30m"), then spelled-out forms ("1 hour 30 minutes").
func Parse(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}

	if v, err := ms.Parse(s); err == nil && !math.IsNaN(v) {
		return time.Duration(v * float64(time.Millisecond)), nil
	}

	if d, err := str2duration.ParseDuration(s); err == nil {
		return d, nil
	}

	d, err := durafmt.ParseString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %w", err)
	}

	return d.Duration(), nil
}

// String returns the compact single-unit representation of a duration,
// e.g. "2h".
func String(d time.Duration) string {
	s, err := ms.Format(float64(d) / float64(time.Millisecond))
	if err != nil {
		return d.String()
	}
	return s
}

// Verbose returns a fully spelled out representation of a duration,
// e.g. "2 hours 30 minutes".
func Verbose(d time.Duration) string {
	return durafmt.Parse(d).String()
}
