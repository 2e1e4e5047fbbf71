package ms

import (
	"errors"
	"fmt"
	"math"
)

// Input length bounds enforced before any parsing is attempted.
const (
	minInputLen = 1
	maxInputLen = 99
)

var (
	// ErrInvalidInput reports input whose shape is wrong, as opposed to
	// input that merely fails to parse.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownUnit reports a unit token the unit table does not know.
	ErrUnknownUnit = errors.New("unknown time unit")
)

// Parse converts a human-readable duration string like "5m", "1.5h" or
// "2 days" to milliseconds. A missing unit means milliseconds. Unit
// spellings are case-insensitive and fractional magnitudes are kept
// exact, "1.5h" is 5400000.
//
// A string of valid length that does not conform to the grammar yields
// NaN with a nil error, so callers can treat "not a duration" as a value
// rather than a failure. Length violations and unrecognized units are
// returned as errors.
func Parse(s string) (float64, error) {
	if len(s) < minInputLen || len(s) > maxInputLen {
		return 0, fmt.Errorf("%w: length must be between %d and %d characters, got %d",
			ErrInvalidInput, minInputLen, maxInputLen, len(s))
	}

	if v, ok := fastPath[s]; ok {
		return v, nil
	}
	if v, ok := results.Get(s); ok {
		return v, nil
	}

	magnitude, token, ok := match(s)
	if !ok {
		return math.NaN(), nil
	}

	mult, ok := multiplier(token)
	if !ok {
		return 0, fmt.Errorf("%w %q in %q", ErrUnknownUnit, token, s)
	}

	v := magnitude * mult
	results.Add(s, v)
	return v, nil
}
