package ms

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrNotFinite reports a NaN or infinite value passed to the formatter.
var ErrNotFinite = errors.New("value must be a finite number")

// Format renders a millisecond count compactly, e.g. "2h" or "-1d".
func Format(v float64) (string, error) {
	return format(v, false)
}

// FormatLong renders a millisecond count verbosely, e.g. "2 hours". The
// plural form kicks in from one and a half units upward, so a quotient
// that rounds to one stays singular.
func FormatLong(v float64) (string, error) {
	return format(v, true)
}

func format(v float64, long bool) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%w: %v", ErrNotFinite, v)
	}

	abs := math.Abs(v)
	for i, u := range units[:len(units)-1] {
		if abs < u.Millis {
			continue
		}
		n := math.Round(v / u.Millis)
		// Rounding can land exactly on the next larger unit: 3599999ms
		// is 59.99998 minutes and rounds to 60. Promote so the result
		// reads "1 hour" rather than "60 minutes".
		if i > 0 && math.Abs(n)*u.Millis >= units[i-1].Millis {
			u = units[i-1]
			n = math.Round(v / u.Millis)
		}
		if !long {
			return strconv.FormatFloat(n, 'f', -1, 64) + u.Suffix, nil
		}
		name := u.Name
		if abs >= 1.5*u.Millis {
			name += "s"
		}
		return strconv.FormatFloat(n, 'f', -1, 64) + " " + name, nil
	}

	// Millisecond fallback: the raw value, never rounded or pluralized.
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if long {
		return s + " ms", nil
	}
	return s + "ms", nil
}
