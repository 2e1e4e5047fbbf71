// Package ms converts between human-readable duration strings ("5m",
// "1.5h", "2 days") and millisecond counts, in both directions. Parsing
// is built for hot paths with highly repetitive input: the most common
// literals are answered from a static table and everything else is
// absorbed by a bounded LRU cache, so repeated parses skip the grammar
// entirely.
package ms

import (
	"fmt"
	"time"
)

// Option adjusts how Convert renders numeric input.
type Option func(*options)

type options struct {
	long bool
}

// Long selects the verbose, pluralized output form ("2 hours" instead
// of "2h").
func Long() Option {
	return func(o *options) { o.long = true }
}

// Convert dispatches on the dynamic type of value: strings are parsed
// to a float64 millisecond count, numeric values and time.Duration are
// formatted to a string. Any other type is rejected.
func Convert(value any, opts ...Option) (any, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch v := value.(type) {
	case string:
		return Parse(v)
	case time.Duration:
		return format(float64(v)/float64(time.Millisecond), o.long)
	case float64:
		return format(v, o.long)
	case float32:
		return format(float64(v), o.long)
	case int:
		return format(float64(v), o.long)
	case int32:
		return format(float64(v), o.long)
	case int64:
		return format(float64(v), o.long)
	default:
		return nil, fmt.Errorf("%w: cannot convert %T", ErrInvalidInput, value)
	}
}
