package ms

// Millisecond multipliers for each supported unit. Year is the usual
// 365.25-day approximation and month is a twelfth of that, so all
// spellings of a unit resolve to one shared constant.
const (
	Millisecond float64 = 1
	Second              = 1000 * Millisecond
	Minute              = 60 * Second
	Hour                = 60 * Minute
	Day                 = 24 * Hour
	Week                = 7 * Day
	Year                = 365.25 * Day
	Month               = Year / 12
)

// Unit describes one supported time unit.
type Unit struct {
	// Name is the canonical singular name, e.g. "hour"
	Name string

	// Suffix is the compact form appended by Format, e.g. "h"
	Suffix string

	// Spellings lists every accepted lowercased spelling
	Spellings []string

	// Millis is the number of milliseconds in one unit
	Millis float64
}

// units is ordered largest first, the order the formatter walks.
var units = []Unit{
	{Name: "year", Suffix: "y", Spellings: []string{"y", "yr", "yrs", "year", "years"}, Millis: Year},
	{Name: "month", Suffix: "mo", Spellings: []string{"mo", "month", "months"}, Millis: Month},
	{Name: "week", Suffix: "w", Spellings: []string{"w", "week", "weeks"}, Millis: Week},
	{Name: "day", Suffix: "d", Spellings: []string{"d", "day", "days"}, Millis: Day},
	{Name: "hour", Suffix: "h", Spellings: []string{"h", "hr", "hrs", "hour", "hours"}, Millis: Hour},
	{Name: "minute", Suffix: "m", Spellings: []string{"m", "min", "mins", "minute", "minutes"}, Millis: Minute},
	{Name: "second", Suffix: "s", Spellings: []string{"s", "sec", "secs", "second", "seconds"}, Millis: Second},
	{Name: "millisecond", Suffix: "ms", Spellings: []string{"ms", "msec", "msecs", "millisecond", "milliseconds"}, Millis: Millisecond},
}

// multipliers maps every accepted spelling to its multiplier.
var multipliers = buildMultipliers()

func buildMultipliers() map[string]float64 {
	m := make(map[string]float64)
	for _, u := range units {
		for _, s := range u.Spellings {
			m[s] = u.Millis
		}
	}
	return m
}

// Units returns the supported units, largest first.
func Units() []Unit {
	out := make([]Unit, len(units))
	copy(out, units)
	return out
}

// multiplier resolves a lowercased unit token. The empty token means
// milliseconds.
func multiplier(token string) (float64, bool) {
	if token == "" {
		return Millisecond, true
	}
	v, ok := multipliers[token]
	return v, ok
}
