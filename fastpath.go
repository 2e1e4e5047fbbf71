package ms

// fastPath answers the most frequent literal inputs before the cache or
// the matcher are consulted. Values must stay identical to what the full
// grammar path computes; a test recomputes every entry to catch drift.
var fastPath = map[string]float64{
	"1ms":   Millisecond,
	"100ms": 100 * Millisecond,
	"500ms": 500 * Millisecond,
	"1s":    Second,
	"2s":    2 * Second,
	"5s":    5 * Second,
	"10s":   10 * Second,
	"30s":   30 * Second,
	"60s":   60 * Second,
	"1m":    Minute,
	"5m":    5 * Minute,
	"10m":   10 * Minute,
	"15m":   15 * Minute,
	"30m":   30 * Minute,
	"1h":    Hour,
	"2h":    2 * Hour,
	"6h":    6 * Hour,
	"12h":   12 * Hour,
	"24h":   24 * Hour,
	"1d":    Day,
	"7d":    7 * Day,
	"30d":   30 * Day,
	"1w":    Week,
	"1y":    Year,
}
