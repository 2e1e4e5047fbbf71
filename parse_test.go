package ms

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{"1ms", 1},
		{"1s", 1000},
		{"1m", 60000},
		{"1h", 3600000},
		{"1.5h", 5400000},
		{".5h", 1800000},
		{"-1h", -3600000},
		{"-.5h", -1800000},
		{"5 s", 5000},
		{"2 hours", 7200000},
		{"1d", 86400000},
		{"1w", 604800000},
		{"1mo", 2629800000},
		{"1y", 31557600000},
	}

	for _, tt := range tests {
		v, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, v, tt.in)
	}
}

// TestParseUnitEquivalence verifies every spelling of a unit resolves to
// the same multiplier, regardless of case.
func TestParseUnitEquivalence(t *testing.T) {
	base, err := Parse("2h")
	require.NoError(t, err)

	for _, in := range []string{"2hr", "2hrs", "2hour", "2hours", "2 hours", "2H", "2 HOURS", "2Hr"} {
		v, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, base, v, in)
	}
}

// TestParseSentinel verifies that grammatically invalid input of legal
// length yields NaN as a value, not an error.
func TestParseSentinel(t *testing.T) {
	for _, in := range []string{"abc", "1.2.3", "h1", "1h2m", "--5s", "5s "} {
		v, err := Parse(in)
		require.NoError(t, err, in)
		assert.True(t, math.IsNaN(v), "expected NaN for %q, got %v", in, v)
	}
}

func TestParseLengthBounds(t *testing.T) {
	_, err := Parse("")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Parse(strings.Repeat("1", 100))
	require.ErrorIs(t, err, ErrInvalidInput)

	// 99 characters is still acceptable.
	v, err := Parse(strings.Repeat("1", 97) + "ms")
	require.NoError(t, err)
	assert.False(t, math.IsNaN(v))
}

func TestParseUnknownUnit(t *testing.T) {
	_, err := Parse("5xyz")
	require.ErrorIs(t, err, ErrUnknownUnit)
	assert.Contains(t, err.Error(), `"xyz"`)
	assert.Contains(t, err.Error(), `"5xyz"`)
}

// TestParseIdempotent verifies repeated parses of the same string keep
// returning the same value once the cache has absorbed it.
func TestParseIdempotent(t *testing.T) {
	first, err := Parse("3.5d")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		v, err := Parse("3.5d")
		require.NoError(t, err)
		assert.Equal(t, first, v)
	}
}

// TestFastPathConsistency recomputes every fast-path entry through the
// grammar and unit table: the table is a shortcut, not a second source
// of truth. It also verifies fast-path strings never occupy cache slots.
func TestFastPathConsistency(t *testing.T) {
	for in, want := range fastPath {
		magnitude, token, ok := match(in)
		require.True(t, ok, in)
		mult, ok := multiplier(token)
		require.True(t, ok, in)
		assert.Equal(t, want, magnitude*mult, in)

		_, err := Parse(in)
		require.NoError(t, err, in)
		assert.False(t, results.Contains(in), "fast-path entry %q must bypass the cache", in)
	}
}
