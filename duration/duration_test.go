package duration_test

import (
	"testing"
	"time"

	"github.com/nmeilick/ms/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"90s", 90 * time.Second},
		{"1.5h", 90 * time.Minute},
		{"2 days", 48 * time.Hour},
		{"1h30m", 90 * time.Minute},
		{"1 hour 30 minutes", 90 * time.Minute},
	}

	for _, tt := range tests {
		d, err := duration.Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, d, tt.in)
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := duration.Parse("not a duration")
	require.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "2h", duration.String(2*time.Hour))
	assert.Equal(t, "90ms", duration.String(90*time.Millisecond))
	assert.Equal(t, "1d", duration.String(24*time.Hour))
}

func TestVerbose(t *testing.T) {
	assert.Equal(t, "2 hours", duration.Verbose(2*time.Hour))
	assert.Equal(t, "1 minute 30 seconds", duration.Verbose(90*time.Second))
}
