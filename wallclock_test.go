//go:build !skip_wallclock

package hlc

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rfc3339Pattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{9}Z$`)

func TestRFC3339KnownValue(t *testing.T) {
	ts := Timestamp(7386690599959157260)

	assert.Equal(t, "2024-07-01T15:32:06.860479000Z", ts.StringRFC3339())
	assert.Equal(t, "2024-07-01T15:32:06.860479000Z", fmt.Sprintf("%#v", ts))
}

func TestRFC3339Shape(t *testing.T) {
	durations := []time.Duration{
		0,
		1 * time.Nanosecond,
		1718804000*time.Second + 42*time.Nanosecond,
		time.Duration(MaxSecs) * time.Second,
	}

	for _, d := range durations {
		s := FromDuration(d).StringRFC3339()
		assert.Regexp(t, rfc3339Pattern, s)
	}
}

func TestAlternateRenderingDiffers(t *testing.T) {
	ts := FromDuration(1718804000 * time.Second)

	assert.NotEqual(t, fmt.Sprintf("%v", ts), fmt.Sprintf("%#v", ts))
	// The diagnostic form is the decimal one whatever the display mode.
	assert.Equal(t, ts.String(), fmt.Sprintf("%v", ts))
}

func TestRFC3339RoundTripApprox(t *testing.T) {
	// Lossy both ways: nanosecond coarsening on render, truncation plus the
	// +1 offset on parse. The round trip stays within a few fraction units.
	for _, ts := range []Timestamp{
		FromDuration(1718804000*time.Second + 123456789*time.Nanosecond),
		Timestamp(7386690599959157260),
		FromDuration(1 * time.Second),
	} {
		parsed, err := ParseRFC3339(ts.StringRFC3339())
		require.NoError(t, err)

		diff := parsed.Sub(ts)
		if diff.After(Timestamp(1) << 63) {
			diff = ts.Sub(parsed)
		}
		assert.LessOrEqual(t, diff.Uint64(), uint64(16), "timestamp %d", ts.Uint64())
	}
}

func TestRFC3339ParseErrors(t *testing.T) {
	_, err := ParseRFC3339("not-a-date")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Cause, "invalid RFC3339 format")
	assert.Contains(t, parseErr.Cause, "not-a-date")

	// Predates the reference instant.
	_, err = ParseRFC3339("1969-12-31T23:59:59.000000000Z")
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Cause, "1969-12-31T23:59:59.000000000Z")

	// Beyond the 32-bit seconds range.
	_, err = ParseRFC3339("2107-01-01T00:00:00.000000000Z")
	require.ErrorAs(t, err, &parseErr)
}

func TestTimeConversion(t *testing.T) {
	ts := FromDuration(1718804000*time.Second + 500*time.Millisecond)
	tm := ts.Time()

	assert.Equal(t, int64(1718804000), tm.Unix())
	assert.Equal(t, time.UTC, tm.Location())
	assert.InDelta(t, 500000000, tm.Nanosecond(), 1)
}

func BenchmarkStringRFC3339(b *testing.B) {
	ts := Timestamp(7386690599959157260)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ts.StringRFC3339()
	}
}
