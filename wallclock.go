//go:build !skip_wallclock

package hlc

import (
	"fmt"
	"time"
)

// rfc3339Layout renders exactly nine fractional digits and a literal Z.
const rfc3339Layout = "2006-01-02T15:04:05.000000000Z07:00"

// Time converts the timestamp to a time.Time, assuming it is relative to
// 1st Jan 1970 UTC.
//
// Not available when building with the skip_wallclock tag.
func (ts Timestamp) Time() time.Time {
	return time.Unix(int64(ts.Secs()), int64(ts.SubsecNanos())).UTC()
}

// StringRFC3339 renders the timestamp as an RFC3339 string with nanosecond
// precision, e.g. "2024-07-01T13:51:12.129693000Z", assuming the timestamp is
// relative to 1st Jan 1970 UTC.
//
// The fraction part is coarsened to nanoseconds, so unlike String the
// conversion is lossy: rendering and re-parsing may yield a slightly
// different raw value.
func (ts Timestamp) StringRFC3339() string {
	return ts.Time().Format(rfc3339Layout)
}

// ParseRFC3339 converts an RFC3339 string into a Timestamp relative to
// 1st Jan 1970 UTC. It fails with a *ParseError when the string is not valid
// RFC3339, when the instant predates the epoch, or when it lies beyond the
// representable 32-bit seconds range.
func ParseRFC3339(s string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, &ParseError{Cause: fmt.Sprintf("failed to parse '%s': invalid RFC3339 format", s)}
	}
	d := t.Sub(time.Unix(0, 0))
	if d < 0 {
		return 0, &ParseError{Cause: fmt.Sprintf("failed to parse '%s': instant predates 1st Jan 1970", s)}
	}
	ts, err := FromDurationChecked(d)
	if err != nil {
		return 0, &ParseError{Cause: fmt.Sprintf("failed to parse '%s': %v", s, err)}
	}
	return ts, nil
}

func (ts Timestamp) alternateString() string {
	return ts.StringRFC3339()
}
