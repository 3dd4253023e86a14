// Package hlc implements the 64-bit NTP timestamp format (RFC 5905 section 6)
// used as the causality token of a Hybrid Logical Clock. A Timestamp packs the
// number of seconds since an epoch into the top 32 bits and a fixed-point
// fraction of a second (units of 1/2^32 s, roughly 0.233ns) into the low
// 32 bits. When a timestamp is issued by an HLC, the clock replaces the last
// few bits of the fraction with its logical counter; the width of that counter
// is owned by the clock, not by this package, and Timestamp treats all 64 bits
// uniformly. Comparing timestamps as plain unsigned integers yields the total
// order the clock relies on, so no synchronization is needed to compare values
// produced on different nodes.
//
// A Timestamp carries no epoch of its own. Only the wall-clock conversions and
// the RFC3339 rendering assume it is relative to 1st Jan 1970 UTC.

package hlc

import (
	"fmt"
	"time"
)

const (
	// MaxSecs is the largest number of whole seconds representable in the
	// 32-bit seconds part.
	MaxSecs = uint64(1)<<32 - 1

	// FracPerSec is the number of fraction units per second (2^32).
	FracPerSec = uint64(1) << 32

	fracMask   = FracPerSec - 1
	nanoPerSec = uint64(1_000_000_000)
)

// ErrSecsOutOfRange is returned by FromDurationChecked when the duration's
// whole-second count does not fit in the 32-bit seconds part.
var ErrSecsOutOfRange = fmt.Errorf("seconds component exceeds %d", MaxSecs)

// Timestamp is a 64-bit NTP timestamp.
//
// It is a plain value: copy it, compare it with Before/After/Equal and discard
// it like any other integer. The zero value is valid and ranks below every
// other timestamp.
type Timestamp uint64

// FromDuration converts a duration since the epoch into a Timestamp.
//
// The fraction part is rounded down to the nearest fraction unit, then the raw
// value is incremented by one. The increment keeps a duration-derived
// timestamp distinct from (and ranking just above) the value a bare logical
// counter tick would produce at the same physical second, and is part of the
// wire format; do not remove it.
//
// The duration must be non-negative and its whole-second count must fit in
// 32 bits (at most MaxSecs); violating either panics. Use FromDurationChecked
// where a panic is unacceptable.
func FromDuration(d time.Duration) Timestamp {
	ts, err := FromDurationChecked(d)
	if err != nil {
		panic(err)
	}
	return ts
}

// FromDurationChecked is FromDuration with the precondition surfaced as an
// error instead of a panic. The error is ErrSecsOutOfRange when the duration's
// seconds exceed MaxSecs.
func FromDurationChecked(d time.Duration) (Timestamp, error) {
	if d < 0 {
		return 0, fmt.Errorf("negative duration %v", d)
	}
	secs := uint64(d / time.Second)
	if secs > MaxSecs {
		return 0, ErrSecsOutOfRange
	}
	nanos := uint64(d % time.Second)
	return Timestamp(secs<<32|nanos*FracPerSec/nanoPerSec) + 1, nil
}

// Uint64 returns the raw 64-bit value.
func (ts Timestamp) Uint64() uint64 {
	return uint64(ts)
}

// Secs returns the 32-bit seconds part.
func (ts Timestamp) Secs() uint32 {
	return uint32(ts >> 32)
}

// SubsecNanos returns the fraction part converted to nanoseconds, rounding
// down. The fraction is finer grained than a nanosecond, so distinct raw
// values can map to the same nanosecond count.
func (ts Timestamp) SubsecNanos() uint32 {
	frac := uint64(ts) & fracMask
	return uint32(frac * nanoPerSec / FracPerSec)
}

// SecsFloat64 returns the timestamp as a floating point number of seconds.
//
// For a time relative to the epoch the seconds part is large and the mantissa
// only leaves precision in the order of microseconds, so the result must not
// be used for comparison; compare Timestamp values directly instead.
func (ts Timestamp) SecsFloat64() float64 {
	return float64(ts.Secs()) + float64(uint64(ts)&fracMask)/float64(FracPerSec)
}

// Counter returns the low bits of the fraction interpreted as a logical
// counter of the given width. The width is owned by the clock that issued the
// timestamp.
func (ts Timestamp) Counter(bits uint) uint64 {
	return uint64(ts) & (uint64(1)<<bits - 1)
}

// ToDuration converts the timestamp to a duration since the epoch.
//
// The fraction goes through SubsecNanos, so combined with the increment
// applied by FromDuration the round trip is only accurate to a few fraction
// units.
func (ts Timestamp) ToDuration() time.Duration {
	return time.Duration(ts.Secs())*time.Second + time.Duration(ts.SubsecNanos())
}

// Add returns ts advanced by other. Overflow wraps around, as for any
// unsigned 64-bit addition.
func (ts Timestamp) Add(other Timestamp) Timestamp {
	return ts + other
}

// Sub returns the difference between ts and other as a count of fraction
// units. Underflow wraps around; the result is meaningful as elapsed units,
// not necessarily as an absolute timestamp.
func (ts Timestamp) Sub(other Timestamp) Timestamp {
	return ts - other
}

// AddTicks returns ts advanced by n fraction units, typically to bump a
// logical counter. Overflow wraps around.
func (ts Timestamp) AddTicks(n uint64) Timestamp {
	return ts + Timestamp(n)
}

// SubTicks returns ts moved back by n fraction units. Underflow wraps around.
func (ts Timestamp) SubTicks(n uint64) Timestamp {
	return ts - Timestamp(n)
}

// Before returns true if ts is before other.
func (ts Timestamp) Before(other Timestamp) bool {
	return ts < other
}

// After returns true if ts is after other.
func (ts Timestamp) After(other Timestamp) bool {
	return ts > other
}

// Equal returns true if ts is equal to other.
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts == other
}

// Compare returns -1, 0 or 1 depending on whether ts sorts before, equal to
// or after other.
func (ts Timestamp) Compare(other Timestamp) int {
	switch {
	case ts < other:
		return -1
	case ts > other:
		return 1
	}
	return 0
}
