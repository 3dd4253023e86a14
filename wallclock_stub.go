//go:build skip_wallclock

package hlc

// Without wall-clock support the alternate rendering falls back to the
// decimal form.
func (ts Timestamp) alternateString() string {
	return ts.String()
}
