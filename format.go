package hlc

import (
	"fmt"
	"io"
	"strconv"
)

// ParseError is returned by Parse and ParseRFC3339 when the input is not a
// valid textual timestamp. It is input-validation feedback, not a systemic
// fault.
type ParseError struct {
	Cause string
}

func (e *ParseError) Error() string {
	return e.Cause
}

// String renders the timestamp in its canonical decimal form: the base-10
// representation of the raw 64-bit value. The conversion is lossless and
// Parse inverts it exactly.
func (ts Timestamp) String() string {
	return strconv.FormatUint(uint64(ts), 10)
}

// Parse converts a decimal string produced by String back into a Timestamp.
// It fails with a *ParseError unless the string is a plain base-10 unsigned
// 64-bit integer.
func Parse(s string) (Timestamp, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &ParseError{Cause: fmt.Sprintf("invalid timestamp '%s': must be an unsigned 64-bit integer", s)}
	}
	return Timestamp(v), nil
}

// Format implements fmt.Formatter. The default rendering is the decimal form;
// the alternate flag ('#', as in "%#v") selects the lossy RFC3339 rendering.
// "%d" always prints the decimal form so debugging output stays stable
// whichever display mode callers pick.
func (ts Timestamp) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if f.Flag('#') {
			io.WriteString(f, ts.alternateString())
			return
		}
		io.WriteString(f, ts.String())
	case 'd':
		io.WriteString(f, ts.String())
	default:
		fmt.Fprintf(f, "%%!%c(hlc.Timestamp=%s)", verb, ts.String())
	}
}
