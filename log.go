package hlc

import (
	"github.com/rs/zerolog"
)

var _ zerolog.LogObjectMarshaler = Timestamp(0)

// MarshalZerologObject writes the timestamp to a zerolog event in its decimal
// form, so log output is stable regardless of the display mode used elsewhere.
func (ts Timestamp) MarshalZerologObject(e *zerolog.Event) {
	e.Str("timestamp", ts.String())
}
