package hlc

import (
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
)

// The encoded forms below are the bare 64-bit value; any framing around them
// belongs to the caller's serialization layer.

var (
	_ msgpack.CustomEncoder = Timestamp(0)
	_ msgpack.CustomDecoder = (*Timestamp)(nil)
)

// MarshalText renders the timestamp in the lossless decimal form.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText parses the decimal form.
func (ts *Timestamp) UnmarshalText(data []byte) error {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	*ts = v
	return nil
}

// MarshalJSON encodes the timestamp as a plain JSON number holding the raw
// 64-bit value.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(ts), 10), nil
}

// UnmarshalJSON decodes a plain JSON number into the timestamp.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	*ts = v
	return nil
}

// EncodeMsgpack encodes the timestamp as a msgpack uint64, keeping the wire
// form independent of how the surrounding message is laid out.
func (ts Timestamp) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeUint64(uint64(ts))
}

// DecodeMsgpack decodes a msgpack uint64 into the timestamp.
func (ts *Timestamp) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	*ts = Timestamp(v)
	return nil
}
