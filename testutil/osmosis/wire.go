package osmosis

import (
	"fmt"
	"time"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// fieldDecoder consumes the value of one field from b and reports how many
// bytes it used. Returning 0 marks the field as unknown; it is then skipped.
type fieldDecoder func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

// decodeMessage walks a protobuf wire encoded message. Fields may come in any
// order, unknown fields are skipped and a repeated scalar keeps its last value.
func decodeMessage(b []byte, decode fieldDecoder) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		m, err := decode(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return fmt.Errorf("field %d: %w", num, protowire.ParseError(m))
			}
		}
		b = b[m:]
	}
	return nil
}

func expectType(typ, want protowire.Type) error {
	if typ != want {
		return fmt.Errorf("unexpected wire type %d, want %d", typ, want)
	}
	return nil
}

func consumeUint64(typ protowire.Type, b []byte, dst *uint64) (int, error) {
	if err := expectType(typ, protowire.VarintType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = v
	return n, nil
}

func consumeInt64(typ protowire.Type, b []byte, dst *int64) (int, error) {
	var v uint64
	n, err := consumeUint64(typ, b, &v)
	if err != nil {
		return 0, err
	}
	*dst = int64(v)
	return n, nil
}

func consumeBytes(typ protowire.Type, b []byte) ([]byte, int, error) {
	if err := expectType(typ, protowire.BytesType); err != nil {
		return nil, 0, err
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeString(typ protowire.Type, b []byte, dst *string) (int, error) {
	v, n, err := consumeBytes(typ, b)
	if err != nil {
		return 0, err
	}
	if !utf8.Valid(v) {
		return 0, fmt.Errorf("string field is not valid UTF-8")
	}
	*dst = string(v)
	return n, nil
}

func consumeTimestamp(typ protowire.Type, b []byte, dst *time.Time) (int, error) {
	v, n, err := consumeBytes(typ, b)
	if err != nil {
		return 0, err
	}

	var seconds, nanos int64
	err = decodeMessage(v, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt64(typ, b, &seconds)
		case 2:
			return consumeInt64(typ, b, &nanos)
		}
		return 0, nil
	})
	if err != nil {
		return 0, fmt.Errorf("timestamp: %w", err)
	}
	if nanos < 0 || nanos >= int64(time.Second) {
		return 0, fmt.Errorf("timestamp: nanos %d out of range", nanos)
	}
	*dst = time.Unix(seconds, nanos).UTC()
	return n, nil
}

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func appendTimestamp(b []byte, num protowire.Number, t time.Time) []byte {
	var msg []byte
	msg = appendUint64(msg, 1, uint64(t.Unix()))
	msg = appendUint64(msg, 2, uint64(t.Nanosecond()))
	return appendMessage(b, num, msg)
}
