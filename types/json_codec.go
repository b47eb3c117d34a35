package types

import (
	"fmt"
	"reflect"

	collcodec "cosmossdk.io/collections/codec"
	"github.com/goccy/go-json"
)

var _ collcodec.ValueCodec[struct{}] = JSONValueCodec[struct{}]{}

// JSONValueCodec stores plain Go structs in collections using their JSON form.
type JSONValueCodec[T any] struct{}

// NewJSONValueCodec returns a collections value codec for T.
func NewJSONValueCodec[T any]() collcodec.ValueCodec[T] {
	return JSONValueCodec[T]{}
}

func (JSONValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (JSONValueCodec[T]) Decode(b []byte) (T, error) {
	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return value, fmt.Errorf("%w: %s", ErrUnmarshal, err.Error())
	}
	return value, nil
}

func (c JSONValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c JSONValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (JSONValueCodec[T]) Stringify(value T) string {
	return fmt.Sprintf("%+v", value)
}

func (JSONValueCodec[T]) ValueType() string {
	var value T
	return "json/" + reflect.TypeOf(&value).Elem().String()
}
