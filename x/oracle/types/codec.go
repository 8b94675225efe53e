package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// JSONValue returns a collections value codec storing T as JSON.
func JSONValue[T any]() collcodec.ValueCodec[T] {
	return jsonValue[T]{}
}

type jsonValue[T any] struct{}

func (jsonValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (jsonValue[T]) Decode(b []byte) (T, error) {
	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return value, fmt.Errorf("%w: %s", collcodec.ErrEncoding, err)
	}
	return value, nil
}

func (j jsonValue[T]) EncodeJSON(value T) ([]byte, error) {
	return j.Encode(value)
}

func (j jsonValue[T]) DecodeJSON(b []byte) (T, error) {
	return j.Decode(b)
}

func (jsonValue[T]) Stringify(value T) string {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%+v", value)
	}
	return string(b)
}

func (jsonValue[T]) ValueType() string {
	return fmt.Sprintf("oracle/json/%T", *new(T))
}
