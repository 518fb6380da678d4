// Package option provides a generic optional value. Dataset cells that may be
// null are carried as Option[string].
package option

import (
	"bytes"
	"encoding/json"
)

type Option[T any] struct {
	value  T
	isSome bool
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, isSome: true}
}

// NonZero returns None for the zero value of T and Some otherwise. An empty
// CSV cell becomes None this way.
func NonZero[T comparable](value T) Option[T] {
	var zero T
	if value == zero {
		return None[T]()
	}
	return Some(value)
}

func (x Option[T]) IsSome() bool {
	return x.isSome
}

func (x Option[T]) IsNone() bool {
	return !x.isSome
}

func (x Option[T]) Get() T {
	if !x.isSome {
		panic("option is none")
	}
	return x.value
}

func (x Option[T]) GetOr(fallback T) T {
	if !x.isSome {
		return fallback
	}
	return x.value
}

// MarshalJSON encodes None as null.
func (x Option[T]) MarshalJSON() ([]byte, error) {
	if !x.isSome {
		return []byte("null"), nil
	}
	return json.Marshal(x.value)
}

func (x *Option[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*x = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*x = Some(v)

	return nil
}
