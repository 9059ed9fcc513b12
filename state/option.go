package state

import "fmt"

// Option is a present-or-absent value. The zero value is None.
type Option[T any] struct {
	v  T
	ok bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{v: v, ok: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.v, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// OrElse returns the value if present and def otherwise.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.v
	}

	return def
}

// String renders Some(v) or None.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.v)
}
