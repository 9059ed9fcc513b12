package state

type Unset struct{}

type Set struct{}

type Bit interface {
	Unset | Set
}

type Slot[T any, B Bit] struct {
	v T
}

func Fill[T any](_ Slot[T, Unset], v T) Slot[T, Set] { return Slot[T, Set]{v: v} }

func Get[T any](s Slot[T, Set]) T { return s.v }
