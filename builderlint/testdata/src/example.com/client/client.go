package client

import (
	"example.com/entity"

	"github.com/katalvlaran/typestate/state"
)

type Ready = entity.Builder[state.Set, state.Unset]

func ok() entity.Entity {
	var fresh entity.Builder[state.Unset, state.Unset]
	_ = fresh
	var b Ready = entity.SetID(entity.New(), 1)
	_ = entity.Builder[state.Unset, state.Unset]{}
	return entity.Build(b)
}

func bad() {
	var b entity.Builder[state.Set, state.Unset] // want "var without initializer of entity.Builder bypasses its constructor"
	_ = entity.Build(b)

	_ = entity.Build(entity.Builder[state.Set, state.Set]{}) // want "composite literal of entity.Builder bypasses its constructor"

	p := new(Ready) // want "new of entity.Builder bypasses its constructor"
	_ = entity.Build(*p)

	var s state.Slot[string, state.Set] // want "var without initializer of state.Slot bypasses its constructor"
	_ = state.Get(s)
}

func generic[N state.Bit]() {
	var b entity.Builder[N, state.Unset]
	_ = b
}

type holder struct {
	name string
	b    Ready
}

func nested() {
	var h holder // want "var without initializer of entity.Builder bypasses its constructor"
	_ = entity.Build(h.b)

	var arr [2]entity.Builder[state.Set, state.Unset] // want "var without initializer of entity.Builder bypasses its constructor"
	_ = arr

	var anon struct{ b entity.Builder[state.Set, state.Set] } // want "var without initializer of entity.Builder bypasses its constructor"
	_ = anon

	_ = new(holder) // want "new of entity.Builder bypasses its constructor"

	_ = holder{name: "x"} // want "composite literal of entity.Builder bypasses its constructor"

	full := holder{name: "x", b: entity.SetID(entity.New(), 1)}
	_ = full

	var ptr *Ready
	var list []Ready
	var byID map[int]Ready
	_, _, _ = ptr, list, byID
}
