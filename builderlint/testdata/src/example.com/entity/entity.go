package entity

import "github.com/katalvlaran/typestate/state"

type Builder[ID, Note state.Bit] struct {
	id   state.Slot[int, ID]
	note state.Slot[string, Note]
}

type Entity struct {
	ID   int
	Note string
}

func New() Builder[state.Unset, state.Unset] {
	return Builder[state.Unset, state.Unset]{}
}

func SetID[N state.Bit](b Builder[state.Unset, N], id int) Builder[state.Set, N] {
	return Builder[state.Set, N]{id: state.Fill(b.id, id), note: b.note}
}

func Build[N state.Bit](b Builder[state.Set, N]) Entity {
	var done Builder[state.Set, state.Set]
	_ = done
	return Entity{ID: state.Get(b.id)}
}
