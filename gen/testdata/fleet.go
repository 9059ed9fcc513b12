package fleet

import (
	_ "embed"
	"net/url"
	tm "time"
)

// Vehicle is a registered unit.
//
//typestate:builder
type Vehicle struct {
	VIN   string   `typestate:"required"`
	Owner *url.URL `typestate:"optional"`
	notes string   `typestate:"-"`
}

type (
	// Route is a planned trip.
	//
	//typestate:builder
	Route struct {
		From, To string    `typestate:"required"`
		Stops    []tm.Time `typestate:"append" json:"stops"`
		Type     string    `typestate:"optional,omitempty"`
		Urgent   bool      `typestate:"flag"`
	}

	// Leg is not annotated.
	Leg struct{ N int }
)

// Token is opaque.
//
//typestate:builder
type Token struct {
	Value string `typestate:"required"`
}
