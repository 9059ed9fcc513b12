package person_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/typestate/field"
	"github.com/katalvlaran/typestate/lattice"
	"github.com/katalvlaran/typestate/person"
	"github.com/katalvlaran/typestate/state"
)

// assertJohn checks the canonical end-to-end result.
func assertJohn(t *testing.T, p person.Person) {
	t.Helper()

	assert.Equal(t, "John", p.Name())
	assert.Equal(t, uint8(42), p.Age())
	assert.Equal(t, state.Some("Jane"), p.Partner())
	assert.Equal(t, []string{"Bob", "Sam"}, p.Friends())
	assert.True(t, p.Dead())
}

// TestBuild_EndToEnd builds the reference person with optional and flag
// operations interleaved before, between and after the required setters.
func TestBuild_EndToEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() person.Person
	}{
		{"chained", func() person.Person {
			b := person.SetAge(person.SetName(person.New(), "John"), 42).
				AddFriend("Bob")
			b = b.MarkDead().MarkDead().AddFriend("Sam")
			return person.Build(person.SetPartner(b, "Jane"))
		}},
		{"optional_and_flags_first", func() person.Person {
			b := person.SetPartner(person.New(), "Jane").MarkDead().MarkDead().AddFriend("Bob").AddFriend("Sam")
			return person.Build(person.SetAge(person.SetName(b, "John"), 42))
		}},
		{"interleaved", func() person.Person {
			b0 := person.New().AddFriend("Bob")
			b1 := person.SetName(b0, "John").MarkDead()
			b2 := person.SetPartner(b1, "Jane").AddFriend("Sam")
			b3 := person.SetAge(b2, 42).MarkDead()
			return person.Build(b3)
		}},
		{"step_by_step", func() person.Person {
			var b0 person.Builder[state.Unset, state.Unset, state.Unset] = person.New()
			var b1 person.Builder[state.Set, state.Unset, state.Unset] = person.SetName(b0, "John")
			var b2 person.Builder[state.Set, state.Set, state.Unset] = person.SetAge(b1, 42)
			b2 = b2.AddFriend("Bob")
			b2 = b2.AddFriend("Sam")
			b2 = b2.MarkDead()
			b2 = b2.MarkDead()
			var b3 person.Builder[state.Set, state.Set, state.Set] = person.SetPartner(b2, "Jane")
			return person.Build(b3)
		}},
	}

	var first person.Person
	for i, tc := range tests {
		p := tc.build()
		t.Run(tc.name, func(t *testing.T) {
			assertJohn(t, p)
		})
		if i == 0 {
			first = p
			continue
		}
		assert.True(t, first.Equal(p), "%s differs from %s", tc.name, tests[0].name)
	}
}

// TestBuild_OrderIndependence covers every ordering of the required setters,
// as enumerated by the lattice of the Person layout.
func TestBuild_OrderIndependence(t *testing.T) {
	t.Parallel()

	layout := field.MustClassify(
		field.Field{Name: "Name", Type: "string", Kind: field.Required},
		field.Field{Name: "Age", Type: "uint8", Kind: field.Required},
		field.Field{Name: "Partner", Type: "string", Kind: field.Optional},
		field.Field{Name: "Friends", Type: "[]string", Kind: field.Accumulating},
		field.Field{Name: "Dead", Type: "bool", Kind: field.Flag},
	)
	l, err := lattice.New(layout)
	require.NoError(t, err)
	orders, err := l.Orderings()
	require.NoError(t, err)

	byOrder := map[string]func() person.Person{
		"Name,Age": func() person.Person {
			return person.Build(person.SetAge(person.SetName(person.New(), "Ann"), 30))
		},
		"Age,Name": func() person.Person {
			return person.Build(person.SetName(person.SetAge(person.New(), 30), "Ann"))
		},
	}
	require.Len(t, byOrder, len(orders))

	var built []person.Person
	for _, o := range orders {
		build, ok := byOrder[strings.Join(o, ",")]
		require.True(t, ok, "no call sequence for ordering %v", o)
		built = append(built, build())
	}
	for _, p := range built[1:] {
		assert.True(t, built[0].Equal(p))
	}
}

// TestBuild_OptionalDefault verifies an omitted partner is None and a set one
// is exactly the supplied value.
func TestBuild_OptionalDefault(t *testing.T) {
	t.Parallel()

	base := person.SetAge(person.SetName(person.New(), "John"), 42)

	without := person.Build(base)
	assert.False(t, without.Partner().IsSome())
	assert.Equal(t, "", without.Partner().OrElse(""))

	with := person.Build(person.SetPartner(base, "Jane"))
	v, ok := with.Partner().Get()
	assert.True(t, ok)
	assert.Equal(t, "Jane", v)

	// an explicitly supplied empty string is still present
	empty := person.Build(person.SetPartner(base, ""))
	assert.True(t, empty.Partner().IsSome())
}

// TestAddFriend_CountAndOrder appends k friends interleaved with gated
// transitions and checks length and order.
func TestAddFriend_CountAndOrder(t *testing.T) {
	t.Parallel()

	for _, k := range []int{0, 1, 2, 7} {
		want := make([]string, 0, k)
		b := person.New()
		for i := 0; i < k/2; i++ {
			name := string(rune('a' + i))
			b = b.AddFriend(name)
			want = append(want, name)
		}
		named := person.SetName(b, "John")
		for i := k / 2; i < k; i++ {
			name := string(rune('a' + i))
			named = named.AddFriend(name).MarkDead()
			want = append(want, name)
		}
		p := person.Build(person.SetAge(named, 1))

		assert.Len(t, p.Friends(), k)
		assert.Equal(t, want, p.Friends())
	}
}

// TestMarkDead_Idempotent checks that n ≥ 1 marks equal one mark and that an
// unmarked person is alive.
func TestMarkDead_Idempotent(t *testing.T) {
	t.Parallel()

	base := person.SetAge(person.SetName(person.New(), "John"), 42)
	assert.False(t, person.Build(base).Dead())

	once := person.Build(base.MarkDead())
	b := base
	for i := 0; i < 5; i++ {
		b = b.MarkDead()
	}
	many := person.Build(b)

	assert.True(t, once.Dead())
	assert.True(t, once.Equal(many))
}

// TestBuilder_StaleHandle verifies that a builder kept from an earlier step
// is unaffected by later operations on its successors.
func TestBuilder_StaleHandle(t *testing.T) {
	t.Parallel()

	base := person.SetAge(person.SetName(person.New(), "John"), 42).AddFriend("Bob")

	left := base.AddFriend("Sam")
	right := base.AddFriend("Tom").MarkDead()

	assert.Equal(t, []string{"Bob"}, person.Build(base).Friends())
	assert.Equal(t, []string{"Bob", "Sam"}, person.Build(left).Friends())
	assert.Equal(t, []string{"Bob", "Tom"}, person.Build(right).Friends())
	assert.False(t, person.Build(base).Dead())
	assert.False(t, person.Build(left).Dead())
}

// TestPerson_Immutable checks that the entity does not expose its storage.
func TestPerson_Immutable(t *testing.T) {
	t.Parallel()

	b := person.SetAge(person.SetName(person.New(), "John"), 42).AddFriend("Bob")
	p := person.Build(b)

	friends := p.Friends()
	friends[0] = "Eve"
	assert.Equal(t, []string{"Bob"}, p.Friends())

	// building twice from the same builder yields independent entities
	q := person.Build(b.AddFriend("Sam"))
	assert.Equal(t, []string{"Bob"}, p.Friends())
	assert.Equal(t, []string{"Bob", "Sam"}, q.Friends())

	assert.NotNil(t, person.Build(person.SetAge(person.SetName(person.New(), "x"), 1)).Friends())
}
