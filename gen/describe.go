package gen

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/typestate/lattice"
)

// Describe writes the state lattice of the named entity to w: one block per
// state listing the setters callable from it and whether Build accepts it.
func Describe(w io.Writer, f *File, name string) error {
	e, ok := f.Entity(name)
	if !ok {
		return fmt.Errorf("Describe(%s): %w", name, ErrUnknownEntity)
	}
	l, err := lattice.New(e.Fields)
	if err != nil {
		return fmt.Errorf("Describe(%s): %w", name, err)
	}

	builder := e.Name + "Builder"
	buildable := 0
	for _, m := range l.States() {
		if l.Buildable(m) {
			buildable++
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s: %d gated fields, %d states, %d buildable\n", e.Name, l.Width(), l.Count(), buildable)
	for _, m := range l.States() {
		label := l.Label(builder, m)
		if l.Buildable(m) {
			fmt.Fprintf(tw, "%s\tBuild%s\n", label, e.Name)
		} else {
			fmt.Fprintf(tw, "%s\t\n", label)
		}
		for _, tr := range l.Transitions(m) {
			fmt.Fprintf(tw, "  %sSet%s\t-> %s\n", e.Name, exported(tr.Field), l.Label(builder, tr.To))
		}
	}

	return tw.Flush()
}
