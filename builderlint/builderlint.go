// Package builderlint defines an analyzer that reports type-state builders
// obtained without their constructor.
//
// Go lets any type be zero-valued, so a caller can write
//
//	var b person.Builder[state.Set, state.Set, state.Unset]
//	p := person.Build(b) // type-checks, but no name or age was supplied
//
// The analyzer closes that hole. Outside the package that declares it, a
// named generic type instantiated with at least one state.Set argument may
// not be produced by
//
//   - a composite literal, or a keyed struct literal that omits a field
//     holding one,
//   - new(T),
//   - a var declaration without an initializer.
//
// For new and var the builder may sit anywhere a zero value carries it by
// value: struct fields and array elements, at any depth. Pointers, slices,
// maps and channels are nil when zero and are not followed.
//
// All-Unset instantiations are exempt: their zero value is exactly what a
// constructor returns. Type arguments that are themselves type parameters
// are not judged. Named function results also start zeroed and are not
// checked.
package builderlint

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// StatePath is the import path of the marker package.
const StatePath = "github.com/katalvlaran/typestate/state"

const doc = `report type-state builders created without their constructor

A zero value of a builder whose type records a field as Set claims a
field was supplied when it never was. Builders must come from their
constructor and transition functions.`

// Analyzer reports zero-valued completed builder states.
var Analyzer = &analysis.Analyzer{
	Name:     "builderlint",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	filter := []ast.Node{
		(*ast.CompositeLit)(nil),
		(*ast.CallExpr)(nil),
		(*ast.ValueSpec)(nil),
	}
	insp.Preorder(filter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.CompositeLit:
			t := pass.TypesInfo.TypeOf(n)
			if _, ok := completedBuilder(t); ok {
				report(pass, n, "composite literal", t)
				return
			}
			for _, f := range omittedFields(t, n) {
				report(pass, n, "composite literal", f.Type())
			}

		case *ast.CallExpr:
			id, ok := n.Fun.(*ast.Ident)
			if !ok || len(n.Args) != 1 {
				return
			}
			if b, ok := pass.TypesInfo.Uses[id].(*types.Builtin); ok && b.Name() == "new" {
				report(pass, n, "new", pass.TypesInfo.TypeOf(n.Args[0]))
			}

		case *ast.ValueSpec:
			if n.Type == nil || len(n.Values) > 0 {
				return
			}
			report(pass, n, "var without initializer", pass.TypesInfo.TypeOf(n.Type))
		}
	})

	return nil, nil
}

// report emits a diagnostic when t holds a foreign builder in a Set state.
func report(pass *analysis.Pass, n ast.Node, what string, t types.Type) {
	named, ok := findCompleted(t, 0)
	if !ok {
		return
	}
	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg() == pass.Pkg {
		return
	}
	pass.Reportf(n.Pos(), "%s of %s.%s bypasses its constructor", what, obj.Pkg().Name(), obj.Name())
}

// maxDepth bounds the walk through nested struct and array types.
const maxDepth = 16

// findCompleted returns the first completed builder that a zero value of t
// holds by value: t itself, a struct field or an array element.
func findCompleted(t types.Type, depth int) (*types.Named, bool) {
	if t == nil || depth > maxDepth {
		return nil, false
	}
	if named, ok := completedBuilder(t); ok {
		return named, true
	}

	switch u := t.Underlying().(type) {
	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			if named, ok := findCompleted(u.Field(i).Type(), depth+1); ok {
				return named, true
			}
		}
	case *types.Array:
		return findCompleted(u.Elem(), depth+1)
	}

	return nil, false
}

// omittedFields returns the fields of a keyed struct literal that lit leaves
// zero. Unkeyed literals and literals of non-struct types yield nil.
func omittedFields(t types.Type, lit *ast.CompositeLit) []*types.Var {
	if t == nil {
		return nil
	}
	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	given := make(map[string]bool, len(lit.Elts))
	for _, e := range lit.Elts {
		kv, ok := e.(*ast.KeyValueExpr)
		if !ok {
			// Unkeyed literals must list every field.
			return nil
		}
		if id, ok := kv.Key.(*ast.Ident); ok {
			given[id.Name] = true
		}
	}

	var out []*types.Var
	for i := 0; i < st.NumFields(); i++ {
		if f := st.Field(i); !given[f.Name()] {
			out = append(out, f)
		}
	}

	return out
}

// completedBuilder reports whether t is a named instantiation with at least
// one state.Set type argument.
func completedBuilder(t types.Type) (*types.Named, bool) {
	if t == nil {
		return nil, false
	}
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, false
	}
	args := named.TypeArgs()
	for i := 0; i < args.Len(); i++ {
		if isMarker(args.At(i), "Set") {
			return named, true
		}
	}

	return nil, false
}

func isMarker(t types.Type, name string) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()

	return obj.Pkg() != nil && obj.Pkg().Path() == StatePath && obj.Name() == name
}
