// SPDX-License-Identifier: MIT
// Package: typestate/gen
//
// generate.go - renders builders for parsed entities.
//
// Contract:
//   • Type parameters follow field.Classification.Gated(): required fields
//     first, then optional ones, each in declaration order.
//   • Every signature is computed here; the template only lays text out.
//   • Output is formatted by golang.org/x/tools/imports, which also drops
//     source imports the builder does not reference.

package gen

import (
	"bytes"
	"fmt"
	"go/token"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/imports"

	"github.com/katalvlaran/typestate/field"
	"github.com/katalvlaran/typestate/lattice"
)

// StateImport is the import path of the marker package used by generated code.
const StateImport = "github.com/katalvlaran/typestate/state"

const (
	markerSet   = "state.Set"
	markerUnset = "state.Unset"
	bitType     = "state.Bit"
)

type fileData struct {
	Generator string
	Package   string
	Std       []Import
	Other     []Import
	Entities  []entityData
}

type entityData struct {
	Name        string
	Article     string
	Builder     string
	TypeParams  string // "[SHost, SPort state.Bit]"
	Recv        string // "EndpointBuilder[SHost, SPort]"
	Empty       string // "EndpointBuilder[state.Unset, state.Unset]"
	BuildParams string // "[SPort state.Bit]" or ""
	BuildIn     string
	States      int
	Gated       []gatedData
	Plain       []plainData
	Appends     []plainData
	Flags       []plainData
}

type gatedData struct {
	Name     string
	Type     string
	Kind     string
	Var      string
	Param    string
	Func     string
	Params   string // type parameter list of the setter, "" when none
	In, Out  string
	Required bool
}

type plainData struct {
	Name   string
	Type   string
	Elem   string
	Var    string
	Method string
}

// Generate renders the builders of every entity in f.
func Generate(f *File, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	if f == nil || len(f.Entities) == 0 {
		return nil, fmt.Errorf("Generate: %w", ErrNoEntities)
	}

	data := fileData{Generator: cfg.generator, Package: f.Package}
	data.Std, data.Other = splitImports(f.Imports)

	for _, e := range f.Entities {
		ed, err := entity(e)
		if err != nil {
			return nil, fmt.Errorf("Generate(%s): %w", e.Name, err)
		}
		cfg.logger.Debug("rendering builder",
			"entity", e.Name, "builder", ed.Builder, "gated", len(ed.Gated), "states", ed.States)
		data.Entities = append(data.Entities, ed)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("Generate: render: %w", err)
	}

	out, err := imports.Process(OutputPath(f.Filename, ""), buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("Generate: format: %w\n%s", err, buf.Bytes())
	}

	return out, nil
}

// entity computes every name and signature of one builder.
func entity(e Entity) (entityData, error) {
	l, err := lattice.New(e.Fields)
	if err != nil {
		return entityData{}, err
	}

	if err := checkCollisions(e.Fields); err != nil {
		return entityData{}, err
	}

	gated := e.Fields.Gated()
	vars := newVarNames()
	params := make([]string, len(gated))
	for i, f := range gated {
		params[i] = "S" + exported(f.Name)
	}

	ed := entityData{
		Name:    e.Name,
		Article: article(e.Name),
		Builder: e.Name + "Builder",
		States:  l.Count(),
	}
	ed.TypeParams = typeParams(params)
	ed.Recv = instantiate(ed.Builder, params)
	ed.Empty = instantiate(ed.Builder, repeat(markerUnset, len(gated)))

	var buildParams []string
	buildArgs := make([]string, len(gated))
	for i, f := range gated {
		others := make([]string, 0, len(params)-1)
		in := make([]string, len(params))
		out := make([]string, len(params))
		for j, p := range params {
			if j == i {
				in[j], out[j] = markerUnset, markerSet
				continue
			}
			in[j], out[j] = p, p
			others = append(others, p)
		}

		ed.Gated = append(ed.Gated, gatedData{
			Name:     f.Name,
			Type:     f.Type,
			Kind:     f.Kind.String(),
			Var:      vars.take(f.Name),
			Param:    params[i],
			Func:     e.Name + "Set" + exported(f.Name),
			Params:   typeParams(others),
			In:       instantiate(ed.Builder, in),
			Out:      instantiate(ed.Builder, out),
			Required: f.Kind == field.Required,
		})

		if f.Kind == field.Required {
			buildArgs[i] = markerSet
		} else {
			buildArgs[i] = params[i]
			buildParams = append(buildParams, params[i])
		}
	}
	ed.BuildParams = typeParams(buildParams)
	ed.BuildIn = instantiate(ed.Builder, buildArgs)

	for _, f := range e.Fields.Accumulating() {
		pd := plainData{Name: f.Name, Type: f.Type, Elem: f.Elem(), Var: vars.take(f.Name), Method: "Append" + exported(f.Name)}
		ed.Appends = append(ed.Appends, pd)
		ed.Plain = append(ed.Plain, pd)
	}
	for _, f := range e.Fields.Flags() {
		pd := plainData{Name: f.Name, Type: "bool", Var: vars.take(f.Name), Method: "Mark" + exported(f.Name)}
		ed.Flags = append(ed.Flags, pd)
		ed.Plain = append(ed.Plain, pd)
	}

	return ed, nil
}

// splitImports returns the source imports plus "slices" and the state
// package, grouped standard library first and sorted by path.
func splitImports(in []Import) (std, other []Import) {
	seen := map[string]bool{}
	add := func(imp Import) {
		if seen[imp.Path] {
			return
		}
		seen[imp.Path] = true
		first, _, _ := strings.Cut(imp.Path, "/")
		if strings.Contains(first, ".") {
			other = append(other, imp)
		} else {
			std = append(std, imp)
		}
	}
	for _, imp := range in {
		add(imp)
	}
	add(Import{Path: "slices"})
	add(Import{Path: StateImport})

	sort.Slice(std, func(i, j int) bool { return std[i].Path < std[j].Path })
	sort.Slice(other, func(i, j int) bool { return other[i].Path < other[j].Path })

	return std, other
}

func typeParams(params []string) string {
	if len(params) == 0 {
		return ""
	}

	return "[" + strings.Join(params, ", ") + " " + bitType + "]"
}

func instantiate(name string, args []string) string {
	if len(args) == 0 {
		return name
	}

	return name + "[" + strings.Join(args, ", ") + "]"
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}

	return out
}

// exported upper-cases the first rune of name.
// checkCollisions rejects fields that differ only in the case of their
// first letter: type parameters and function names derive from the
// exported form.
func checkCollisions(c field.Classification) error {
	seen := make(map[string]string, c.Len())
	for _, f := range c.Fields() {
		id := exported(f.Name)
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s and %s both yield %s", ErrNameCollision, prev, f.Name, id)
		}
		seen[id] = f.Name
	}

	return nil
}

func exported(name string) string {
	r, size := utf8.DecodeRuneInString(name)

	return string(unicode.ToUpper(r)) + name[size:]
}

func article(name string) string {
	if name != "" && strings.ContainsRune("AEIOU", unicode.ToUpper(rune(name[0]))) {
		return "an"
	}

	return "a"
}

// varNames hands out unique storage identifiers: the field name with its
// first rune lower-cased, suffixed with "_" when that is a keyword, a
// predeclared name used by the template, or already taken.
type varNames map[string]bool

func newVarNames() varNames {
	return varNames{"b": true, "v": true, "out": true, "state": true, "slices": true}
}

func (vn varNames) take(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	v := string(unicode.ToLower(r)) + name[size:]
	for token.IsKeyword(v) || vn[v] {
		v += "_"
	}
	vn[v] = true

	return v
}
