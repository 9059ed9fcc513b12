package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/typestate/field"
)

// Import is one import of the source file, carried into the generated file
// so field types keep resolving.
type Import struct {
	Name string // explicit name, empty when absent
	Path string
}

// Entity is one annotated struct.
type Entity struct {
	// Name is the struct type name.
	Name string
	// Fields holds the classified fields, excluding those tagged "-".
	Fields field.Classification
}

// File is the parse result of one source file.
type File struct {
	// Filename is the path Parse was given.
	Filename string
	// Package is the package clause name.
	Package string
	// Imports lists non-blank imports in source order.
	Imports []Import
	// Entities lists annotated structs in source order.
	Entities []Entity
}

// Entity returns the entity called name.
func (f *File) Entity(name string) (Entity, bool) {
	for _, e := range f.Entities {
		if e.Name == name {
			return e, true
		}
	}

	return Entity{}, false
}

// Parse reads src (or the file at filename when src is nil) and returns its
// annotated entities.
func Parse(filename string, src []byte, opts ...Option) (*File, error) {
	cfg := newConfig(opts)

	// A nil []byte stored in an interface is not a nil interface; ParseFile
	// would parse it as an empty buffer instead of reading filename.
	var in any
	if src != nil {
		in = src
	}

	fset := token.NewFileSet()
	af, err := parser.ParseFile(fset, filename, in, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("Parse(%s): %w", filename, err)
	}

	out := &File{Filename: filename, Package: af.Name.Name}
	for _, is := range af.Imports {
		imp := Import{Path: mustUnquote(is.Path.Value)}
		if is.Name != nil {
			if is.Name.Name == "_" {
				continue
			}
			imp.Name = is.Name.Name
		}
		out.Imports = append(out.Imports, imp)
	}

	for _, decl := range af.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}
			if !hasDirective(doc) {
				continue
			}

			e, err := parseEntity(fset, ts, cfg.tagKey)
			if err != nil {
				return nil, err
			}
			cfg.logger.Debug("parsed entity", "file", filename, "entity", e.Name, "fields", e.Fields.Len())
			out.Entities = append(out.Entities, e)
		}
	}
	if len(out.Entities) == 0 {
		return nil, fmt.Errorf("Parse(%s): %w", filename, ErrNoEntities)
	}

	return out, nil
}

func parseEntity(fset *token.FileSet, ts *ast.TypeSpec, tagKey string) (Entity, error) {
	pos := fset.Position(ts.Pos()).String()
	name := ts.Name.Name

	if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
		return Entity{}, genErrorf(pos, "%s", ErrGenericEntity, name)
	}
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return Entity{}, genErrorf(pos, "%s", ErrNotStruct, name)
	}

	var fields []field.Field
	for _, f := range st.Fields.List {
		fpos := fset.Position(f.Pos()).String()
		if len(f.Names) == 0 {
			return Entity{}, genErrorf(fpos, "%s: embedded %s", ErrUnsupportedField, name, types.ExprString(f.Type))
		}

		tok, ok := lookupTag(f.Tag, tagKey)
		if !ok {
			return Entity{}, genErrorf(fpos, "%s.%s: want `%s:\"...\"`", ErrUntaggedField, name, f.Names[0].Name, tagKey)
		}
		if tok == SkipToken {
			continue
		}
		kind, err := field.ParseKind(tok)
		if err != nil {
			return Entity{}, genErrorf(fpos, "%s.%s", err, name, f.Names[0].Name)
		}

		typ := types.ExprString(f.Type)
		for _, n := range f.Names {
			fields = append(fields, field.Field{Name: n.Name, Type: typ, Kind: kind})
		}
	}

	c, err := field.Classify(fields...)
	if err != nil {
		return Entity{}, genErrorf(pos, "%s", err, name)
	}

	return Entity{Name: name, Fields: c}, nil
}

// lookupTag returns the first comma-separated element of the tag value.
func lookupTag(tag *ast.BasicLit, key string) (string, bool) {
	if tag == nil {
		return "", false
	}
	v, ok := reflect.StructTag(mustUnquote(tag.Value)).Lookup(key)
	if !ok {
		return "", false
	}
	head, _, _ := strings.Cut(v, ",")

	return strings.TrimSpace(head), true
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == Directive {
			return true
		}
	}

	return false
}

// mustUnquote unquotes a literal the parser already validated.
func mustUnquote(lit string) string {
	s, err := strconv.Unquote(lit)
	if err != nil {
		return lit
	}

	return s
}
