// Package gen generates type-state builders for annotated structs.
//
// What:
//
//	A struct marked with the //typestate:builder directive, whose fields carry
//	a classification tag, gets a builder with one phantom type parameter per
//	gated field:
//
//		//typestate:builder
//		type Endpoint struct {
//			Host    string        `typestate:"required"`
//			Port    int           `typestate:"required"`
//			Timeout time.Duration `typestate:"optional"`
//			Tags    []string      `typestate:"append"`
//			TLS     bool          `typestate:"flag"`
//			cache   string        `typestate:"-"`
//		}
//
//	generates
//
//		EndpointBuilder[SHost, SPort, STimeout state.Bit]
//		NewEndpointBuilder()
//		EndpointSetHost, EndpointSetPort, EndpointSetTimeout
//		(EndpointBuilder).AppendTags, (EndpointBuilder).MarkTLS
//		BuildEndpoint
//
//	A field tagged "-" is left at its zero value by BuildEndpoint.
//
// Pipeline:
//
//   - Parse:    go/parser → File{Package, Imports, Entities}; each entity's
//     fields are validated by field.Classify.
//   - Generate: text/template → golang.org/x/tools/imports, which formats
//     the source and drops imports the builder does not use.
//   - Describe: prints the state lattice of one entity (package lattice).
//
// Options:
//
//	WithTagKey, WithLogger, WithGeneratorName. Option constructors panic on
//	meaningless values; Parse and Generate return errors.
//
// Errors:
//
//	ErrNoEntities       no struct carries the directive.
//	ErrNotStruct        the directive is on a non-struct type.
//	ErrGenericEntity    the entity declares type parameters.
//	ErrUntaggedField    a field has no classification tag.
//	ErrUnsupportedField an embedded field.
//	ErrUnknownEntity    Describe was asked for a missing entity.
//
// Classification errors from package field and size errors from package
// lattice are wrapped and remain visible to errors.Is.
package gen
