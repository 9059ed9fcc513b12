package gen

import "text/template"

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by {{.Generator}}. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Std}}
	{{if .Name}}{{.Name}} {{end}}"{{.Path}}"
{{- end}}
{{if .Other}}
{{- range .Other}}
	{{if .Name}}{{.Name}} {{end}}"{{.Path}}"
{{- end}}
{{- end}}
)
{{range .Entities}}{{template "entity" .}}{{end}}`))

var _ = template.Must(fileTemplate.New("entity").Parse(`{{$e := .}}
// {{.Builder}} assembles {{.Article}} {{.Name}}. Each type parameter records
// whether the gated field of the same name has been supplied.
type {{.Builder}}{{.TypeParams}} struct {
{{- range .Gated}}
	{{.Var}} state.Slot[{{.Type}}, {{.Param}}]
{{- end}}
{{- range .Plain}}
	{{.Var}} {{.Type}}
{{- end}}
}

// New{{.Builder}} returns {{.Article}} {{.Builder}} with no field supplied.
func New{{.Builder}}() {{.Empty}} {
	return {{.Empty}}{}
}
{{range $g := .Gated}}
// {{.Func}} supplies the {{.Kind}} field {{.Name}}.
{{- if not .Required}} It may be called at most once.{{end}}
func {{.Func}}{{.Params}}(b {{.In}}, v {{.Type}}) {{.Out}} {
	return {{.Out}}{
	{{- range $e.Gated}}
		{{.Var}}: {{if eq .Name $g.Name}}state.Fill(b.{{.Var}}, v){{else}}b.{{.Var}}{{end}},
	{{- end}}
	{{- range $e.Plain}}
		{{.Var}}: b.{{.Var}},
	{{- end}}
	}
}
{{end}}
{{- range .Appends}}
// {{.Method}} appends one element to {{.Name}}. Callable in every state.
func (b {{$e.Recv}}) {{.Method}}(v {{.Elem}}) {{$e.Recv}} {
	b.{{.Var}} = append(slices.Clip(b.{{.Var}}), v)
	return b
}
{{end}}
{{- range .Flags}}
// {{.Method}} sets {{.Name}}. Repeated calls leave it set.
func (b {{$e.Recv}}) {{.Method}}() {{$e.Recv}} {
	b.{{.Var}} = true
	return b
}
{{end}}
// Build{{.Name}} completes {{.Article}} {{.Builder}} whose required fields are supplied.
func Build{{.Name}}{{.BuildParams}}(b {{.BuildIn}}) {{.Name}} {
	var out {{.Name}}
{{- range .Gated}}
{{- if .Required}}
	out.{{.Name}} = state.Get(b.{{.Var}})
{{- else}}
	out.{{.Name}}, _ = state.Peek(b.{{.Var}})
{{- end}}
{{- end}}
{{- range .Appends}}
	out.{{.Name}} = slices.Clone(b.{{.Var}})
{{- end}}
{{- range .Flags}}
	out.{{.Name}} = b.{{.Var}}
{{- end}}
	return out
}
`))
