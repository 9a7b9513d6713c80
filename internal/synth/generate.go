package synth

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// Header marks generated files so linters and buildsort itself skip them.
const Header = "// Code generated by buildergen. DO NOT EDIT."

// DefaultSuffix is appended to the struct name to form the builder name.
const DefaultSuffix = "Builder"

// Options configures rendering.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// Filename is the destination path, used to resolve imports.
	Filename string
	// Suffix overrides DefaultSuffix.
	Suffix string
	// TagKey overrides builder.DefaultKey.
	TagKey string
	// Fset resolves positions of the source syntax. May be nil.
	Fset *token.FileSet
	// Imports are the imports of the source file. Unused ones are dropped.
	Imports []*ast.ImportSpec
}

type fieldView struct {
	Name      string
	Member    string
	Type      string
	Setter    string
	Param     string
	ParamType string
	Assign    string
	Value     string
	Doc       string
}

type fileView struct {
	Package        string
	Imports        []string
	Type           string
	Builder        string
	TypeParamsDecl string
	TypeArgs       string
	Fields         []fieldView
}

var fileTemplate = template.Must(template.New("builder").Parse(Header + `

package {{.Package}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{.}}
{{- end}}
)
{{end}}
// {{.Builder}} assembles a {{.Type}} one field at a time.
type {{.Builder}}{{.TypeParamsDecl}} struct {
{{- range .Fields}}
	{{.Member}} {{.Type}}
{{- end}}
}

// New{{.Builder}} returns a {{.Builder}} with every field unset.
func New{{.Builder}}{{.TypeParamsDecl}}() *{{.Builder}}{{.TypeArgs}} {
	return &{{.Builder}}{{.TypeArgs}}{}
}
{{range .Fields}}{{if .Setter}}
// {{.Setter}} {{.Doc}}
func (b *{{$.Builder}}{{$.TypeArgs}}) {{.Setter}}({{.Param}} {{.ParamType}}) *{{$.Builder}}{{$.TypeArgs}} {
	{{.Assign}}
	return b
}
{{end}}{{end}}
// Build returns the {{.Type}} assembled so far.
// It never fails: fields that were never set keep their zero value.
func (b *{{.Builder}}{{.TypeArgs}}) Build() ({{.Type}}{{.TypeArgs}}, error) {
	return {{.Type}}{{.TypeArgs}}{
{{- range .Fields}}
		{{.Name}}: {{.Value}},
{{- end}}
	}, nil
}
`))

// Generate renders plan as a formatted Go source file.
func Generate(plan *BuilderPlan, opts Options) ([]byte, error) {
	fset := opts.Fset
	if fset == nil {
		fset = token.NewFileSet()
	}

	suffix := opts.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}

	view := fileView{
		Package: opts.Package,
		Type:    plan.Schema.Name,
		Builder: plan.Schema.Name + suffix,
	}

	for _, spec := range opts.Imports {
		if spec.Name != nil && spec.Name.Name == "_" {
			continue
		}
		if spec.Name != nil {
			view.Imports = append(view.Imports, spec.Name.Name+" "+spec.Path.Value)
		} else {
			view.Imports = append(view.Imports, spec.Path.Value)
		}
	}

	decl, args, err := typeParams(fset, plan.Schema.TypeParams)
	if err != nil {
		return nil, err
	}
	view.TypeParamsDecl = decl
	view.TypeArgs = args

	for _, fp := range plan.Fields {
		fv, err := newFieldView(fset, fp)
		if err != nil {
			return nil, err
		}
		view.Fields = append(view.Fields, fv)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render %s: %w", view.Builder, err)
	}

	filename := opts.Filename
	if filename == "" {
		filename = strings.ToLower(plan.Schema.Name) + "_builder.go"
	}

	out, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w\n%s", view.Builder, err, buf.Bytes())
	}

	return out, nil
}

func newFieldView(fset *token.FileSet, fp FieldPlan) (fieldView, error) {
	typ, err := render(fset, fp.Field.Type)
	if err != nil {
		return fieldView{}, err
	}

	fv := fieldView{
		Name:   fp.Field.Name.Name,
		Member: fp.Member,
		Type:   typ,
		Value:  "b." + fp.Member,
	}

	if fp.Setter == "" {
		return fv, nil
	}

	param, err := render(fset, fp.Param)
	if err != nil {
		return fieldView{}, err
	}

	fv.Setter = fp.Setter
	fv.ParamType = param
	fv.Param = paramName(fp.Setter)

	switch fp.Policy {
	case Direct:
		fv.Assign = fmt.Sprintf("b.%s = %s", fp.Member, fv.Param)
		fv.Doc = "sets " + fp.Field.Name.Name + "."
	case DirectIntoOptional:
		fv.Assign = fmt.Sprintf("b.%s = &%s", fp.Member, fv.Param)
		fv.Doc = "sets " + fp.Field.Name.Name + " to point at a copy of " + fv.Param + "."
	case AppendToSequence:
		fv.Assign = fmt.Sprintf("b.%s = append(b.%s, %s)", fp.Member, fp.Member, fv.Param)
		fv.Value = "slices.Clone(b." + fp.Member + ")"
		fv.Doc = "appends one element to " + fp.Field.Name.Name + "."
	}

	return fv, nil
}

// paramName derives a setter parameter that shadows neither the receiver
// nor a keyword.
func paramName(setter string) string {
	name := unexported(setter)
	if name == "b" || token.IsKeyword(name) {
		return "v"
	}
	return name
}

// typeParams renders "[K comparable, V any]" and "[K, V]".
func typeParams(fset *token.FileSet, params *ast.FieldList) (string, string, error) {
	if params == nil || len(params.List) == 0 {
		return "", "", nil
	}

	var decls, names []string

	for _, p := range params.List {
		constraint, err := render(fset, p.Type)
		if err != nil {
			return "", "", err
		}

		var group []string
		for _, n := range p.Names {
			group = append(group, n.Name)
		}

		decls = append(decls, strings.Join(group, ", ")+" "+constraint)
		names = append(names, group...)
	}

	return "[" + strings.Join(decls, ", ") + "]", "[" + strings.Join(names, ", ") + "]", nil
}

func render(fset *token.FileSet, expr ast.Expr) (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return "", fmt.Errorf("print %T: %w", expr, err)
	}

	return buf.String(), nil
}
