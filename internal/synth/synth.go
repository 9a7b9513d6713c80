package synth

import (
	"go/ast"
	"go/token"

	"github.com/mpyw/buildsort/internal/diag"
	"github.com/mpyw/buildsort/internal/syntax"
)

// Result is the output of one synthesis.
// Source is produced even when Diagnostics is not empty.
type Result struct {
	Source      []byte
	Diagnostics []diag.Diagnostic
}

// Run synthesizes the builder of the named struct declared in file.
// A missing or non-struct declaration is fatal and returns an error with no
// output.
func Run(fset *token.FileSet, file *ast.File, typeName string, opts Options) (*Result, error) {
	spec, _, err := syntax.FindTypeSpec([]*ast.File{file}, typeName)
	if err != nil {
		return nil, err
	}

	schema, err := syntax.ExtractSchema(spec)
	if err != nil {
		return nil, err
	}

	plan, diags := NewPlan(schema, opts.TagKey)

	if opts.Fset == nil {
		opts.Fset = fset
	}
	if opts.Package == "" {
		opts.Package = file.Name.Name
	}
	if opts.Imports == nil {
		opts.Imports = file.Imports
	}

	src, err := Generate(plan, opts)
	if err != nil {
		return nil, err
	}

	return &Result{Source: src, Diagnostics: diags}, nil
}
