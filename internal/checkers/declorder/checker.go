// Package declorder checks that marked const blocks list their names in
// lexicographic order.
package declorder

import (
	"go/ast"

	"github.com/mpyw/buildsort/internal/diag"
	"github.com/mpyw/buildsort/internal/directive/marker"
	"github.com/mpyw/buildsort/internal/order"
	"github.com/mpyw/buildsort/internal/syntax"
)

// MisplacedMessage is reported for a marker that is not attached to a const
// block or switch statement.
const MisplacedMessage = marker.Directive + " directive must precede a const block or switch statement"

// Checker checks marked declarations.
type Checker struct{}

// New creates a new declaration order checker.
func New() *Checker {
	return &Checker{}
}

// CheckDecl validates a declaration carrying the marker.
// The declaration is returned unchanged; validation never reorders.
func (c *Checker) CheckDecl(decl ast.Decl) (ast.Decl, *diag.Diagnostic) {
	enum, ok := syntax.ClassifyDecl(decl).(syntax.EnumShape)
	if !ok {
		d := misplaced(decl)
		return decl, &d
	}

	return decl, order.Check(Cases(enum.Decl))
}

// Cases returns the names of a const declaration in declaration order.
// Blank names are skipped.
func Cases(decl *ast.GenDecl) []order.Item {
	var items []order.Item

	for _, spec := range decl.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		for _, name := range vs.Names {
			if name.Name == "_" {
				continue
			}
			items = append(items, order.Item{Name: name.Name, Pos: name.Pos(), End: name.End()})
		}
	}

	return items
}

func misplaced(decl ast.Decl) diag.Diagnostic {
	if gen, ok := decl.(*ast.GenDecl); ok {
		return diag.Diagnostic{
			Pos:      gen.TokPos,
			End:      gen.TokPos + 1,
			Message:  MisplacedMessage,
			Severity: diag.SevError,
		}
	}

	return diag.Errorf(decl, "%s", MisplacedMessage)
}
