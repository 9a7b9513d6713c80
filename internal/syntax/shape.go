// Package syntax classifies Go declarations and type expressions into the
// closed set of shapes the buildsort passes operate on.
//
// Classification happens once; downstream code switches on the returned
// [Shape] instead of re-matching raw syntax.
package syntax

import (
	"go/ast"
	"go/token"
)

// Shape is the classification of a declaration or type expression.
// It is one of [RecordShape], [EnumShape], [WrapperOf] or [Other].
type Shape interface {
	shape()
}

// RecordShape is a struct type.
type RecordShape struct {
	Struct *ast.StructType
}

// EnumShape is a const declaration, the Go form of an enumeration.
type EnumShape struct {
	Decl *ast.GenDecl
}

// WrapperOf is a single-argument wrapper type such as *T or []T.
type WrapperOf struct {
	Kind  WrapperKind
	Inner ast.Expr
}

// Other is anything buildsort does not model.
type Other struct {
	Node ast.Node
}

func (RecordShape) shape() {}
func (EnumShape) shape()   {}
func (WrapperOf) shape()   {}
func (Other) shape()       {}

// WrapperKind identifies a wrapper type constructor.
type WrapperKind int

const (
	// OptionalValue is a pointer type *T. A nil pointer is the absent state.
	OptionalValue WrapperKind = iota + 1
	// Sequence is a slice type []T.
	Sequence
)

func (k WrapperKind) String() string {
	switch k {
	case OptionalValue:
		return "optional"
	case Sequence:
		return "sequence"
	}
	return "unknown"
}

// Classify classifies a type expression.
// Only the head constructor is inspected: parentheses, aliases and named
// types are never looked through.
func Classify(expr ast.Expr) Shape {
	switch t := expr.(type) {
	case *ast.StructType:
		return RecordShape{Struct: t}
	case *ast.StarExpr:
		return WrapperOf{Kind: OptionalValue, Inner: t.X}
	case *ast.ArrayType:
		if t.Len == nil {
			return WrapperOf{Kind: Sequence, Inner: t.Elt}
		}
	}

	return Other{Node: expr}
}

// ClassifyDecl classifies a top-level or statement-level declaration.
// Const declarations are enumerations; type declarations are classified by
// their single spec.
func ClassifyDecl(decl ast.Decl) Shape {
	gen, ok := decl.(*ast.GenDecl)
	if !ok {
		return Other{Node: decl}
	}

	switch gen.Tok {
	case token.CONST:
		return EnumShape{Decl: gen}
	case token.TYPE:
		if len(gen.Specs) != 1 {
			return Other{Node: decl}
		}
		spec, ok := gen.Specs[0].(*ast.TypeSpec)
		if !ok || spec.Assign.IsValid() {
			return Other{Node: decl}
		}
		return Classify(spec.Type)
	}

	return Other{Node: decl}
}

// MatchWrapper reports the inner type of expr when its head constructor is
// exactly kind. A mismatch is not an error.
func MatchWrapper(expr ast.Expr, kind WrapperKind) (ast.Expr, bool) {
	w, ok := Classify(expr).(WrapperOf)
	if !ok || w.Kind != kind {
		return nil, false
	}

	return w.Inner, true
}
