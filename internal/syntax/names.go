package syntax

import (
	"go/ast"
	"go/types"
)

// ExprString renders expr in a compact single-line form.
func ExprString(expr ast.Expr) string {
	return types.ExprString(expr)
}

// HeadName returns the name a pattern expression is built on:
//
//	Red            -> "Red"
//	fs.ErrNotExist -> "fs.ErrNotExist"
//	*os.PathError  -> "os.PathError"
//	Box[int]       -> "Box"
//	Celsius(0)     -> "Celsius"
//
// Literals, operators, nil and the blank identifier have no head name.
func HeadName(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.Ident:
		if e.Name == "nil" || e.Name == "_" {
			return "", false
		}
		return e.Name, true
	case *ast.SelectorExpr:
		switch e.X.(type) {
		case *ast.Ident, *ast.SelectorExpr:
		default:
			return "", false
		}
		x, ok := HeadName(e.X)
		if !ok {
			return "", false
		}
		return x + "." + e.Sel.Name, true
	case *ast.StarExpr:
		return HeadName(e.X)
	case *ast.ParenExpr:
		return HeadName(e.X)
	case *ast.IndexExpr:
		return HeadName(e.X)
	case *ast.IndexListExpr:
		return HeadName(e.X)
	case *ast.CallExpr:
		return HeadName(e.Fun)
	}

	return "", false
}
