// Package switchorder checks that the cases of marked switch statements are
// in lexicographic order.
//
// A switch is marked by a //buildsort:sorted comment on the line above it or
// on its own first line:
//
//	//buildsort:sorted
//	switch err.(type) {
//	case *fs.PathError: // qualifying: named type
//	case *net.OpError:
//	case nil:           // excluded: not a name
//	default:            // excluded
//	}
//
// The function body is walked in pre-order. The first violation stops the
// walk; marked switches without a violation are descended into, so nested
// marked switches are checked on their own.
package switchorder

import (
	"go/ast"
	"go/printer"
	"go/token"

	"github.com/mpyw/buildsort/internal/diag"
	"github.com/mpyw/buildsort/internal/directive/marker"
	"github.com/mpyw/buildsort/internal/order"
	"github.com/mpyw/buildsort/internal/syntax"
)

// Checker checks marked switch statements of a function.
type Checker struct {
	fset *token.FileSet
}

// New creates a new switch order checker.
func New(fset *token.FileSet) *Checker {
	return &Checker{fset: fset}
}

// Result is the outcome of checking one function.
//
// The analyzer only reports Diagnostic. Func and Checked are for library
// callers that print the checked function without its markers, such as
// code generators passing marked sources through.
type Result struct {
	// Func is the function with every marker comment removed.
	// The function node itself is shared with the input and not modified.
	Func *printer.CommentedNode
	// Diagnostic is the first violation found, if any.
	Diagnostic *diag.Diagnostic
	// Checked is the number of marked switches validated before the walk
	// ended.
	Checked int
}

// CheckFunc validates the marked switches of fn. comments are the comment
// groups belonging to fn, usually marker.Within(file.Comments, fn).
func (c *Checker) CheckFunc(fn *ast.FuncDecl, comments []*ast.CommentGroup) Result {
	return c.check(fn, fn.Body, comments)
}

// CheckLit is CheckFunc for a function literal outside any function
// declaration, such as a package-level variable initializer.
func (c *Checker) CheckLit(lit *ast.FuncLit, comments []*ast.CommentGroup) Result {
	return c.check(lit, lit.Body, comments)
}

func (c *Checker) check(fn ast.Node, body *ast.BlockStmt, comments []*ast.CommentGroup) Result {
	w := &walker{markers: marker.Build(c.fset, comments)}

	if body != nil {
		ast.Inspect(body, w.visit)
	}

	return Result{
		Func:       &printer.CommentedNode{Node: fn, Comments: marker.Strip(comments)},
		Diagnostic: w.found,
		Checked:    w.checked,
	}
}

// walker carries the first diagnostic and the stop flag through the walk.
type walker struct {
	markers *marker.Map
	found   *diag.Diagnostic
	stopped bool
	checked int
}

func (w *walker) visit(n ast.Node) bool {
	if w.stopped {
		return false
	}

	switch s := n.(type) {
	case *ast.SwitchStmt:
		w.checkSwitch(s, s.Body)
	case *ast.TypeSwitchStmt:
		w.checkSwitch(s, s.Body)
	}

	return !w.stopped
}

func (w *walker) checkSwitch(stmt ast.Stmt, body *ast.BlockStmt) {
	if !w.markers.Consume(stmt, nil) {
		return
	}

	w.checked++

	if d := order.Check(Arms(body)); d != nil {
		w.found = d
		w.stopped = true
	}
}

// Arms returns the leading name of every qualifying case clause in order.
// A clause qualifies when its first expression is a name reference such as
// Red, fs.ErrNotExist, *os.PathError, Box[int] or Celsius(0). Default
// clauses, literals and nil are skipped.
func Arms(body *ast.BlockStmt) []order.Item {
	var items []order.Item

	for _, stmt := range body.List {
		cc, ok := stmt.(*ast.CaseClause)
		if !ok || len(cc.List) == 0 {
			continue
		}

		first := cc.List[0]

		name, ok := syntax.HeadName(first)
		if !ok {
			continue
		}

		items = append(items, order.Item{Name: name, Pos: first.Pos(), End: first.End()})
	}

	return items
}
