package switchorder

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"strings"
	"testing"

	"github.com/mpyw/buildsort/internal/directive/marker"
)

func checkSource(t *testing.T, src string) (*token.FileSet, Result) {
	t.Helper()

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "p.go", src, parser.ParseComments)
	if err != nil {
		t.Fatal(err)
	}

	var fn *ast.FuncDecl
	for _, decl := range file.Decls {
		if f, ok := decl.(*ast.FuncDecl); ok {
			fn = f
		}
	}

	return fset, New(fset).CheckFunc(fn, marker.Within(file.Comments, fn))
}

func printed(t *testing.T, fset *token.FileSet, res Result) string {
	t.Helper()

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, res.Func); err != nil {
		t.Fatal(err)
	}

	return buf.String()
}

func TestSortedSwitch(t *testing.T) {
	fset, res := checkSource(t, `package p

type Num int

const (
	One Num = iota
	Two
	Zero
)

func f(n Num) string {
	//buildsort:sorted
	switch n {
	case One:
		return "1"
	case Two:
		return "2"
	case Zero:
		return "0"
	}
	return ""
}
`)

	if res.Diagnostic != nil {
		t.Errorf("unexpected diagnostic %q", res.Diagnostic.Message)
	}
	if res.Checked != 1 {
		t.Errorf("Checked = %d, want 1", res.Checked)
	}

	out := printed(t, fset, res)
	if strings.Contains(out, marker.Directive) {
		t.Errorf("marker survived:\n%s", out)
	}
	if !strings.Contains(out, "case Zero:") {
		t.Errorf("body not preserved:\n%s", out)
	}
}

func TestNestedViolation(t *testing.T) {
	fset, res := checkSource(t, `package p

func f(a, b any) {
	//buildsort:sorted
	switch a.(type) {
	case A:
		//buildsort:sorted
		switch b.(type) {
		case Y:
		case X:
		}
	case B:
	}
}
`)

	if res.Diagnostic == nil {
		t.Fatal("no diagnostic")
	}
	if res.Diagnostic.Message != "X should sort before Y" {
		t.Errorf("Message = %q", res.Diagnostic.Message)
	}
	if line := fset.Position(res.Diagnostic.Pos).Line; line != 10 {
		t.Errorf("line = %d, want 10", line)
	}

	out := printed(t, fset, res)
	if strings.Contains(out, marker.Directive) {
		t.Errorf("marker survived:\n%s", out)
	}
}

func TestStopsAtFirstViolation(t *testing.T) {
	_, res := checkSource(t, `package p

func f(a, b int) {
	//buildsort:sorted
	switch a {
	case B:
	case A:
	}
	//buildsort:sorted
	switch b {
	case D:
	case C:
	}
	// keep
}
`)

	if res.Diagnostic == nil || res.Diagnostic.Message != "A should sort before B" {
		t.Fatalf("Diagnostic = %+v, want A should sort before B", res.Diagnostic)
	}
	if res.Checked != 1 {
		t.Errorf("Checked = %d, want 1 (walk must stop)", res.Checked)
	}

	var kept []string
	for _, cg := range res.Func.Comments {
		for _, c := range cg.List {
			kept = append(kept, c.Text)
		}
	}
	if len(kept) != 1 || kept[0] != "// keep" {
		t.Errorf("comments = %v, want only the regular comment", kept)
	}
}

func TestUnmarkedSwitchIgnored(t *testing.T) {
	_, res := checkSource(t, `package p

func f(a int) {
	switch a {
	case B:
	case A:
	}
}
`)

	if res.Diagnostic != nil {
		t.Errorf("unexpected diagnostic %q", res.Diagnostic.Message)
	}
	if res.Checked != 0 {
		t.Errorf("Checked = %d, want 0", res.Checked)
	}
}

func TestSwitchInsideFuncLit(t *testing.T) {
	_, res := checkSource(t, `package p

func f() {
	go func(a int) {
		switch a { //buildsort:sorted
		case B:
		case A:
		}
	}(0)
}
`)

	if res.Diagnostic == nil || res.Diagnostic.Message != "A should sort before B" {
		t.Fatalf("Diagnostic = %+v", res.Diagnostic)
	}
}

func TestCheckLit(t *testing.T) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "p.go", `package p

var handler = func(n int) {
	//buildsort:sorted
	switch n {
	case Two:
	case One:
	}
}
`, parser.ParseComments)
	if err != nil {
		t.Fatal(err)
	}

	lit := file.Decls[0].(*ast.GenDecl).Specs[0].(*ast.ValueSpec).Values[0].(*ast.FuncLit)

	res := New(fset).CheckLit(lit, marker.Within(file.Comments, lit))

	if res.Diagnostic == nil || res.Diagnostic.Message != "One should sort before Two" {
		t.Fatalf("Diagnostic = %+v, want One should sort before Two", res.Diagnostic)
	}
	if line := fset.Position(res.Diagnostic.Pos).Line; line != 7 {
		t.Errorf("line = %d, want 7", line)
	}
	if res.Checked != 1 {
		t.Errorf("Checked = %d, want 1", res.Checked)
	}

	out := printed(t, fset, res)
	if strings.Contains(out, marker.Directive) {
		t.Errorf("marker survived:\n%s", out)
	}
	if !strings.HasPrefix(out, "func(n int)") {
		t.Errorf("literal not returned:\n%s", out)
	}
}

func TestArms(t *testing.T) {
	file, err := parser.ParseFile(token.NewFileSet(), "p.go", `package p

func f(err error) {
	switch err.(type) {
	case *fs.PathError, *os.LinkError:
	case nil:
	case Box[int]:
	default:
	}
	switch x {
	case 1:
	case Celsius(0):
	case "text", Named:
	case fs.ErrNotExist:
	}
}
`, 0)
	if err != nil {
		t.Fatal(err)
	}

	body := file.Decls[0].(*ast.FuncDecl).Body.List

	var got []string
	for _, stmt := range body {
		var block *ast.BlockStmt
		switch s := stmt.(type) {
		case *ast.TypeSwitchStmt:
			block = s.Body
		case *ast.SwitchStmt:
			block = s.Body
		}
		for _, it := range Arms(block) {
			got = append(got, it.Name)
		}
	}

	want := []string{"fs.PathError", "Box", "Celsius", "fs.ErrNotExist"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Arms() = %v, want %v", got, want)
	}
}
