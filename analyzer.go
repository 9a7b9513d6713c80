// Package buildsort provides a go/analysis based analyzer that enforces
// lexicographic ordering of marked const blocks and switch statements, and
// validates the struct tag directives read by the buildergen generator.
package buildsort

import (
	"errors"
	"flag"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/buildsort/internal/checkers/declorder"
	"github.com/mpyw/buildsort/internal/checkers/switchorder"
	"github.com/mpyw/buildsort/internal/diag"
	"github.com/mpyw/buildsort/internal/directive/builder"
	"github.com/mpyw/buildsort/internal/directive/marker"
)

// Flags for the analyzer.
var (
	tagKey string

	// Checker enable/disable flags (all enabled by default).
	enableDecl      bool
	enableSwitch    bool
	enableDirective bool
)

func init() {
	Analyzer.Flags.StringVar(&tagKey, "tag", builder.DefaultKey,
		"struct tag key holding builder directives")

	Analyzer.Flags.BoolVar(&enableDecl, "decl", true, "enable const block order checker")
	Analyzer.Flags.BoolVar(&enableSwitch, "switch", true, "enable switch case order checker")
	Analyzer.Flags.BoolVar(&enableDirective, "directive", true, "enable builder directive checker")
}

// Analyzer is the main analyzer for buildsort.
var Analyzer = &analysis.Analyzer{
	Name:     "buildsort",
	Doc:      "checks that marked const blocks and switch statements are sorted and that builder directives are well-formed",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

// Diagnostic categories.
const (
	categoryDecl      = "decl"
	categorySwitch    = "switch"
	categoryDirective = "directive"
	categoryMarker    = "marker"
)

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Build marker maps for each file (excluding skipped files)
	markerMaps := buildMarkerMaps(pass, skipFiles)

	declChecker := declorder.New()
	switchChecker := switchorder.New(pass.Fset)

	nodeFilter := []ast.Node{
		(*ast.File)(nil),
		(*ast.GenDecl)(nil),
		(*ast.FuncDecl)(nil),
		(*ast.FuncLit)(nil),
		(*ast.SwitchStmt)(nil),
		(*ast.TypeSwitchStmt)(nil),
		(*ast.StructType)(nil),
	}

	var (
		file *ast.File
		// fn is the last function declaration or top-level function
		// literal visited; nested literals are checked as part of it.
		fn ast.Node
	)

	insp.Preorder(nodeFilter, func(n ast.Node) {
		if f, ok := n.(*ast.File); ok {
			file, fn = f, nil
			return
		}

		markers, ok := markerMaps[file]
		if !ok {
			return
		}

		switch node := n.(type) {
		case *ast.GenDecl:
			if !markers.Consume(node, node.Doc) {
				return
			}
			_, d := declChecker.CheckDecl(node)
			if d != nil && (enableDecl || d.Message == declorder.MisplacedMessage) {
				report(pass, *d, declCategory(d))
			}

		case *ast.SwitchStmt, *ast.TypeSwitchStmt:
			// Attachment only; ordering is checked per function below.
			markers.Consume(node, nil)

		case *ast.FuncDecl:
			fn = node
			if !enableSwitch || node.Body == nil {
				return
			}
			res := switchChecker.CheckFunc(node, marker.Within(file.Comments, node))
			if res.Diagnostic != nil {
				report(pass, *res.Diagnostic, categorySwitch)
			}

		case *ast.FuncLit:
			if fn != nil && fn.Pos() <= node.Pos() && node.End() <= fn.End() {
				return
			}
			fn = node
			if !enableSwitch {
				return
			}
			res := switchChecker.CheckLit(node, marker.Within(file.Comments, node))
			if res.Diagnostic != nil {
				report(pass, *res.Diagnostic, categorySwitch)
			}

		case *ast.StructType:
			if enableDirective {
				checkDirectives(pass, node)
			}
		}
	})

	// Report markers attached to nothing
	reportUnusedMarkers(pass, markerMaps)

	return nil, nil
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped, including buildergen output.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		// Always skip generated files
		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// buildMarkerMaps creates marker maps for each file in the pass.
func buildMarkerMaps(pass *analysis.Pass, skipFiles map[string]bool) map[*ast.File]*marker.Map {
	markerMaps := make(map[*ast.File]*marker.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		markerMaps[file] = marker.Build(pass.Fset, file.Comments)
	}

	return markerMaps
}

// checkDirectives validates the builder directive of every tagged field.
func checkDirectives(pass *analysis.Pass, st *ast.StructType) {
	for _, field := range st.Fields.List {
		if _, d := builder.Parse(field.Tag, tagKey); d != nil {
			report(pass, *d, categoryDirective)
		}
	}
}

// reportUnusedMarkers reports markers that precede neither a const block
// nor a switch statement.
func reportUnusedMarkers(pass *analysis.Pass, markerMaps map[*ast.File]*marker.Map) {
	for _, markers := range markerMaps {
		for _, pos := range markers.Unused() {
			report(pass, diag.Diagnostic{
				Pos:      pos,
				Message:  declorder.MisplacedMessage,
				Severity: diag.SevError,
			}, categoryMarker)
		}
	}
}

func declCategory(d *diag.Diagnostic) string {
	if d.Message == declorder.MisplacedMessage {
		return categoryMarker
	}
	return categoryDecl
}

func report(pass *analysis.Pass, d diag.Diagnostic, category string) {
	pass.Report(d.Analysis(category))
}
