// Package diag defines the diagnostics produced by buildsort passes.
package diag

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevError is the only severity buildsort passes emit.
	SevError Severity = iota
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	}
	return "unknown"
}

// Diagnostic is a message anchored to a source range of the input syntax.
// Pos and End are resolved through the token.FileSet the syntax came from.
type Diagnostic struct {
	Pos      token.Pos
	End      token.Pos
	Message  string
	Severity Severity
}

// Errorf creates an error diagnostic spanning node.
func Errorf(node interface {
	Pos() token.Pos
	End() token.Pos
}, format string, args ...any) Diagnostic {
	return Diagnostic{
		Pos:      node.Pos(),
		End:      node.End(),
		Message:  fmt.Sprintf(format, args...),
		Severity: SevError,
	}
}

// Analysis converts d into the go/analysis wire format.
func (d Diagnostic) Analysis(category string) analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:      d.Pos,
		End:      d.End,
		Category: category,
		Message:  d.Message,
	}
}

// Format renders d as "file:line:col: message".
func (d Diagnostic) Format(fset *token.FileSet) string {
	return fmt.Sprintf("%s: %s", fset.Position(d.Pos), d.Message)
}
