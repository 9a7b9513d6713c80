// Package marker handles //buildsort:sorted directives.
package marker

import (
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

// Directive is the marker text without the leading "//".
const Directive = "buildsort:sorted"

// Entry tracks a marker comment and whether a node consumed it.
type Entry struct {
	pos  token.Pos
	used bool
}

// Map tracks marker entries by line number.
type Map struct {
	fset    *token.FileSet
	entries map[int]*Entry
}

// Build scans comment groups for markers.
func Build(fset *token.FileSet, groups []*ast.CommentGroup) *Map {
	m := &Map{
		fset:    fset,
		entries: make(map[int]*Entry),
	}

	for _, cg := range groups {
		for _, c := range cg.List {
			if IsMarker(c.Text) {
				line := fset.Position(c.Pos()).Line
				m.entries[line] = &Entry{pos: c.Pos()}
			}
		}
	}

	return m
}

// IsMarker checks if a comment is a marker directive.
// Trailing text after a space is allowed as a reason.
func IsMarker(text string) bool {
	if !strings.HasPrefix(text, "//") {
		return false
	}

	text = strings.TrimSpace(strings.TrimPrefix(text, "//"))

	rest, ok := strings.CutPrefix(text, Directive)
	if !ok {
		return false
	}

	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// Consume marks the marker attached to node as used and reports whether
// there was one. A marker is attached when it sits on the node's first line,
// on the line above it, or inside doc. Each marker is consumed at most once,
// so with pre-order traversal the outermost node wins.
func (m *Map) Consume(node ast.Node, doc *ast.CommentGroup) bool {
	if m == nil || len(m.entries) == 0 {
		return false
	}

	line := m.fset.Position(node.Pos()).Line
	candidates := []int{line, line - 1}

	if doc != nil {
		for _, c := range doc.List {
			candidates = append(candidates, m.fset.Position(c.Pos()).Line)
		}
	}

	for _, l := range candidates {
		entry := m.entries[l]
		if entry == nil || entry.used {
			continue
		}

		entry.used = true

		return true
	}

	return false
}

// Unused returns the positions of markers no node consumed, in source order.
func (m *Map) Unused() []token.Pos {
	var unused []token.Pos

	for _, entry := range m.entries {
		if !entry.used {
			unused = append(unused, entry.pos)
		}
	}

	slices.Sort(unused)

	return unused
}

// Within returns the comment groups that lie inside node.
func Within(groups []*ast.CommentGroup, node ast.Node) []*ast.CommentGroup {
	var out []*ast.CommentGroup

	for _, cg := range groups {
		if cg.Pos() >= node.Pos() && cg.End() <= node.End() {
			out = append(out, cg)
		}
	}

	return out
}

// Strip returns groups with every marker comment removed.
// Groups left empty are dropped. The input groups are never modified.
func Strip(groups []*ast.CommentGroup) []*ast.CommentGroup {
	out := make([]*ast.CommentGroup, 0, len(groups))

	for _, cg := range groups {
		if !slices.ContainsFunc(cg.List, isMarkerComment) {
			out = append(out, cg)
			continue
		}

		kept := slices.DeleteFunc(slices.Clone(cg.List), isMarkerComment)
		if len(kept) > 0 {
			out = append(out, &ast.CommentGroup{List: kept})
		}
	}

	return out
}

func isMarkerComment(c *ast.Comment) bool {
	return IsMarker(c.Text)
}
