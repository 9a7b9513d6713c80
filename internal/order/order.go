// Package order implements the pairwise ordering check shared by the
// declaration and switch checkers.
package order

import (
	"go/token"

	"github.com/mpyw/buildsort/internal/diag"
)

// Item is a named element of an ordered list, such as an enumeration case
// or a switch arm.
type Item struct {
	Name string
	Pos  token.Pos
	End  token.Pos
}

// Violation identifies the pair reported by FirstViolation.
// Later is the item that should have been placed before Earlier.
type Violation struct {
	Earlier Item
	Later   Item
}

// FirstViolation scans every pair (i, j) with i < j, i ascending and j
// ascending for each i, and returns the first pair with items[i] >= items[j].
// Names compare byte-wise, so duplicates are violations too.
//
// The scan reports the first i that has any later violator, which is not
// necessarily the textually first out-of-order pair.
func FirstViolation(items []Item) (Violation, bool) {
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if items[i].Name >= items[j].Name {
				return Violation{Earlier: items[i], Later: items[j]}, true
			}
		}
	}

	return Violation{}, false
}

// Check runs FirstViolation and converts the result into a diagnostic
// anchored at the later item.
func Check(items []Item) *diag.Diagnostic {
	v, ok := FirstViolation(items)
	if !ok {
		return nil
	}

	return &diag.Diagnostic{
		Pos:      v.Later.Pos,
		End:      v.Later.End,
		Message:  v.Later.Name + " should sort before " + v.Earlier.Name,
		Severity: diag.SevError,
	}
}
