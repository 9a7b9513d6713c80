// Package builder parses the struct tag directives that select non-default
// builder setters.
package builder

import (
	"go/ast"
	"go/token"
	"reflect"
	"strconv"
	"strings"

	"github.com/mpyw/buildsort/internal/diag"
)

// DefaultKey is the struct tag key read when none is configured.
const DefaultKey = "builder"

// Message is reported for any malformed builder directive.
const Message = `expected builder(each = "...")`

// Kind identifies a directive.
type Kind int

const (
	// RepeatedSetter asks for a setter that appends one element per call.
	RepeatedSetter Kind = iota + 1
)

// Directive is a parsed field directive.
type Directive struct {
	Kind   Kind
	Setter string
}

// Parse reads the directive under key from a field tag.
// It returns nil when the field carries no directive. When the tag value
// holds several entries the last one wins.
func Parse(tag *ast.BasicLit, key string) (*Directive, *diag.Diagnostic) {
	if tag == nil {
		return nil, nil
	}

	raw, err := strconv.Unquote(tag.Value)
	if err != nil {
		return nil, nil
	}

	value, ok := reflect.StructTag(raw).Lookup(key)
	if !ok {
		return nil, nil
	}

	var directive *Directive

	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		setter, ok := parseEntry(entry)
		if !ok {
			d := diag.Errorf(tag, "%s", Message)
			return nil, &d
		}

		directive = &Directive{Kind: RepeatedSetter, Setter: setter}
	}

	return directive, nil
}

// parseEntry parses `each=name` or `each = "name"`.
func parseEntry(entry string) (string, bool) {
	k, v, ok := strings.Cut(entry, "=")
	if !ok || strings.TrimSpace(k) != "each" {
		return "", false
	}

	v = strings.TrimSpace(v)
	if unquoted, err := strconv.Unquote(v); err == nil {
		v = unquoted
	}

	if !token.IsIdentifier(v) {
		return "", false
	}

	return v, true
}
