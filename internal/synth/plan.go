// Package synth builds the companion builder type of a struct declaration.
//
// Synthesis runs in three steps: the struct is read into a
// [syntax.TypeSchema], every field is assigned exactly one [Policy] in a
// [BuilderPlan], and the plan is rendered into Go source by [Generate].
package synth

import (
	"go/ast"
	"go/token"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/mpyw/buildsort/internal/diag"
	"github.com/mpyw/buildsort/internal/directive/builder"
	"github.com/mpyw/buildsort/internal/syntax"
)

// Policy is how a builder setter stores its argument.
type Policy int

const (
	// Direct takes the declared type and overwrites the member.
	Direct Policy = iota
	// DirectIntoOptional takes the pointee type and stores its address.
	DirectIntoOptional
	// AppendToSequence takes one element and appends it to the member.
	AppendToSequence
)

func (p Policy) String() string {
	switch p {
	case Direct:
		return "Direct"
	case DirectIntoOptional:
		return "DirectIntoOptional"
	case AppendToSequence:
		return "AppendToSequence"
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

// FieldPlan is the resolved policy of one field.
type FieldPlan struct {
	Field  syntax.Field
	Policy Policy

	// Member is the builder struct member holding the field value.
	Member string
	// Setter is the setter method name. Empty when the field directive
	// was rejected and no setter is generated.
	Setter string
	// Param is the setter parameter type.
	Param ast.Expr
}

// BuilderPlan is the per-field policy of one struct.
type BuilderPlan struct {
	Schema *syntax.TypeSchema
	Fields []FieldPlan
}

// NewPlan resolves the policy of every field of schema.
// Directive errors and setter name clashes are returned as diagnostics; the
// affected field keeps its member but gets no setter. Blank fields are
// skipped.
func NewPlan(schema *syntax.TypeSchema, tagKey string) (*BuilderPlan, []diag.Diagnostic) {
	if tagKey == "" {
		tagKey = builder.DefaultKey
	}

	plan := &BuilderPlan{Schema: schema}

	// Members and methods share the builder's selector namespace.
	names := map[string]bool{buildMethod: true}

	var diags []diag.Diagnostic

	for _, f := range schema.Fields {
		if f.Name.Name == "_" {
			continue
		}

		fp, d := resolve(f, tagKey)
		fp.Member = uniqueMember(names, f.Name.Name)

		if d == nil && names[fp.Setter] {
			dd := diag.Errorf(f.Name, "setter %s of field %s collides with another builder method or member", fp.Setter, f.Name.Name)
			d = &dd
			fp.Setter, fp.Param = "", nil
		}

		if d != nil {
			diags = append(diags, *d)
		} else {
			names[fp.Setter] = true
		}

		plan.Fields = append(plan.Fields, fp)
	}

	return plan, diags
}

// buildMethod is the finalizer every builder declares.
const buildMethod = "Build"

// resolve picks the policy of f. A rejected directive yields a Direct plan
// without setter.
func resolve(f syntax.Field, tagKey string) (FieldPlan, *diag.Diagnostic) {
	if inner, ok := syntax.MatchWrapper(f.Type, syntax.OptionalValue); ok {
		return FieldPlan{Field: f, Policy: DirectIntoOptional, Setter: exported(f.Name.Name), Param: inner}, nil
	}

	directive, d := builder.Parse(f.Tag, tagKey)
	if d != nil {
		return FieldPlan{Field: f, Policy: Direct}, d
	}

	if directive != nil && directive.Kind == builder.RepeatedSetter {
		if inner, ok := syntax.MatchWrapper(f.Type, syntax.Sequence); ok {
			return FieldPlan{Field: f, Policy: AppendToSequence, Setter: exported(directive.Setter), Param: inner}, nil
		}
	}

	return FieldPlan{Field: f, Policy: Direct, Setter: exported(f.Name.Name), Param: f.Type}, nil
}

// exported upper-cases the first rune so setters never collide with the
// unexported members.
func exported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

func unexported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

func uniqueMember(used map[string]bool, field string) string {
	base := unexported(field)
	if token.IsKeyword(base) {
		base += "_"
	}

	name := base
	for i := 2; used[name]; i++ {
		name = base + strconv.Itoa(i)
	}
	used[name] = true

	return name
}
