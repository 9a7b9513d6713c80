package syntax

import (
	"errors"
	"fmt"
	"go/ast"
)

var (
	// ErrNotRecord is returned when a type declaration is not a struct
	// whose fields are all named.
	ErrNotRecord = errors.New("not a struct with named fields")

	// ErrTypeNotFound is returned when a type declaration cannot be located.
	ErrTypeNotFound = errors.New("type declaration not found")
)

// TypeSchema is the field metadata of a struct type declaration.
type TypeSchema struct {
	Name       string
	TypeParams *ast.FieldList // nil for non-generic types
	Fields     []Field
}

// Field is a single named struct field.
// Fields declared together ("A, B int") share the same Type and Tag.
type Field struct {
	Name *ast.Ident
	Type ast.Expr
	Tag  *ast.BasicLit // nil when the field has no tag
}

// ExtractSchema reads a struct type declaration.
// Any other shape, including embedded fields, yields ErrNotRecord.
func ExtractSchema(spec *ast.TypeSpec) (*TypeSchema, error) {
	if spec.Assign.IsValid() {
		return nil, fmt.Errorf("%s: alias declaration: %w", spec.Name.Name, ErrNotRecord)
	}

	rec, ok := Classify(spec.Type).(RecordShape)
	if !ok {
		return nil, fmt.Errorf("%s: %w", spec.Name.Name, ErrNotRecord)
	}

	schema := &TypeSchema{
		Name:       spec.Name.Name,
		TypeParams: spec.TypeParams,
	}

	for _, f := range rec.Struct.Fields.List {
		if len(f.Names) == 0 {
			return nil, fmt.Errorf("%s: embedded field %s: %w", spec.Name.Name, ExprString(f.Type), ErrNotRecord)
		}

		for _, name := range f.Names {
			schema.Fields = append(schema.Fields, Field{
				Name: name,
				Type: f.Type,
				Tag:  f.Tag,
			})
		}
	}

	return schema, nil
}

// FindTypeSpec locates the declaration of the named type in files.
func FindTypeSpec(files []*ast.File, name string) (*ast.TypeSpec, *ast.File, error) {
	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if ok && ts.Name.Name == name {
					return ts, file, nil
				}
			}
		}
	}

	return nil, nil, fmt.Errorf("%s: %w", name, ErrTypeNotFound)
}
