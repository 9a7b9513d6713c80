// Package directive provides directive parsing for buildsort.
//
// # Overview
//
//	directive/
//	├── builder/   # builder:"each=..." struct tags
//	└── marker/    # //buildsort:sorted comments
//
// # Builder Directive
//
// Field level options for generated builders live in a struct tag:
//
//	type Command struct {
//	    Args []string `builder:"each=arg"`
//	}
//
// Anything other than each=<identifier> is reported as
//
//	expected builder(each = "...")
//
// See [builder] package for details.
//
// # Sorted Marker
//
// Marks the next const block or switch statement, either on the line
// before it or on the same line:
//
//	//buildsort:sorted
//	switch c {
//	case Blue:
//	case Red:
//	}
//
// A marker attached to anything else is reported by the analyzer.
//
// See [marker] package for details.
package directive
