// Package checkers groups the order checkers behind the buildsort analyzer.
//
// # Checker Overview
//
//	┌──────────────────────┬──────────────────────────────────────────────┐
//	│ declorder            │ //buildsort:sorted const blocks              │
//	│ switchorder          │ //buildsort:sorted switch statements         │
//	└──────────────────────┴──────────────────────────────────────────────┘
//
// Both report only the first violation they find, using the pairwise scan
// of the order package:
//
//	//buildsort:sorted
//	const (
//	    Red   Color = iota
//	    Green        // <- Green should sort before Red
//	    Blue
//	)
//
// switchorder qualifies a case clause by the name its first expression is
// built on, so identifiers, qualified names, pointer types, generic
// instantiations and conversions all take part:
//
//	//buildsort:sorted
//	switch err.(type) {
//	case *fs.PathError:
//	case *os.SyscallError:
//	default:
//	}
package checkers
