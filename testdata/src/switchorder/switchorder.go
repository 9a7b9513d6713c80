// Package switchorder contains test fixtures for the switch case order checker.
package switchorder

import (
	"io/fs"
	"os"
)

type Num int

const (
	One Num = iota
	Two
	Zero
)

type (
	A struct{}
	B struct{}
	X struct{}
	Y struct{}
)

// ===== SHOULD NOT REPORT =====

// [GOOD]: Sorted cases
func sortedSwitch(n Num) string {
	//buildsort:sorted
	switch n {
	case One:
		return "one"
	case Two:
		return "two"
	case Zero:
		return "zero"
	}
	return ""
}

// [GOOD]: Unmarked switch
func unmarked(n Num) {
	switch n {
	case Two:
	case One:
	}
}

// [GOOD]: Qualified sentinel values
func sentinel(err error) string {
	//buildsort:sorted
	switch err {
	case fs.ErrExist:
		return "exist"
	case fs.ErrNotExist:
		return "not exist"
	case os.ErrDeadlineExceeded:
		return "deadline"
	}
	return ""
}

// [GOOD]: Literals and default are not part of the ordered set
func literals(n int) string {
	//buildsort:sorted
	switch Num(n) {
	case 10:
		return "ten"
	case One:
		return "one"
	default:
		return "many"
	case Two:
		return "two"
	}
}

// ===== SHOULD REPORT =====

// [BAD]: Swapped cases
func unsortedSwitch(n Num) string {
	//buildsort:sorted
	switch n {
	case Two:
		return "two"
	case One: // want "One should sort before Two"
		return "one"
	}
	return ""
}

// [BAD]: Type switch over pointer types
func typeSwitch(err error) string {
	//buildsort:sorted
	switch err.(type) {
	case *os.SyscallError:
		return "syscall"
	case *fs.PathError: // want `fs.PathError should sort before os.SyscallError`
		return "path"
	case nil:
		return "nil"
	default:
		return "other"
	}
}

// [BAD]: Nested marked switch inside a sorted one
func nested(a, b any) {
	//buildsort:sorted
	switch a.(type) {
	case A:
		//buildsort:sorted
		switch b.(type) {
		case Y:
		case X: // want "X should sort before Y"
		}
	case B:
	}
}

// [BAD]: Only the first violation of a function is reported
func firstOnly(a, b Num) {
	//buildsort:sorted
	switch a {
	case Two:
	case One: // want "One should sort before Two"
	}
	//buildsort:sorted
	switch b {
	case Zero:
	case One:
	}
}

// [BAD]: Marker on the switch line inside a closure
func closure() func(Num) {
	return func(n Num) {
		switch n { //buildsort:sorted
		case Zero:
		case One: // want "One should sort before Zero"
		}
	}
}

// [BAD]: Package-level function literal
var handler = func(n Num) string {
	//buildsort:sorted
	switch n {
	case Two:
		return "two"
	case One: // want "One should sort before Two"
		return "one"
	}
	return ""
}

// [BAD]: Literal nested in a package-level literal is reported once
var wrapped = func(n Num) func() {
	//buildsort:sorted
	switch n {
	case One:
	case Zero:
	}
	return func() {
		//buildsort:sorted
		switch n {
		case Zero:
		case One: // want "One should sort before Zero"
		}
	}
}
