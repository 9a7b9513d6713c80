// Package filefilter tests file filtering functionality.
// Generated files are always skipped (see generated.go).
package filefilter

//buildsort:sorted
const (
	Second = 2
	First  = 1 // want "First should sort before Second"
)
