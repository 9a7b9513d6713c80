// Package marker contains test fixtures for misplaced markers.
package marker

//buildsort:sorted
type T struct{} // want "buildsort:sorted directive must precede a const block or switch statement"

//buildsort:sorted
var v = 1 // want "buildsort:sorted directive must precede a const block or switch statement"

//buildsort:sorted // want "buildsort:sorted directive must precede a const block or switch statement"
func f() {
	x := 1
	//buildsort:sorted // want "buildsort:sorted directive must precede a const block or switch statement"
	x++
	_ = x + v
}

// [GOOD]: Attached markers are not reported
func g(n int) {
	//buildsort:sorted
	switch n {
	}
}
