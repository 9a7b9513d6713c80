// Package declorder contains test fixtures for the const block order checker.
package declorder

type Color int

// ===== SHOULD NOT REPORT =====

// [GOOD]: Sorted enumeration
//
//buildsort:sorted
const (
	Blue Color = iota
	Green
	Red
)

// [GOOD]: Unmarked blocks are not checked
const (
	Zulu = iota
	Alpha
)

// [GOOD]: Blank names are skipped
//
//buildsort:sorted
const (
	_ = iota
	KB
	MB
)

// ===== SHOULD REPORT =====

// [BAD]: Second name sorts before the first
//
//buildsort:sorted
const (
	Monday = iota
	Friday // want "Friday should sort before Monday"
	Sunday
)

// [BAD]: Reported pair follows the nested scan, not the leftmost pair
//
// Delta/Charlie is the leftmost out-of-order pair, but Bravo is the first
// name with any later violator.
//
//buildsort:sorted
const (
	Bravo = iota
	Delta
	Charlie
	Able // want "Able should sort before Bravo"
)

// [BAD]: Case-sensitive comparison
//
//buildsort:sorted
const (
	lower = 1
	Upper = 2 // want "Upper should sort before lower"
)

// [BAD]: Names declared on one line
//
//buildsort:sorted
const (
	Left, Right = 1, 2
	Down, Up    = 3, 4 // want "Down should sort before Left"
)

// [BAD]: Local const block
func local() int {
	//buildsort:sorted
	const (
		second = 2
		first  = 1 // want "first should sort before second"
	)
	return first + second
}
