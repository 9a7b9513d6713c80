// Package directive contains test fixtures for the builder directive checker.
package directive

// ===== SHOULD NOT REPORT =====

// [GOOD]: Well-formed directives
type Command struct {
	Executable string
	Args       []string `builder:"each=arg"`
	Env        []string `json:"env" builder:"each = env"`
	CurrentDir *string
	Other      string `json:"other"`
}

// ===== SHOULD REPORT =====

// [BAD]: Unknown key, missing value, invalid setter name
type Broken struct {
	Bad     []string `builder:"foo=x"`  // want `expected builder\(each = "\.\.\."\)`
	Missing []string `builder:"each"`   // want `expected builder\(each = "\.\.\."\)`
	Number  []string `builder:"each=1"` // want `expected builder\(each = "\.\.\."\)`
}

// [BAD]: Anonymous struct fields are checked too
var anonymous = struct {
	Items []int `builder:"item=x"` // want `expected builder\(each = "\.\.\."\)`
}{}
