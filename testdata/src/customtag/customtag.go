// Package customtag contains test fixtures for the -tag flag.
package customtag

type Request struct {
	Headers []string `gen:"each=header"`
	Params  []string `gen:"param=x"` // want `expected builder\(each = "\.\.\."\)`
	Ignored []string `builder:"other=x"`
}
