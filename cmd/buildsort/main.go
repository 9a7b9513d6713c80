// Command buildsort is a linter that checks the order of marked const
// blocks and switch statements.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/buildsort"
)

func main() {
	singlechecker.Main(buildsort.Analyzer)
}
