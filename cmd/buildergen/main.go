// Command buildergen generates builder types for Go structs.
//
// Typical use is a go:generate directive next to the struct:
//
//	//go:generate go run github.com/mpyw/buildsort/cmd/buildergen -t Command
//	type Command struct {
//		Executable string
//		Args       []string `builder:"each=arg"`
//		CurrentDir *string
//	}
//
// which writes command_builder.go with CommandBuilder, NewCommandBuilder,
// one setter per field and Build.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errDiagnostics signals that diagnostics were already printed.
var errDiagnostics = errors.New("generation reported diagnostics")

var rootCmd = &cobra.Command{
	Use:   "buildergen [flags] [package]",
	Short: "Generate builder types for Go structs",
	Long: `buildergen reads struct declarations from a Go package and writes a
companion builder type for each of them. Field directives are read from the
"builder" struct tag, e.g. builder:"each=arg".`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringSliceP("type", "t", nil, "struct type names to generate builders for (repeatable)")
	flags.StringP("output", "o", "", "output file name (single type only)")
	flags.String("tag", "", "struct tag key holding builder directives")
	flags.String("suffix", "", "builder type name suffix")
	flags.String("config", "", "path to "+configName+" (default: search upward from the package)")
	flags.String("color", "auto", "colorize diagnostics (auto|on|off)")
	flags.String("format", "text", "diagnostic output format (text|json)")

	_ = rootCmd.MarkFlagRequired("type")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "buildergen:", err)
		}
		os.Exit(1)
	}
}
