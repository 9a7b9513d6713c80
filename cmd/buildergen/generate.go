package main

import (
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/mpyw/buildsort/internal/diag"
	"github.com/mpyw/buildsort/internal/syntax"
	"github.com/mpyw/buildsort/internal/synth"
)

type generated struct {
	path   string
	result *synth.Result
}

func runGenerate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	typeNames, _ := flags.GetStringSlice("type")
	output, _ := flags.GetString("output")
	configPath, _ := flags.GetString("config")
	colorMode, _ := flags.GetString("color")
	format, _ := flags.GetString("format")

	if err := setColor(colorMode); err != nil {
		return err
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid --format %q (want text or json)", format)
	}

	if output != "" && len(typeNames) > 1 {
		return fmt.Errorf("--output requires a single --type, got %d", len(typeNames))
	}

	pattern := "."
	if len(args) == 1 {
		pattern = args[0]
	}

	pkg, err := loadPackage(pattern)
	if err != nil {
		return err
	}

	dir := filepath.Dir(pkg.GoFiles[0])

	cfg, err := loadConfig(configPath, dir)
	if err != nil {
		return err
	}
	if flags.Changed("tag") {
		cfg.Tag, _ = flags.GetString("tag")
	}
	if flags.Changed("suffix") {
		cfg.Suffix, _ = flags.GetString("suffix")
	}

	outputs := make([]generated, len(typeNames))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, name := range typeNames {
		i, name := i, name
		path := filepath.Join(dir, cfg.outputName(name))
		if output != "" {
			path = output
		}

		g.Go(func() error {
			_, file, err := syntax.FindTypeSpec(pkg.Syntax, name)
			if err != nil {
				return err
			}

			res, err := synth.Run(pkg.Fset, file, name, synth.Options{
				Filename: path,
				Suffix:   cfg.Suffix,
				TagKey:   cfg.Tag,
			})
			if err != nil {
				return err
			}

			outputs[i] = generated{path: path, result: res}
			return nil
		})
	}

	// Fatal shapes abort before anything is written.
	if err := g.Wait(); err != nil {
		return err
	}

	var reported []diag.Diagnostic

	for _, out := range outputs {
		if err := os.WriteFile(out.path, out.result.Source, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out.path, err)
		}
		reported = append(reported, out.result.Diagnostics...)
	}

	if len(reported) == 0 {
		return nil
	}

	if format == "json" {
		if err := writeJSON(cmd.OutOrStdout(), pkg.Fset, reported); err != nil {
			return err
		}
	} else {
		for _, d := range reported {
			printDiagnostic(cmd.ErrOrStderr(), d.Format(pkg.Fset))
		}
	}

	return errDiagnostics
}

func loadPackage(pattern string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", pattern, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("load %s: package has errors", pattern)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("load %s: expected one package, got %d", pattern, len(pkgs))
	}
	if len(pkgs[0].GoFiles) == 0 {
		return nil, fmt.Errorf("load %s: no Go files", pattern)
	}

	return pkgs[0], nil
}

func setColor(mode string) error {
	switch mode {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color %q (want auto, on or off)", mode)
	}
	return nil
}

var errorColor = color.New(color.FgRed, color.Bold)

func printDiagnostic(w io.Writer, line string) {
	_, _ = errorColor.Fprintln(w, line)
}

// jsonDiagnostic is the --format=json representation of a diagnostic.
type jsonDiagnostic struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

func writeJSON(w io.Writer, fset *token.FileSet, diags []diag.Diagnostic) error {
	out := make([]jsonDiagnostic, 0, len(diags))
	for _, d := range diags {
		pos := fset.Position(d.Pos)
		out = append(out, jsonDiagnostic{
			File:     pos.Filename,
			Line:     pos.Line,
			Column:   pos.Column,
			Severity: d.Severity.String(),
			Message:  d.Message,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode diagnostics: %w", err)
	}

	return nil
}
