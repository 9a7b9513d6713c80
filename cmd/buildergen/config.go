package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mpyw/buildsort/internal/directive/builder"
	"github.com/mpyw/buildsort/internal/synth"
)

const configName = "buildergen.toml"

// config holds generator settings from buildergen.toml.
// Command-line flags take precedence.
type config struct {
	Tag    string `toml:"tag"`
	Suffix string `toml:"suffix"`
	Output string `toml:"output"`
}

func defaultConfig() config {
	return config{
		Tag:    builder.DefaultKey,
		Suffix: synth.DefaultSuffix,
		Output: "%s_builder.go",
	}
}

// findConfig walks up from startDir looking for buildergen.toml.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig reads path over the defaults. An empty path searches upward
// from dir; no file at all yields the defaults.
func loadConfig(path, dir string) (config, error) {
	cfg := defaultConfig()

	if path == "" {
		found, ok, err := findConfig(dir)
		if err != nil || !ok {
			return cfg, err
		}
		path = found
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if !strings.Contains(cfg.Output, "%s") {
		return config{}, fmt.Errorf("%s: output %q must contain %%s", path, cfg.Output)
	}

	return cfg, nil
}

// outputName returns the file name generated for typeName.
func (c config) outputName(typeName string) string {
	return fmt.Sprintf(c.Output, strings.ToLower(typeName))
}
