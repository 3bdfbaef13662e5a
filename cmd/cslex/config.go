package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fileConfig mirrors cslex.toml. Every field is optional; flags always win
// over config values.
type fileConfig struct {
	Output   outputConfig   `toml:"output"`
	Tokenize tokenizeConfig `toml:"tokenize"`
	Cache    cacheConfig    `toml:"cache"`
}

type outputConfig struct {
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

type tokenizeConfig struct {
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Jobs           int      `toml:"jobs"`
	Extensions     []string `toml:"extensions"`
}

type cacheConfig struct {
	Dir string `toml:"dir"`
}

// findConfigFile walks up from startDir to locate cslex.toml.
func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "cslex.toml")
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

// loadConfig returns the nearest cslex.toml, or nil when there is none.
func loadConfig(startDir string) (*fileConfig, error) {
	path, ok, err := findConfigFile(startDir)
	if err != nil || !ok {
		return nil, err
	}
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &cfg, nil
}

// resolveMaxDiagnostics applies flag > config > flag default.
func resolveMaxDiagnostics(cmd *cobra.Command, cfg *fileConfig) int {
	flags := cmd.Root().PersistentFlags()
	n, _ := flags.GetInt("max-diagnostics")
	if !flags.Changed("max-diagnostics") && cfg != nil && cfg.Tokenize.MaxDiagnostics > 0 {
		return cfg.Tokenize.MaxDiagnostics
	}
	return n
}
