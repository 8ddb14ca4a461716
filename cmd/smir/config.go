package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const noSmirTomlMessage = "no smir.toml found\nplease specify the packs explicitly, e.g.:\n  smir lint path/to/module.pack"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Lint    lintConfig    `toml:"lint"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type lintConfig struct {
	Packs          []string `toml:"packs"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Jobs           int      `toml:"jobs"`
}

func findSmirToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "smir.toml")
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

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findSmirToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return projectConfig{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	return cfg, nil
}

// resolveLintPacks expands the manifest's pack patterns relative to the
// manifest root.
func resolveLintPacks(manifest *projectManifest) ([]string, error) {
	if manifest == nil {
		return nil, fmt.Errorf("missing project manifest")
	}
	var packs []string
	for _, pattern := range manifest.Config.Lint.Packs {
		full := filepath.Join(manifest.Root, filepath.FromSlash(pattern))
		matches, err := filepath.Glob(full)
		if err != nil {
			return nil, fmt.Errorf("%s: bad pack pattern %q: %w", manifest.Path, pattern, err)
		}
		packs = append(packs, matches...)
	}
	if len(packs) == 0 {
		return nil, fmt.Errorf("%s: [lint].packs matched no files", manifest.Path)
	}
	return packs, nil
}
