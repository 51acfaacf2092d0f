package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds the resolved filesystem paths for a config.
type Paths struct {
	Root   string
	Config string
	// Data is empty when the dashboard serves seed data.
	Data string
	Log  string
}

// DetectProjectRoot walks up from the current working directory looking for
// a directory that contains rhnis.yaml. Returns the absolute path or an
// error if not found.
func DetectProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found in any parent directory", FileName)
		}
		dir = parent
	}
}

// NewPaths resolves cfg's relative paths against root.
func NewPaths(root string, cfg *Config) *Paths {
	if root == "" {
		root = "."
	}
	p := &Paths{
		Root:   root,
		Config: filepath.Join(root, FileName),
		Log:    resolve(root, cfg.Log.File),
	}
	if cfg.Data.Dir != "" {
		p.Data = resolve(root, cfg.Data.Dir)
	}
	return p
}

func resolve(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// EnsureDirectories creates the data and log directories if they do not
// already exist.
func EnsureDirectories(p *Paths) error {
	var dirs []string
	if p.Data != "" {
		dirs = append(dirs, p.Data)
	}
	if p.Log != "" {
		dirs = append(dirs, filepath.Dir(p.Log))
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}
	return nil
}
