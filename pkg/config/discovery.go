package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// configFileNames are the config file names searched for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".goturtle.yaml",
	".goturtle.yml",
	"goturtle.yaml",
	"goturtle.yml",
}

// vcsRootMarkers are directories that indicate a VCS root, where the
// upward search stops.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// Discover searches upward from workDir for a project config file. It
// stops at a VCS root or the filesystem root. A missing config is not
// an error; the returned path is empty.
func Discover(workDir string) (string, error) {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve work dir: %w", err)
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		if isVCSRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// Load reads and validates a configuration file. An empty path triggers
// discovery from the current directory; if nothing is found the default
// configuration is returned.
func Load(path string) (*Config, error) {
	if path == "" {
		discovered, err := Discover(".")
		if err != nil {
			return nil, err
		}
		if discovered == "" {
			return Default(), nil
		}
		path = discovered
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
