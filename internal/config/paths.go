// ABOUTME: Standard filesystem paths for autocomplete-trigger configuration
// ABOUTME: Resolves ~/.autocomplete-trigger/ globally and .autocomplete-trigger/ per project

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".autocomplete-trigger"
	projectDirName = ".autocomplete-trigger"
)

// configNames lists the accepted config file names in lookup order.
var configNames = []string{"config.json", "config.yaml", "config.yml", "config.toml"}

// GlobalDir returns the user-global config directory (~/.autocomplete-trigger/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// FindConfig returns the first config file present in dir, or "" if none.
func FindConfig(dir string) string {
	for _, name := range configNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
