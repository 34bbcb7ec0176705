// ABOUTME: Settings loading with global + project config deep merge
// ABOUTME: Format picked by extension: JSON, YAML (yaml.v3) or TOML (go-toml/v2)

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mauromedda/autocomplete-trigger/pkg/tui/trigger"
)

// ErrUnsupportedFormat is returned for config files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// TriggerSettings holds the delimiters. End is a pointer so that a file can
// set it to the empty string explicitly.
type TriggerSettings struct {
	Start string  `json:"start,omitempty" yaml:"start,omitempty" toml:"start,omitempty"`
	End   *string `json:"end,omitempty" yaml:"end,omitempty" toml:"end,omitempty"`
}

// Settings holds the merged configuration.
type Settings struct {
	Trigger     TriggerSettings `json:"trigger,omitempty" yaml:"trigger,omitempty" toml:"trigger,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty" yaml:"suggestions,omitempty" toml:"suggestions,omitempty"`
	WordFiles   []string        `json:"word_files,omitempty" yaml:"word_files,omitempty" toml:"word_files,omitempty"`
	MinLength   int             `json:"min_length,omitempty" yaml:"min_length,omitempty" toml:"min_length,omitempty"`
	MaxHeight   int             `json:"max_height,omitempty" yaml:"max_height,omitempty" toml:"max_height,omitempty"`
	LogFile     string          `json:"log_file,omitempty" yaml:"log_file,omitempty" toml:"log_file,omitempty"`
	Debug       bool            `json:"debug,omitempty" yaml:"debug,omitempty" toml:"debug,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadDir(GlobalDir())
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadDir(ProjectDir(projectRoot))
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return merge(global, project), nil
}

// LoadFile reads a single config file. Relative word file paths are resolved
// against the file's directory and ${VAR} references are expanded.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Settings
	if err := decode(path, data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	ResolveEnvVars(&s)
	base := filepath.Dir(path)
	for i, f := range s.WordFiles {
		if f != "" && !filepath.IsAbs(f) {
			s.WordFiles[i] = filepath.Join(base, f)
		}
	}
	return &s, nil
}

// loadDir loads the config file in dir; a missing file yields empty Settings.
func loadDir(dir string) (*Settings, error) {
	path := FindConfig(dir)
	if path == "" {
		return &Settings{}, nil
	}
	return LoadFile(path)
}

func decode(path string, data []byte, s *Settings) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return json.Unmarshal(data, s)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, s)
	case ".toml":
		return toml.Unmarshal(data, s)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Merge overlays other onto s, returning a new Settings. Lists are
// concatenated; non-zero scalars in other win.
func (s *Settings) Merge(other *Settings) *Settings {
	return merge(s, other)
}

func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	result := *global
	result.Suggestions = append([]string(nil), global.Suggestions...)
	result.WordFiles = append([]string(nil), global.WordFiles...)
	if project == nil {
		return &result
	}

	if project.Trigger.Start != "" {
		result.Trigger.Start = project.Trigger.Start
	}
	if project.Trigger.End != nil {
		end := *project.Trigger.End
		result.Trigger.End = &end
	}
	result.Suggestions = append(result.Suggestions, project.Suggestions...)
	result.WordFiles = append(result.WordFiles, project.WordFiles...)
	if project.MinLength != 0 {
		result.MinLength = project.MinLength
	}
	if project.MaxHeight != 0 {
		result.MaxHeight = project.MaxHeight
	}
	if project.LogFile != "" {
		result.LogFile = project.LogFile
	}
	if project.Debug {
		result.Debug = true
	}

	return &result
}

// TriggerConfig returns the delimiters to attach with, falling back to
// trigger.DefaultConfig for anything unset.
func (s *Settings) TriggerConfig() trigger.Config {
	cfg := trigger.DefaultConfig()
	if s == nil {
		return cfg
	}
	if s.Trigger.Start != "" {
		cfg.Start = s.Trigger.Start
	}
	if s.Trigger.End != nil {
		cfg.End = *s.Trigger.End
	}
	return cfg
}
