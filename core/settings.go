package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ReaderSettings are the display preferences a reader frontend consumes.
// Persisted as YAML under the data directory so they survive restarts and
// can be edited by hand.
type ReaderSettings struct {
	FontSize    int     `yaml:"font_size"`
	LineSpacing float64 `yaml:"line_spacing"`
	PageWidth   int     `yaml:"page_width"`
	Theme       string  `yaml:"theme"`
}

// DefaultReaderSettings returns the out-of-the-box preferences.
func DefaultReaderSettings() ReaderSettings {
	return ReaderSettings{
		FontSize:    18,
		LineSpacing: 1.6,
		PageWidth:   720,
		Theme:       "light",
	}
}

// LoadReaderSettings reads settings from path. A missing file is not an
// error; it yields the defaults so first launch needs no setup step.
func LoadReaderSettings(path string) (ReaderSettings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultReaderSettings(), nil
	}
	if err != nil {
		return ReaderSettings{}, fmt.Errorf("settings: failed to read %q: %w", path, err)
	}

	s := DefaultReaderSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return ReaderSettings{}, fmt.Errorf("settings: failed to parse %q: %w", path, err)
	}
	return s, nil
}

// SaveReaderSettings writes settings to path as YAML, creating the parent
// directory if needed.
func SaveReaderSettings(path string, s ReaderSettings) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("settings: failed to create %q: %w", dir, err)
		}
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: marshal failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("settings: failed to write %q: %w", path, err)
	}
	return nil
}
