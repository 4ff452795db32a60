package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPageSize = 20

// Settings are user preferences read from the settings file. Zero values
// mean "use the default".
type Settings struct {
	PageSize  int    `yaml:"page_size"`
	ThumbSize string `yaml:"thumb_size"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func DefaultSettings() Settings {
	return Settings{
		PageSize:  DefaultPageSize,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// LoadSettings reads settings from path. A missing file yields the defaults;
// a file that exists but cannot be parsed is an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings file %q: %w", path, err)
	}

	s.normalize()
	return s, nil
}

func (s *Settings) normalize() {
	d := DefaultSettings()
	if s.PageSize <= 0 {
		s.PageSize = d.PageSize
	}
	if s.LogLevel == "" {
		s.LogLevel = d.LogLevel
	}
	if s.LogFormat == "" {
		s.LogFormat = d.LogFormat
	}
}
