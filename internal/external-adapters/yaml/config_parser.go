// Package yaml provides YAML-based configuration parsing and repository implementations.
package yaml

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ochairo/gettor/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlConfig represents the raw YAML structure of gettor.yaml
type yamlConfig struct {
	UploadDir    string       `yaml:"upload_dir"`
	Keyring      string       `yaml:"keyring"`
	ManifestName string       `yaml:"manifest_name"`
	Log          yamlLog      `yaml:"log"`
	Coverage     yamlCoverage `yaml:"coverage"`
}

type yamlLog struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type yamlCoverage struct {
	Platforms []string `yaml:"platforms"`
	Locales   []string `yaml:"locales"`
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

var validPlatforms = map[string]bool{
	entities.OSWindows: true,
	entities.OSLinux:   true,
	entities.OSMacOS:   true,
}

// ConfigParser parses YAML configuration files
type ConfigParser struct{}

// NewConfigParser creates a new YAML parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses a YAML config file into a Config entity
func (p *ConfigParser) ParseFile(filePath string) (*entities.Config, error) {
	//nolint:gosec // G304: filePath is the user-selected config file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Config entity. Unset fields keep their defaults.
func (p *ConfigParser) Parse(data []byte) (*entities.Config, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg := entities.DefaultConfig()
	if raw.UploadDir != "" {
		cfg.UploadDir = raw.UploadDir
	}
	if raw.Keyring != "" {
		cfg.Keyring = raw.Keyring
	}
	if raw.ManifestName != "" {
		cfg.ManifestName = raw.ManifestName
	}
	if raw.Log.Level != "" {
		cfg.Log.Level = strings.ToLower(raw.Log.Level)
	}
	cfg.Log.File = raw.Log.File
	if len(raw.Coverage.Platforms) > 0 {
		cfg.Coverage.Platforms = raw.Coverage.Platforms
	}
	cfg.Coverage.Locales = raw.Coverage.Locales

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *entities.Config) error {
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("invalid log level %q (use debug, info, warn or error)", cfg.Log.Level)
	}
	for _, p := range cfg.Coverage.Platforms {
		if !validPlatforms[p] {
			return fmt.Errorf("invalid coverage platform %q (use windows, linux or osx)", p)
		}
	}
	for _, lc := range cfg.Coverage.Locales {
		if utf8.RuneCountInString(lc) != 2 {
			return fmt.Errorf("invalid coverage locale %q (use a 2-character language code)", lc)
		}
	}
	return nil
}
