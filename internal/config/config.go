package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file at the root of a journey directory.
const FileName = "splitledger.yaml"

// Config represents the top-level splitledger.yaml configuration.
type Config struct {
	Journey     JourneyConfig `yaml:"journey"`
	CurrentUser string        `yaml:"current_user,omitempty"` // person ID that "I" and "me" stand for
	Git         GitConfig     `yaml:"git"`
}

// JourneyConfig identifies the group sharing expenses.
type JourneyConfig struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Currency    string `yaml:"currency"` // display symbol only; no conversion
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a splitledger.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadDir reads splitledger.yaml from a journey directory.
func LoadDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new journey.
func Default(journeyID, name string) *Config {
	return &Config{
		Journey: JourneyConfig{
			ID:       journeyID,
			Name:     name,
			Currency: "₹",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "splitledger",
			AuthorEmail: "splitledger@localhost",
		},
	}
}
