package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFile is the name of the optional project configuration file.
const ConfigFile = "genui.json"

// Config represents the genui.json configuration file
type Config struct {
	CatalogDir string    `json:"catalogDir"`
	Language   string    `json:"language"`
	Overwrite  bool      `json:"overwrite"`
	Manifest   string    `json:"manifest"`
	Dev        DevConfig `json:"dev"`
}

// DevConfig contains watch-mode configuration
type DevConfig struct {
	Watch   []string `json:"watch"`
	Exclude []string `json:"exclude"`
}

// Default returns the configuration used when no genui.json exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads genui.json from the current directory or a parent
// directory. Unlike the generator's own output handling, a missing config
// is not an error: the defaults apply and the start directory is returned.
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return LoadConfigFromDir(dir)
}

// LoadConfigFromPath loads the genui.json configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// LoadConfigFromDir searches for genui.json in the given directory and its
// parents. When none is found, defaults and the start directory come back.
func LoadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, ConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return Default(), startDir, nil
}

func (c *Config) applyDefaults() {
	if c.CatalogDir == "" {
		c.CatalogDir = filepath.Join("lib", "genui", "catalog")
	}
	if c.Language == "" {
		c.Language = "dart"
	}
	if c.Manifest == "" {
		c.Manifest = "genui.yaml"
	}
	if len(c.Dev.Watch) == 0 {
		c.Dev.Watch = []string{c.Manifest, "*.genui.yaml"}
	}
	if len(c.Dev.Exclude) == 0 {
		c.Dev.Exclude = []string{"build", ".git", ".dart_tool"}
	}
}
