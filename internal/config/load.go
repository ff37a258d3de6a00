package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load builds the configuration with priority:
// defaults < abuserc < config.yaml < flags.
// Problems that do not stop startup are collected in Warnings.
func Load() (*Config, error) {
	cfg := Default()

	if cfg.Paths.SaveDir == "" {
		dir, err := SaveDir()
		if err != nil {
			cfg.warn("unable to set up the save directory (%v); savegames will probably fail", err)
		}
		cfg.Paths.SaveDir = dir
	}

	rcPath := filepath.Join(cfg.Paths.SaveDir, RCFile)
	switch err := loadRC(cfg, rcPath); {
	case errors.Is(err, fs.ErrNotExist):
		if err := writeDefaultRC(rcPath, cfg.Paths.DataDir); err != nil {
			cfg.warn("unable to create %s: %v", RCFile, err)
		}
	case err != nil:
		return nil, fmt.Errorf("loading %s: %w", rcPath, err)
	}

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile(cfg.Paths.SaveDir)
	}
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	return cfg, nil
}

// Warnings returns the non-fatal problems met while loading.
func (c *Config) Warnings() []string {
	return c.warnings
}

func (c *Config) warn(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// findConfigFile looks for config.yaml in the working directory, then in
// the save directory.
func findConfigFile(saveDir string) string {
	candidates := []string{"./config.yaml"}
	if saveDir != "" {
		candidates = append(candidates, filepath.Join(saveDir, "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// SaveDir returns $HOME/.abuse, creating it if needed. On failure it
// returns "" so files land in the working directory.
func SaveDir() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", errors.New("$HOME is not set")
	}
	dir := filepath.Join(home, ".abuse")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
