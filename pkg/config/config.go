package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the catalog CLI and the external test
// harness: where results are recorded, where sample repositories are cloned,
// and the default executable toggles.
type Config struct {
	DatabasePath string `yaml:"database"`
	WorkDir      string `yaml:"work_dir"`
	SkipSfdx     bool   `yaml:"skip_sfdx"`
	SkipLocal    bool   `yaml:"skip_local"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dbPath := filepath.Join("source_nuts", "results.db")
	workDir := filepath.Join("source_nuts", "repos")
	if homeDir, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(homeDir, "source_nuts", "results.db")
		workDir = filepath.Join(homeDir, "source_nuts", "repos")
	}
	return &Config{
		DatabasePath: dbPath,
		WorkDir:      workDir,
		SkipSfdx:     true,
		SkipLocal:    false,
	}
}

// Load loads configuration from file and environment variables
// Priority: environment variables > config file > defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath := GetConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			// Config file is optional, so we just skip if not found
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// Override with environment variables
	if db := os.Getenv("SOURCE_NUTS_DB"); db != "" {
		cfg.DatabasePath = db
	}
	if dir := os.Getenv("SOURCE_NUTS_WORKDIR"); dir != "" {
		cfg.WorkDir = dir
	}
	if v := os.Getenv("SOURCE_NUTS_SKIP_SFDX"); v != "" {
		cfg.SkipSfdx = v == "true" || v == "1"
	}
	if v := os.Getenv("SOURCE_NUTS_SKIP_LOCAL"); v != "" {
		cfg.SkipLocal = v == "true" || v == "1"
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// Save saves the configuration to a file
func (cfg *Config) Save(path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	configPath := os.Getenv("SOURCE_NUTS_CONFIG")
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			configPath = filepath.Join(homeDir, ".source-nuts.yaml")
		} else {
			configPath = ".source-nuts.yaml"
		}
	}
	return configPath
}

// GetDatabasePath returns the database path, expanding ~/ if needed
func (cfg *Config) GetDatabasePath() string {
	return expandHome(cfg.DatabasePath)
}

// GetWorkDir returns the workspace directory, expanding ~/ if needed
func (cfg *Config) GetWorkDir() string {
	return expandHome(cfg.WorkDir)
}

func expandHome(path string) string {
	if len(path) > 1 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

// ValidateDatabase checks the database path and creates its directory
func (cfg *Config) ValidateDatabase() error {
	path := cfg.GetDatabasePath()
	if path == "" {
		return fmt.Errorf("database path is empty")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	return nil
}

// ValidateWorkDir checks the workspace path and creates it if needed
func (cfg *Config) ValidateWorkDir() error {
	dir := cfg.GetWorkDir()
	if dir == "" {
		return fmt.Errorf("work_dir is empty")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create work directory: %w", err)
	}

	return nil
}

// Validate runs all configuration checks
func (cfg *Config) Validate() error {
	if err := cfg.ValidateDatabase(); err != nil {
		return err
	}
	return cfg.ValidateWorkDir()
}
