package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Batch   BatchConfig   `yaml:"batch"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

// BatchConfig holds batch processing defaults
type BatchConfig struct {
	Delay       string   `yaml:"delay"`
	MaxAttempts int      `yaml:"max_attempts"`
	Languages   []string `yaml:"languages"`
	Format      string   `yaml:"format"`
}

// PathsConfig holds the state file locations
type PathsConfig struct {
	Queue       string `yaml:"queue"`
	Failures    string `yaml:"failures"`
	Transcripts string `yaml:"transcripts"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Batch: BatchConfig{
			Delay:       "2s",
			MaxAttempts: 3,
			Languages:   []string{"en"},
			Format:      "text",
		},
		Paths: PathsConfig{
			Queue:       "urls.txt",
			Failures:    "failed_urls.txt",
			Transcripts: "transcripts",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// AppDir returns the application directory (~/.ytscribe)
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ytscribe"
	}
	return filepath.Join(home, ".ytscribe")
}

// LogsDir returns the log directory
func LogsDir() string {
	return filepath.Join(AppDir(), "logs")
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// EnsureDirs creates all required directories
func EnsureDirs() error {
	dirs := []string{AppDir(), LogsDir()}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Load reads config from file, returns default if not exists
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads config from default path
func LoadDefault() (*Config, error) {
	return Load(ConfigPath())
}

// Save writes config to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetDelay returns the inter-item delay as a duration
func (c *Config) GetDelay() (time.Duration, error) {
	d, err := time.ParseDuration(c.Batch.Delay)
	if err != nil {
		return 0, fmt.Errorf("invalid delay %q (use format like 2s, 500ms): %w", c.Batch.Delay, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("delay must not be negative: %s", c.Batch.Delay)
	}
	return d, nil
}
