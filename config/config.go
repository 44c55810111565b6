package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log      LogConfig      `yaml:"log"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// Holds logging-specific configuration.
type LogConfig struct {
	Level       string `yaml:"level"`       // Zap level name: debug, info, warn, error
	Development bool   `yaml:"development"` // Use the verbose development encoder
}

// Holds pipeline-specific configuration.
type PipelineConfig struct {
	ChunkSize uint32 `yaml:"chunk_size"` // Copy-buffer size inside the compression adapter
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Pipeline: PipelineConfig{
			ChunkSize: 256,
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LogLevel parses the configured level name into a zap level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Log.Level)
}

func validateConfig(config *Config) error {
	if _, err := zapcore.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("log level %q is not a valid level name", config.Log.Level)
	}

	if config.Pipeline.ChunkSize == 0 {
		return fmt.Errorf("chunk_size must be greater than 0")
	}

	return nil
}
