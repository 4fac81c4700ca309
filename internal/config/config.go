package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		// Path is the location of the SQLite database file.
		Path string `yaml:"path" env:"DB_PATH"`
		// BusyTimeoutMS is the SQLite busy timeout in milliseconds.
		BusyTimeoutMS int `yaml:"busy_timeout_ms" env:"DB_BUSY_TIMEOUT_MS"`
	} `yaml:"database"`

	Report struct {
		// ExportDir is where generated report documents are written.
		ExportDir string `yaml:"export_dir" env:"REPORT_EXPORT_DIR"`
	} `yaml:"report"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults plus env vars are enough to run.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Path = "school.db"
	config.Database.BusyTimeoutMS = 5000

	config.Report.ExportDir = "reports"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if config.Database.BusyTimeoutMS < 0 {
		return fmt.Errorf("database busy timeout must not be negative")
	}

	if config.Report.ExportDir == "" {
		return fmt.Errorf("report export directory is required")
	}

	return nil
}
