package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Version  string   `json:"version" mapstructure:"version"`
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Seed struct {
	Count int `json:"count,omitempty" mapstructure:"count"`
}

func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Database: Database{
			Provider: "mongodb",
			URLEnv:   "MONGODB_URI",
		},
		Seed: Seed{
			Count: 10,
		},
	}
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "mongodb"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "MONGODB_URI"
	}
	if cfg.Seed.Count <= 0 {
		cfg.Seed.Count = 10
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.Provider != "mongodb" {
		return fmt.Errorf("unsupported database provider: %s", c.Database.Provider)
	}
	return nil
}

// GetDatabaseURL resolves the connection string from the environment. A
// missing value is a configuration error reported before any connection
// attempt.
func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}
