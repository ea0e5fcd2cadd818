package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	HTTP          HTTPConfig          `yaml:"http"`
	Skins         SkinsConfig         `yaml:"skins"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// HTTPConfig holds the API server configuration.
type HTTPConfig struct {
	Address        string  `yaml:"address"`
	MetricsAddress string  `yaml:"metrics_address"`
	RateLimit      float64 `yaml:"rate_limit"`
	RateBurst      int     `yaml:"rate_burst"`
}

// SkinsConfig holds skins-game defaults.
type SkinsConfig struct {
	DefaultTotalPrize float64 `yaml:"default_total_prize"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.HTTP.MetricsAddress = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("SKINS_DEFAULT_TOTAL_PRIZE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Skins.DefaultTotalPrize = f
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config

	cfg.Postgres.DSN = os.Getenv("DATABASE_URL")
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	cfg.NATS.URL = os.Getenv("NATS_URL")
	if cfg.NATS.URL == "" {
		return nil, fmt.Errorf("NATS_URL environment variable not set")
	}

	cfg.HTTP.Address = os.Getenv("HTTP_ADDRESS")
	cfg.HTTP.MetricsAddress = os.Getenv("METRICS_ADDRESS")
	cfg.Observability.Environment = os.Getenv("ENV")
	cfg.Observability.LogLevel = os.Getenv("LOG_LEVEL")
	if v := os.Getenv("SKINS_DEFAULT_TOTAL_PRIZE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Skins.DefaultTotalPrize = f
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HTTP.MetricsAddress == "" {
		c.HTTP.MetricsAddress = ":9090"
	}
	if c.HTTP.RateLimit == 0 {
		c.HTTP.RateLimit = 20
	}
	if c.HTTP.RateBurst == 0 {
		c.HTTP.RateBurst = 40
	}
	if c.Skins.DefaultTotalPrize == 0 {
		c.Skins.DefaultTotalPrize = 1800
	}
	if c.Observability.Environment == "" {
		c.Observability.Environment = "development"
	}
}
