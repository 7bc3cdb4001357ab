package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Pricing struct {
		RiskFreeRate float64 `yaml:"risk_free_rate"`
	} `yaml:"pricing"`
	MonteCarlo struct {
		NumPaths int   `yaml:"num_paths"`
		Workers  int   `yaml:"workers"`
		Seed     int64 `yaml:"seed"`
	} `yaml:"montecarlo"`
	Market struct {
		Symbol    string  `yaml:"symbol"`
		BasePrice float64 `yaml:"base_price"`
	} `yaml:"market"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			c.Pricing.RiskFreeRate = r
		}
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		c.Market.Symbol = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Pricing.RiskFreeRate == 0 {
		c.Pricing.RiskFreeRate = 0.05
	}
	if c.MonteCarlo.NumPaths == 0 {
		c.MonteCarlo.NumPaths = 10000
	}
	if c.MonteCarlo.Workers == 0 {
		c.MonteCarlo.Workers = 4
	}
	if c.Market.Symbol == "" {
		c.Market.Symbol = "BTCUSDT"
	}
	if c.Market.BasePrice == 0 {
		c.Market.BasePrice = 50000
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	if c.Pricing.RiskFreeRate < 0 || c.Pricing.RiskFreeRate > 1 {
		return fmt.Errorf("pricing.risk_free_rate must be in [0, 1], got %v", c.Pricing.RiskFreeRate)
	}
	if c.MonteCarlo.NumPaths < 100 {
		return fmt.Errorf("montecarlo.num_paths must be at least 100, got %d", c.MonteCarlo.NumPaths)
	}
	if c.MonteCarlo.Workers < 1 {
		return fmt.Errorf("montecarlo.workers must be at least 1, got %d", c.MonteCarlo.Workers)
	}
	return nil
}
