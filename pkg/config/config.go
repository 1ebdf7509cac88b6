package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
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
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Data struct {
		Path          string   `yaml:"path"`
		DateLayout    string   `yaml:"date_layout"`
		Tenors        []string `yaml:"tenors"`
		FloatingTenor string   `yaml:"floating_tenor"`
	} `yaml:"data"`
	Schedule struct {
		ExcludeTrailing int `yaml:"exclude_trailing"`
	} `yaml:"schedule"`
	Cache struct {
		TTL    time.Duration `yaml:"ttl"`
		Memory struct {
			MaxSize int `yaml:"max_size"`
		} `yaml:"memory"`
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
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

	if v := os.Getenv("RATES_PATH"); v != "" {
		c.Data.Path = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, ok := strings.Cut(v, ":")
		if ok {
			if p, err := strconv.Atoi(port); err == nil {
				c.Cache.Redis.Enabled = true
				c.Cache.Redis.Host = host
				c.Cache.Redis.Port = p
			}
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Data.Path == "" {
		return fmt.Errorf("data.path is required")
	}
	if len(c.Data.Tenors) == 0 {
		return fmt.Errorf("data.tenors cannot be empty")
	}
	if c.Data.FloatingTenor == "" {
		return fmt.Errorf("data.floating_tenor is required")
	}
	found := false
	for _, t := range c.Data.Tenors {
		if t == c.Data.FloatingTenor {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("data.floating_tenor %q must be one of data.tenors", c.Data.FloatingTenor)
	}
	if c.Schedule.ExcludeTrailing < 0 {
		return fmt.Errorf("schedule.exclude_trailing must be >= 0")
	}
	return nil
}
