package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ownerfi/listing-validate/internal/config"
	"github.com/ownerfi/listing-validate/pkg/constants"
)

// Config defines runtime parameters for the HTTP validation API.
type Config struct {
	Address     string               `yaml:"address"`
	MaxBodySize int64                `yaml:"maxBodySize"`
	Logging     config.LoggingConfig `yaml:"logging"`
	// RedisAddress enables the shared decision cache; empty means the
	// in-process cache.
	RedisAddress string   `yaml:"redisAddress"`
	CacheTTL     Duration `yaml:"cacheTTL"`
}

// Duration accepts Go duration strings, e.g. "15m", in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// LoadConfig loads the server configuration from YAML. If the file does not
// exist, defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:     constants.DefaultServerAddress,
		MaxBodySize: constants.DefaultMaxBodySizeBytes,
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = constants.DefaultMaxBodySizeBytes
	}
	if c.CacheTTL < 0 {
		c.CacheTTL = 0
	}
}

// TTL returns the cache TTL as a standard duration.
func (c *Config) TTL() time.Duration {
	return time.Duration(c.CacheTTL)
}
