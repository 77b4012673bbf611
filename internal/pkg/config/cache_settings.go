package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CacheSettings holds the redis settings for the published-catalog cache.
// The cache is optional; when Enabled is false the catalog service is used
// directly.
type CacheSettings struct {
	Enabled    bool   `mapstructure:"enabled"`
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db" validate:"min=0"`
	TTLSeconds int    `mapstructure:"ttl_seconds" validate:"min=0"`
}

// Validate checks that all fields in CacheSettings are valid
func (s *CacheSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CacheSettings: %w", err)
	}

	if s.Enabled && s.Addr == "" {
		return fmt.Errorf("addr is required when cache is enabled")
	}

	return nil
}
