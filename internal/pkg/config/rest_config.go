package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AuthSettings holds the bearer tokens accepted on admin routes.
type AuthSettings struct {
	AdminTokens []string `mapstructure:"admin_tokens" validate:"required,min=1,dive,min=16"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	return nil
}

// RestConfig aggregates all settings required by the REST API process.
type RestConfig struct {
	Port       string             `mapstructure:"port" validate:"required,numeric"`
	Database   DatabaseSettings   `mapstructure:"database"`
	Logger     LoggerSettings     `mapstructure:"logger"`
	ImageStore ImageStoreSettings `mapstructure:"image_store"`
	Cache      CacheSettings      `mapstructure:"cache"`
	Auth       AuthSettings       `mapstructure:"auth"`
}

// Validate checks the top-level fields and every settings section.
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.StructPartial(c, "Port"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.ImageStore.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}

	return nil
}

// InitializeRestConfig loads the REST API configuration from a YAML file and
// the environment. A .env file next to the working directory is loaded first
// when present; environment variables (MILL_INVENTORY_ prefix, sections joined
// with underscores) override file values.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	// Missing .env is fine; it only exists in local development
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("MILL_INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
