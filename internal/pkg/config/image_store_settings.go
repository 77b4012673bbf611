package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AzureCloudProvider represents Microsoft Azure cloud provider
const AzureCloudProvider = "azure"

// ImageStoreSettings holds the object-storage settings for construction images.
// Only Azure Blob Storage is supported; the container is created on startup
// when missing.
type ImageStoreSettings struct {
	CloudProvider    string `mapstructure:"cloud_provider" validate:"required,oneof=azure"`
	ConnectionString string `mapstructure:"connection_string" validate:"required"`
	ContainerName    string `mapstructure:"container_name" validate:"required,min=3,max=63"`
	// PublicBaseURL overrides the URL prefix written into image metadata,
	// e.g. a CDN endpoint in front of the container.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// Validate checks that all fields in ImageStoreSettings are valid
func (s *ImageStoreSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ImageStoreSettings: %w", err)
	}

	return nil
}
