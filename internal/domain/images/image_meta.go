// Package images holds the gallery metadata of a construction and the
// contracts for the object store the files live in.
package images

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ImageMeta entity
type ImageMeta struct {
	ID              string    `validate:"required,uuid4"`
	ConstructionID  string    `validate:"required,uuid4"`
	FileName        string    `validate:"required,min=1,max=255"`
	ContentType     string    `validate:"required,min=1,max=100"`
	SizeBytes       int64     `validate:"required,min=1"`
	Position        int       `validate:"min=0"`
	URL             string    `validate:"required,url"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating ImageMeta struct
func (m *ImageMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(m)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
