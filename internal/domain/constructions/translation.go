package constructions

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Translation holds the localized text of a construction for one locale.
type Translation struct {
	ConstructionID string `validate:"required,uuid4"`
	Locale         string `validate:"required,oneof=pt en"`
	Name           string `validate:"required,min=1,max=255"`
	Summary        string `validate:"max=500"`
	Description    string
	History        string
}

// Validate for validating Translation struct
func (t *Translation) Validate() error {
	validate := validator.New()

	err := validate.Struct(t)
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
