// Package pocas holds the poça (mill pond) specialization of a construction:
// the reservoir storing water for a mill, usually fed by a water line.
package pocas

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Poca is the poça specialization of a construction.
type Poca struct {
	ConstructionID string  `validate:"required,uuid4"`
	CapacityLiters float64 `validate:"min=0"`
	DepthMeters    float64 `validate:"min=0,max=30"`
	// WaterLineID links the poça to the water line filling it, when surveyed.
	WaterLineID *string `validate:"omitempty,uuid4"`
}

// Validate for validating Poca struct
func (p *Poca) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
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
