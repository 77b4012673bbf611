package constructions

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ConstructionQuery represents the parameters used to filter dashboard listings
type ConstructionQuery struct {
	Status       string    `validate:"omitempty,oneof=draft review published"`
	Kind         string    `validate:"omitempty,oneof=mill water_line poca"`
	Municipality string    `validate:"omitempty,max=120"`
	Text         string    `validate:"omitempty,max=255"` // matches slug and translated names
	UpdatedAfter time.Time // filter records modified after a given timestamp

	SortBy    string `validate:"omitempty,oneof=slug kind status created_at updated_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`

	Limit  int `validate:"omitempty,min=1,max=500"`
	Offset int `validate:"omitempty,min=0"`
}

// NewConstructionQuery creates a ConstructionQuery with default values
func NewConstructionQuery() *ConstructionQuery {
	return &ConstructionQuery{
		SortBy:    "updated_at",
		SortOrder: "desc",
		Limit:     100,
		Offset:    0,
	}
}

// Validate for validating ConstructionQuery struct
func (q *ConstructionQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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
