// Package mills holds the mill specialization of a construction plus the
// public read models served by the catalog: published listings, map markers
// and the searchable payload used for cross-language filtering.
package mills

import (
	"errors"
	"fmt"

	"mill_inventory_service/internal/domain/taxonomy"

	"github.com/go-playground/validator/v10"
)

// MillData is the mill specialization of a construction.
type MillData struct {
	ConstructionID        string `validate:"required,uuid4"`
	Typology              string `validate:"required"`
	ConstructionTechnique string `validate:"required"`
	RoofMaterial          string `validate:"required"`
	Mechanism             string `validate:"required"`
	Conservation          string `validate:"required"`
	GrindingPairs         int    `validate:"min=0,max=12"`
	Epigraphy             string
	Annexes               []string
	// WaterLineID links the mill to the water line construction feeding it,
	// when surveyed.
	WaterLineID *string `validate:"omitempty,uuid4"`
}

// Validate checks struct tags and that every taxonomy key belongs to its
// vocabulary.
func (m *MillData) Validate() error {
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

	taxonomyFields := []struct {
		field string
		key   string
	}{
		{taxonomy.FieldTypology, m.Typology},
		{taxonomy.FieldTechnique, m.ConstructionTechnique},
		{taxonomy.FieldRoofMaterial, m.RoofMaterial},
		{taxonomy.FieldMechanism, m.Mechanism},
		{taxonomy.FieldConservation, m.Conservation},
	}
	for _, tf := range taxonomyFields {
		if !taxonomy.IsValid(tf.field, tf.key) {
			return fmt.Errorf("unknown %s key: %q", tf.field, tf.key)
		}
	}

	for _, annex := range m.Annexes {
		if !taxonomy.IsValid(taxonomy.FieldAnnex, annex) {
			return fmt.Errorf("unknown annex key: %q", annex)
		}
	}

	return nil
}
