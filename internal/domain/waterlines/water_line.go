// Package waterlines holds the water line (levada) specialization of a
// construction: the waterway feeding one or more mills, persisted as a
// LINESTRING path.
package waterlines

import (
	"errors"
	"fmt"

	"mill_inventory_service/internal/domain/geo"
	"mill_inventory_service/internal/domain/taxonomy"

	"github.com/go-playground/validator/v10"
)

// WaterLine is the water line specialization of a construction.
type WaterLine struct {
	ConstructionID string  `validate:"required,uuid4"`
	SourceKind     string  `validate:"required"`
	LengthMeters   float64 `validate:"min=0"`
	// Path is the ordered WGS84 polyline; empty while a draft has not been
	// surveyed, at least two vertices otherwise.
	Path []geo.Point
}

// Validate checks struct tags, the source vocabulary and the path geometry.
func (w *WaterLine) Validate() error {
	validate := validator.New()

	err := validate.Struct(w)
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

	if !taxonomy.IsValid(taxonomy.FieldSourceKind, w.SourceKind) {
		return fmt.Errorf("unknown source_kind key: %q", w.SourceKind)
	}

	if len(w.Path) == 1 {
		return fmt.Errorf("path needs at least 2 vertices, got 1")
	}
	for i, p := range w.Path {
		if !p.Valid() {
			return fmt.Errorf("path vertex %d out of WGS84 bounds: lat=%v lng=%v", i, p.Latitude, p.Longitude)
		}
	}

	return nil
}
