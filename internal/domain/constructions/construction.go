// Package constructions holds the shared record every inventoried object is
// built on: mills, water lines and poças all share a construction row with a
// slug, a publication status, administrative location and a WGS84 point. The
// specializations live in their own packages.
package constructions

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mill_inventory_service/internal/domain/geo"

	"github.com/go-playground/validator/v10"
)

// Kind constants for constructions.
const (
	KindMill      = "mill"
	KindWaterLine = "water_line"
	KindPoca      = "poca"
)

// Supported locales; pt is the canonical one every published record must have.
const (
	DefaultLocale = "pt"
	LocaleEnglish = "en"
)

// SupportedLocales lists the locales translations may be stored in.
var SupportedLocales = []string{DefaultLocale, LocaleEnglish}

// IsSupportedLocale reports whether translations may be stored for a locale.
func IsSupportedLocale(locale string) bool {
	for _, l := range SupportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

// NormalizeLocale maps any requested locale onto a supported one, falling
// back to pt. Every layer keying on a locale must go through this so "PT",
// " en " and "fr" all land on the same canonical value.
func NormalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if IsSupportedLocale(locale) {
		return locale
	}
	return DefaultLocale
}

// Construction entity
type Construction struct {
	ID           string `validate:"required,uuid4"`
	Slug         string `validate:"required,min=1,max=160"`
	Kind         string `validate:"required,oneof=mill water_line poca"`
	Status       Status `validate:"required"`
	District     string `validate:"max=120"`
	Municipality string `validate:"max=120"`
	Parish       string `validate:"max=120"`
	// Point is nil while a draft has no surveyed coordinates yet; publishing
	// requires it.
	Point     *geo.Point
	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
}

// Validate for validating Construction struct
func (c *Construction) Validate() error {
	validate := validator.New()

	err := validate.Struct(c)
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

	if !c.Status.Valid() {
		return fmt.Errorf("invalid status: %s", c.Status)
	}

	if c.Point != nil && !c.Point.Valid() {
		return fmt.Errorf("point out of WGS84 bounds: lat=%v lng=%v", c.Point.Latitude, c.Point.Longitude)
	}

	return nil
}
