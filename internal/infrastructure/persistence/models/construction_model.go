package models

import (
	"time"

	"mill_inventory_service/internal/domain/constructions"
)

// ConstructionModel is the GORM database model for the shared construction row.
// Geom is written outside GORM (see the repository) so the postgres column can
// stay a real geography(Point,4326).
type ConstructionModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Slug         string `gorm:"not null;uniqueIndex;type:varchar(160)"`
	Kind         string `gorm:"not null;index;type:varchar(20)"`
	Status       string `gorm:"not null;index;type:varchar(20)"`
	District     string `gorm:"type:varchar(120)"`
	Municipality string `gorm:"type:varchar(120)"`
	Parish       string `gorm:"type:varchar(120)"`
	Geom         *GeographyPoint
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ConstructionModel) TableName() string {
	return "constructions"
}

// ToDomain converts GORM model to domain entity. The point is not populated
// here: coordinate extraction is dialect-specific and done by the repository.
func (m *ConstructionModel) ToDomain() *constructions.Construction {
	return &constructions.Construction{
		ID:           m.ID,
		Slug:         m.Slug,
		Kind:         m.Kind,
		Status:       constructions.Status(m.Status),
		District:     m.District,
		Municipality: m.Municipality,
		Parish:       m.Parish,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ConstructionModel) FromDomain(c *constructions.Construction) {
	m.ID = c.ID
	m.Slug = c.Slug
	m.Kind = c.Kind
	m.Status = string(c.Status)
	m.District = c.District
	m.Municipality = c.Municipality
	m.Parish = c.Parish
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// TranslationModel is the GORM database model for per-locale construction text.
type TranslationModel struct {
	ConstructionID string `gorm:"primaryKey;type:uuid"`
	Locale         string `gorm:"primaryKey;type:varchar(8)"`
	Name           string `gorm:"not null;type:varchar(255)"`
	Summary        string `gorm:"type:varchar(500)"`
	Description    string `gorm:"type:text"`
	History        string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (TranslationModel) TableName() string {
	return "construction_translations"
}

// ToDomain converts GORM model to domain entity
func (m *TranslationModel) ToDomain() *constructions.Translation {
	return &constructions.Translation{
		ConstructionID: m.ConstructionID,
		Locale:         m.Locale,
		Name:           m.Name,
		Summary:        m.Summary,
		Description:    m.Description,
		History:        m.History,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TranslationModel) FromDomain(t *constructions.Translation) {
	m.ConstructionID = t.ConstructionID
	m.Locale = t.Locale
	m.Name = t.Name
	m.Summary = t.Summary
	m.Description = t.Description
	m.History = t.History
}
