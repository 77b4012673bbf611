package models

import "mill_inventory_service/internal/domain/waterlines"

// WaterLineModel is the GORM database model for the water line specialization.
// Path is written outside GORM like ConstructionModel.Geom.
type WaterLineModel struct {
	ConstructionID string  `gorm:"primaryKey;type:uuid"`
	SourceKind     string  `gorm:"not null;type:varchar(50)"`
	LengthMeters   float64 `gorm:"not null;default:0"`
	Path           *GeographyLineString
}

// TableName specifies the table name for GORM
func (WaterLineModel) TableName() string {
	return "water_lines"
}

// ToDomain converts GORM model to domain entity. The path is not populated
// here: LINESTRING extraction is dialect-specific and done by the repository.
func (m *WaterLineModel) ToDomain() *waterlines.WaterLine {
	return &waterlines.WaterLine{
		ConstructionID: m.ConstructionID,
		SourceKind:     m.SourceKind,
		LengthMeters:   m.LengthMeters,
	}
}

// FromDomain converts domain entity to GORM model
func (m *WaterLineModel) FromDomain(w *waterlines.WaterLine) {
	m.ConstructionID = w.ConstructionID
	m.SourceKind = w.SourceKind
	m.LengthMeters = w.LengthMeters
}
