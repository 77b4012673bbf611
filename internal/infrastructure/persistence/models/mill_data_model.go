package models

import (
	"encoding/json"

	"mill_inventory_service/internal/domain/mills"
)

// MillDataModel is the GORM database model for the mill specialization.
// Annexes are stored as a JSON array in a text column; the vocabulary is
// validated in the domain layer before rows get here.
type MillDataModel struct {
	ConstructionID        string  `gorm:"primaryKey;type:uuid"`
	Typology              string  `gorm:"not null;index;type:varchar(50)"`
	ConstructionTechnique string  `gorm:"not null;type:varchar(50)"`
	RoofMaterial          string  `gorm:"not null;type:varchar(50)"`
	Mechanism             string  `gorm:"not null;type:varchar(50)"`
	Conservation          string  `gorm:"not null;index;type:varchar(50)"`
	GrindingPairs         int     `gorm:"not null;default:0"`
	Epigraphy             string  `gorm:"type:text"`
	Annexes               string  `gorm:"type:text"`
	WaterLineID           *string `gorm:"type:uuid;index"`
}

// TableName specifies the table name for GORM
func (MillDataModel) TableName() string {
	return "mill_data"
}

// ToDomain converts GORM model to domain entity
func (m *MillDataModel) ToDomain() *mills.MillData {
	var annexes []string
	if m.Annexes != "" {
		// A malformed annex blob loses the list but must not sink the row
		_ = json.Unmarshal([]byte(m.Annexes), &annexes)
	}

	return &mills.MillData{
		ConstructionID:        m.ConstructionID,
		Typology:              m.Typology,
		ConstructionTechnique: m.ConstructionTechnique,
		RoofMaterial:          m.RoofMaterial,
		Mechanism:             m.Mechanism,
		Conservation:          m.Conservation,
		GrindingPairs:         m.GrindingPairs,
		Epigraphy:             m.Epigraphy,
		Annexes:               annexes,
		WaterLineID:           m.WaterLineID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MillDataModel) FromDomain(d *mills.MillData) {
	m.ConstructionID = d.ConstructionID
	m.Typology = d.Typology
	m.ConstructionTechnique = d.ConstructionTechnique
	m.RoofMaterial = d.RoofMaterial
	m.Mechanism = d.Mechanism
	m.Conservation = d.Conservation
	m.GrindingPairs = d.GrindingPairs
	m.Epigraphy = d.Epigraphy
	m.WaterLineID = d.WaterLineID

	m.Annexes = ""
	if len(d.Annexes) > 0 {
		if encoded, err := json.Marshal(d.Annexes); err == nil {
			m.Annexes = string(encoded)
		}
	}
}
