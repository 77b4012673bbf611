package models

import "mill_inventory_service/internal/domain/pocas"

// PocaModel is the GORM database model for the poça specialization.
type PocaModel struct {
	ConstructionID string  `gorm:"primaryKey;type:uuid"`
	CapacityLiters float64 `gorm:"not null;default:0"`
	DepthMeters    float64 `gorm:"not null;default:0"`
	WaterLineID    *string `gorm:"type:uuid;index"`
}

// TableName specifies the table name for GORM
func (PocaModel) TableName() string {
	return "pocas"
}

// ToDomain converts GORM model to domain entity
func (m *PocaModel) ToDomain() *pocas.Poca {
	return &pocas.Poca{
		ConstructionID: m.ConstructionID,
		CapacityLiters: m.CapacityLiters,
		DepthMeters:    m.DepthMeters,
		WaterLineID:    m.WaterLineID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PocaModel) FromDomain(p *pocas.Poca) {
	m.ConstructionID = p.ConstructionID
	m.CapacityLiters = p.CapacityLiters
	m.DepthMeters = p.DepthMeters
	m.WaterLineID = p.WaterLineID
}
