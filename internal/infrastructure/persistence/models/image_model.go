package models

import (
	"time"

	"mill_inventory_service/internal/domain/images"
)

// ImageModel is the GORM database model for gallery image metadata.
type ImageModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	ConstructionID  string    `gorm:"not null;index;type:uuid"`
	FileName        string    `gorm:"not null;type:varchar(255)"`
	ContentType     string    `gorm:"not null;type:varchar(100)"`
	SizeBytes       int64     `gorm:"not null"`
	Position        int       `gorm:"not null;default:0"`
	URL             string    `gorm:"not null;type:varchar(500)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ImageModel) TableName() string {
	return "construction_images"
}

// ToDomain converts GORM model to domain entity
func (m *ImageModel) ToDomain() *images.ImageMeta {
	return &images.ImageMeta{
		ID:              m.ID,
		ConstructionID:  m.ConstructionID,
		FileName:        m.FileName,
		ContentType:     m.ContentType,
		SizeBytes:       m.SizeBytes,
		Position:        m.Position,
		URL:             m.URL,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ImageModel) FromDomain(i *images.ImageMeta) {
	m.ID = i.ID
	m.ConstructionID = i.ConstructionID
	m.FileName = i.FileName
	m.ContentType = i.ContentType
	m.SizeBytes = i.SizeBytes
	m.Position = i.Position
	m.URL = i.URL
	m.DateTimeCreated = i.DateTimeCreated
}
