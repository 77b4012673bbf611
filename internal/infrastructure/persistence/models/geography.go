package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// GeographyPoint holds a WKT POINT. The column migrates to a real PostGIS
// geography(Point,4326) on postgres; sqlite has no geography type, so there
// the column is plain text and the WKT is parsed in Go instead.
type GeographyPoint string

// GormDBDataType picks the column type per dialect.
func (GeographyPoint) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "geography(Point,4326)"
	}
	return "text"
}

// GeographyLineString is the LINESTRING counterpart of GeographyPoint.
type GeographyLineString string

// GormDBDataType picks the column type per dialect.
func (GeographyLineString) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "geography(LineString,4326)"
	}
	return "text"
}
