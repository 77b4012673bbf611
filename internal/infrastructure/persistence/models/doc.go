// Package models contains the GORM database models of the inventory and
// their conversions to and from domain entities. Geometry columns hold WKT;
// on postgres they are typed geography(…,4326) and written through
// ST_GeographyFromText, on sqlite they degrade to plain text parsed in Go.
package models
