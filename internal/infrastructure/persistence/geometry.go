package persistence

import (
	"database/sql"

	"mill_inventory_service/internal/domain/geo"

	"gorm.io/gorm"
)

// isPostgres reports whether the connection speaks PostGIS.
func isPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}

// setConstructionGeom writes the construction point outside GORM so the
// postgres column can stay geography(Point,4326). On sqlite the WKT text is
// stored as-is and parsed back in Go.
func setConstructionGeom(tx *gorm.DB, constructionID string, p *geo.Point) error {
	if p == nil {
		return tx.Exec("UPDATE constructions SET geom = NULL WHERE id = ?", constructionID).Error
	}

	if isPostgres(tx) {
		return tx.Exec(
			"UPDATE constructions SET geom = ST_GeographyFromText(?) WHERE id = ?",
			"SRID=4326;"+p.WKT(), constructionID,
		).Error
	}
	return tx.Exec("UPDATE constructions SET geom = ? WHERE id = ?", p.WKT(), constructionID).Error
}

// setWaterLinePath writes the water line path, same contract as
// setConstructionGeom.
func setWaterLinePath(tx *gorm.DB, constructionID string, path []geo.Point) error {
	if len(path) == 0 {
		return tx.Exec("UPDATE water_lines SET path = NULL WHERE construction_id = ?", constructionID).Error
	}

	wkt, err := geo.FormatLineString(path)
	if err != nil {
		return err
	}

	if isPostgres(tx) {
		return tx.Exec(
			"UPDATE water_lines SET path = ST_GeographyFromText(?) WHERE construction_id = ?",
			"SRID=4326;"+wkt, constructionID,
		).Error
	}
	return tx.Exec("UPDATE water_lines SET path = ? WHERE construction_id = ?", wkt, constructionID).Error
}

// pointSelect returns the select-list fragment extracting coordinates for a
// constructions table aliased as alias. Postgres extracts with ST_X/ST_Y;
// sqlite returns the raw WKT for Go-side parsing.
func pointSelect(db *gorm.DB, alias string) string {
	if isPostgres(db) {
		return "ST_Y(" + alias + ".geom::geometry) AS latitude, ST_X(" + alias + ".geom::geometry) AS longitude, NULL AS geom_wkt"
	}
	return "NULL AS latitude, NULL AS longitude, " + alias + ".geom AS geom_wkt"
}

// pathSelect returns the select-list fragment extracting the LINESTRING text
// for a water_lines table aliased as alias.
func pathSelect(db *gorm.DB, alias string) string {
	if isPostgres(db) {
		return "ST_AsText(" + alias + ".path::geometry) AS path_wkt"
	}
	return alias + ".path AS path_wkt"
}

// GeoRow is embedded by scan targets that carry extracted coordinates. It
// must stay exported: GORM skips unexported embedded structs when scanning,
// which would leave every coordinate NULL.
type GeoRow struct {
	Latitude  sql.NullFloat64
	Longitude sql.NullFloat64
	GeomWKT   sql.NullString
}

// point resolves the row's coordinates from either extraction path and
// validates them. ok is false when the row has no usable point; such rows
// are skipped by the callers, never fatal.
func (r *GeoRow) point() (geo.Point, bool) {
	if r.Latitude.Valid && r.Longitude.Valid {
		p := geo.Point{Latitude: r.Latitude.Float64, Longitude: r.Longitude.Float64}
		return p, p.Valid()
	}

	if r.GeomWKT.Valid && r.GeomWKT.String != "" {
		p, err := geo.ParsePoint(r.GeomWKT.String)
		if err != nil {
			return geo.Point{}, false
		}
		return p, true
	}

	return geo.Point{}, false
}
