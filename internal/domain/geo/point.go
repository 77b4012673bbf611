// Package geo holds the coordinate types shared by every construction kind
// and the WKT parsing used when the database cannot do the extraction itself.
// Geometries are stored as WGS84 (SRID 4326); postgres extracts coordinates
// with ST_X/ST_Y, while the sqlite path parses the WKT text here. Both paths
// go through the same range validation so a bad row never reaches a map
// payload.
package geo

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the point is inside WGS84 bounds.
func (p Point) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// WKT formats the point as "POINT(lon lat)". Longitude comes first, matching
// the PostGIS axis order.
func (p Point) WKT() string {
	return fmt.Sprintf("POINT(%s %s)", formatCoord(p.Longitude), formatCoord(p.Latitude))
}

// ParsePoint parses a WKT "POINT(lon lat)" string, tolerating case,
// whitespace and an optional "SRID=4326;" prefix. The parsed point is
// range-validated.
func ParsePoint(wkt string) (Point, error) {
	body, err := geometryBody(wkt, "POINT")
	if err != nil {
		return Point{}, err
	}

	p, err := parseCoordPair(body)
	if err != nil {
		return Point{}, fmt.Errorf("invalid POINT %q: %w", wkt, err)
	}

	if !p.Valid() {
		return Point{}, fmt.Errorf("point out of WGS84 bounds: lat=%v lng=%v", p.Latitude, p.Longitude)
	}

	return p, nil
}

// geometryBody strips an optional SRID prefix and the geometry keyword,
// returning the text between the outer parentheses.
func geometryBody(wkt, keyword string) (string, error) {
	s := strings.TrimSpace(wkt)

	if idx := strings.Index(s, ";"); idx >= 0 && strings.HasPrefix(strings.ToUpper(s), "SRID=") {
		s = strings.TrimSpace(s[idx+1:])
	}

	upper := strings.ToUpper(s)
	if !strings.HasPrefix(upper, keyword) {
		return "", fmt.Errorf("not a %s geometry: %q", keyword, wkt)
	}

	s = strings.TrimSpace(s[len(keyword):])
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return "", fmt.Errorf("malformed %s geometry: %q", keyword, wkt)
	}

	return s[1 : len(s)-1], nil
}

// parseCoordPair parses "lon lat" with arbitrary internal whitespace.
func parseCoordPair(pair string) (Point, error) {
	fields := strings.Fields(pair)
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("expected 2 coordinates, got %d", len(fields))
	}

	lng, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Point{}, fmt.Errorf("bad longitude %q: %w", fields[0], err)
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("bad latitude %q: %w", fields[1], err)
	}

	return Point{Latitude: lat, Longitude: lng}, nil
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
