package geo

import (
	"fmt"
	"strings"
)

// ParseLineString parses a WKT "LINESTRING(lon lat, lon lat, ...)" string
// into ordered points. A line needs at least two vertices and every vertex
// must be inside WGS84 bounds.
func ParseLineString(wkt string) ([]Point, error) {
	body, err := geometryBody(wkt, "LINESTRING")
	if err != nil {
		return nil, err
	}

	parts := strings.Split(body, ",")
	if len(parts) < 2 {
		return nil, fmt.Errorf("LINESTRING needs at least 2 points, got %d", len(parts))
	}

	points := make([]Point, 0, len(parts))
	for i, part := range parts {
		p, err := parseCoordPair(part)
		if err != nil {
			return nil, fmt.Errorf("invalid LINESTRING vertex %d: %w", i, err)
		}
		if !p.Valid() {
			return nil, fmt.Errorf("LINESTRING vertex %d out of WGS84 bounds: lat=%v lng=%v", i, p.Latitude, p.Longitude)
		}
		points = append(points, p)
	}

	return points, nil
}

// FormatLineString renders points as WKT, the inverse of ParseLineString.
func FormatLineString(points []Point) (string, error) {
	if len(points) < 2 {
		return "", fmt.Errorf("LINESTRING needs at least 2 points, got %d", len(points))
	}

	pairs := make([]string, len(points))
	for i, p := range points {
		if !p.Valid() {
			return "", fmt.Errorf("vertex %d out of WGS84 bounds: lat=%v lng=%v", i, p.Latitude, p.Longitude)
		}
		pairs[i] = formatCoord(p.Longitude) + " " + formatCoord(p.Latitude)
	}

	return "LINESTRING(" + strings.Join(pairs, ", ") + ")", nil
}
