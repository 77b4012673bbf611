package mills

import "mill_inventory_service/internal/domain/geo"

// PublishedMill is the full public view of one published mill in one locale.
// Taxonomy fields carry both the stable key and the label resolved for the
// requested locale.
type PublishedMill struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Locale       string `json:"locale"` // locale actually served after fallback
	Name         string `json:"name"`
	Summary      string `json:"summary,omitempty"`
	Description  string `json:"description,omitempty"`
	History      string `json:"history,omitempty"`
	District     string `json:"district,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	Parish       string `json:"parish,omitempty"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Typology              TaxonomyValue `json:"typology"`
	ConstructionTechnique TaxonomyValue `json:"constructionTechnique"`
	RoofMaterial          TaxonomyValue `json:"roofMaterial"`
	Mechanism             TaxonomyValue `json:"mechanism"`
	Conservation          TaxonomyValue `json:"conservation"`

	GrindingPairs int             `json:"grindingPairs"`
	Epigraphy     string          `json:"epigraphy,omitempty"`
	Annexes       []TaxonomyValue `json:"annexes,omitempty"`

	WaterLineSlug *string `json:"waterLineSlug,omitempty"`
	WaterLineName *string `json:"waterLineName,omitempty"`

	ImageURLs []string `json:"imageUrls,omitempty"`
}

// TaxonomyValue pairs a vocabulary key with its localized label.
type TaxonomyValue struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// MillSummary is the reduced mill view used for markers and connected-mill
// listings.
type MillSummary struct {
	ID           string  `json:"id"`
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Typology     string  `json:"typology"`
	Conservation string  `json:"conservation"`
}

// WaterLinePath is one published water line rendered as a polyline.
type WaterLinePath struct {
	ID         string      `json:"id"`
	Slug       string      `json:"slug"`
	Name       string      `json:"name"`
	SourceKind string      `json:"sourceKind"`
	Points     []geo.Point `json:"points"`
}

// WaterLineDetail is the public view of one water line with its connected
// published mills.
type WaterLineDetail struct {
	WaterLinePath
	Locale         string         `json:"locale"`
	Summary        string         `json:"summary,omitempty"`
	Description    string         `json:"description,omitempty"`
	LengthMeters   float64        `json:"lengthMeters,omitempty"`
	ConnectedMills []*MillSummary `json:"connectedMills"`
}

// PocaMarker is one published poça rendered as a map marker.
type PocaMarker struct {
	ID        string  `json:"id"`
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapData is the payload behind the public map: every published record with
// usable coordinates.
type MapData struct {
	Mills      []*MillSummary   `json:"mills"`
	WaterLines []*WaterLinePath `json:"waterLines"`
	Pocas      []*PocaMarker    `json:"pocas"`
}

// SearchableText is the translated text of one mill in one locale.
type SearchableText struct {
	Name        string `json:"name"`
	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
}

// SearchableMill carries every locale's text plus taxonomy keys so clients
// (or the server-side Search) can match a query written in any language.
type SearchableMill struct {
	ID                    string                    `json:"id"`
	Slug                  string                    `json:"slug"`
	Latitude              float64                   `json:"latitude"`
	Longitude             float64                   `json:"longitude"`
	Municipality          string                    `json:"municipality,omitempty"`
	Parish                string                    `json:"parish,omitempty"`
	Typology              string                    `json:"typology"`
	ConstructionTechnique string                    `json:"constructionTechnique"`
	RoofMaterial          string                    `json:"roofMaterial"`
	Mechanism             string                    `json:"mechanism"`
	Conservation          string                    `json:"conservation"`
	Translations          map[string]SearchableText `json:"translations"`
}

// SearchResult is one search hit with the translation served in the
// requested locale and the locale the match was found in.
type SearchResult struct {
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Summary      string  `json:"summary,omitempty"`
	Municipality string  `json:"municipality,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	MatchedIn    string  `json:"matchedIn"`
}
