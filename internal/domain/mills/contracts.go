package mills

import "context"

// CatalogService is the public read surface: everything it returns is
// filtered to published records, translated with pt fallback, and
// coordinate-validated.
type CatalogService interface {
	// PublishedMills returns the full published mill listing for a locale.
	PublishedMills(ctx context.Context, locale string) ([]*PublishedMill, error)

	// PublishedMillBySlug returns one published mill or an error when the
	// slug is unknown or not published.
	PublishedMillBySlug(ctx context.Context, slug, locale string) (*PublishedMill, error)

	// MapData returns the markers and polylines behind the public map.
	// Records with invalid coordinates are skipped, not fatal.
	MapData(ctx context.Context, locale string) (*MapData, error)

	// WaterLineBySlug returns one published water line with its parsed path
	// and connected published mills.
	WaterLineBySlug(ctx context.Context, slug, locale string) (*WaterLineDetail, error)

	// ConnectedMills returns the published mills attached to a water line.
	ConnectedMills(ctx context.Context, waterLineID, locale string) ([]*MillSummary, error)

	// SearchableMills returns all published mills with translations in every
	// locale, for client-side cross-language filtering.
	SearchableMills(ctx context.Context) ([]*SearchableMill, error)

	// Search filters published mills across all locales, diacritic- and
	// case-insensitively, returning hits with text in the requested locale.
	Search(ctx context.Context, query, locale string) ([]*SearchResult, error)
}

// CatalogRepository is the query layer under the catalog service. Locale
// fallback to pt happens inside the SQL; coordinate extraction uses PostGIS
// on postgres and WKT parsing on sqlite.
type CatalogRepository interface {
	ListPublishedMills(ctx context.Context, locale string) ([]*PublishedMill, error)
	GetPublishedMillBySlug(ctx context.Context, slug, locale string) (*PublishedMill, error)
	ListMillMarkers(ctx context.Context, locale string) ([]*MillSummary, error)
	ListWaterLinePaths(ctx context.Context, locale string) ([]*WaterLinePath, error)
	ListPocaMarkers(ctx context.Context, locale string) ([]*PocaMarker, error)
	GetWaterLineBySlug(ctx context.Context, slug, locale string) (*WaterLineDetail, error)
	ListConnectedMills(ctx context.Context, waterLineID, locale string) ([]*MillSummary, error)
	ListSearchableMills(ctx context.Context) ([]*SearchableMill, error)
}
