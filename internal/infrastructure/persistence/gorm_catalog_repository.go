package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"mill_inventory_service/internal/domain/geo"
	"mill_inventory_service/internal/domain/mills"
	"mill_inventory_service/internal/domain/taxonomy"
	"mill_inventory_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCatalogRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCatalogRepository creates a new GORM-based CatalogRepository implementation
func NewGormCatalogRepository(db *gorm.DB, logger logger.Logger) (mills.CatalogRepository, error) {
	return &gormCatalogRepository{
		db:     db,
		logger: logger,
	}, nil
}

// publishedMillRow is the scan target of the published mill queries. Text
// columns come pre-coalesced by the SQL locale fallback.
type publishedMillRow struct {
	GeoRow
	ID           string
	Slug         string
	District     string
	Municipality string
	Parish       string

	Name         string
	Summary      string
	Description  string
	History      string
	ServedLocale string

	Typology              string
	ConstructionTechnique string
	RoofMaterial          string
	Mechanism             string
	Conservation          string
	GrindingPairs         int
	Epigraphy             string
	Annexes               string

	WaterLineSlug sql.NullString
	WaterLineName sql.NullString
}

// publishedMillSQL builds the published mill select. The requested locale is
// joined twice: once for the locale itself and once for the pt fallback, and
// COALESCE picks per column. served_locale reports which one won the name.
func (r *gormCatalogRepository) publishedMillSQL() string {
	return `SELECT c.id, c.slug, c.district, c.municipality, c.parish,
		` + pointSelect(r.db, "c") + `,
		COALESCE(t.name, dt.name, '') AS name,
		COALESCE(t.summary, dt.summary, '') AS summary,
		COALESCE(t.description, dt.description, '') AS description,
		COALESCE(t.history, dt.history, '') AS history,
		CASE WHEN t.construction_id IS NULL THEN 'pt' ELSE ? END AS served_locale,
		m.typology, m.construction_technique, m.roof_material, m.mechanism, m.conservation,
		m.grinding_pairs, m.epigraphy, m.annexes,
		wc.slug AS water_line_slug,
		COALESCE(wt.name, wdt.name) AS water_line_name
	FROM constructions c
	JOIN mill_data m ON m.construction_id = c.id
	LEFT JOIN construction_translations t ON t.construction_id = c.id AND t.locale = ?
	LEFT JOIN construction_translations dt ON dt.construction_id = c.id AND dt.locale = 'pt'
	LEFT JOIN constructions wc ON wc.id = m.water_line_id AND wc.status = 'published'
	LEFT JOIN construction_translations wt ON wt.construction_id = wc.id AND wt.locale = ?
	LEFT JOIN construction_translations wdt ON wdt.construction_id = wc.id AND wdt.locale = 'pt'
	WHERE c.status = 'published' AND c.kind = 'mill'`
}

func (r *gormCatalogRepository) ListPublishedMills(ctx context.Context, locale string) ([]*mills.PublishedMill, error) {
	var rows []*publishedMillRow
	err := r.db.WithContext(ctx).
		Raw(r.publishedMillSQL()+" ORDER BY name", locale, locale, locale).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch published mills: %w", err)
	}

	result := make([]*mills.PublishedMill, 0, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		mill, ok := r.toPublishedMill(row, locale)
		if !ok {
			continue
		}
		result = append(result, mill)
		ids = append(ids, mill.ID)
	}

	if err := r.attachImageURLs(ctx, ids, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *gormCatalogRepository) GetPublishedMillBySlug(ctx context.Context, slug, locale string) (*mills.PublishedMill, error) {
	var row publishedMillRow
	tx := r.db.WithContext(ctx).
		Raw(r.publishedMillSQL()+" AND c.slug = ?", locale, locale, locale, slug).
		Scan(&row)
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to fetch published mill: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, fmt.Errorf("published mill with slug %s not found", slug)
	}

	mill, ok := r.toPublishedMill(&row, locale)
	if !ok {
		return nil, fmt.Errorf("published mill with slug %s has no usable coordinates", slug)
	}

	if err := r.attachImageURLs(ctx, []string{mill.ID}, []*mills.PublishedMill{mill}); err != nil {
		return nil, err
	}

	return mill, nil
}

// millMarkerRow is shared by the marker and connected-mill queries.
type millMarkerRow struct {
	GeoRow
	ID           string
	Slug         string
	Name         string
	Typology     string
	Conservation string
}

func (r *gormCatalogRepository) millMarkerSQL() string {
	return `SELECT c.id, c.slug,
		` + pointSelect(r.db, "c") + `,
		COALESCE(t.name, dt.name, '') AS name,
		m.typology, m.conservation
	FROM constructions c
	JOIN mill_data m ON m.construction_id = c.id
	LEFT JOIN construction_translations t ON t.construction_id = c.id AND t.locale = ?
	LEFT JOIN construction_translations dt ON dt.construction_id = c.id AND dt.locale = 'pt'
	WHERE c.status = 'published' AND c.kind = 'mill'`
}

func (r *gormCatalogRepository) ListMillMarkers(ctx context.Context, locale string) ([]*mills.MillSummary, error) {
	var rows []*millMarkerRow
	err := r.db.WithContext(ctx).
		Raw(r.millMarkerSQL()+" ORDER BY name", locale).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mill markers: %w", err)
	}
	return r.toMillSummaries(rows), nil
}

func (r *gormCatalogRepository) ListConnectedMills(ctx context.Context, waterLineID, locale string) ([]*mills.MillSummary, error) {
	var rows []*millMarkerRow
	err := r.db.WithContext(ctx).
		Raw(r.millMarkerSQL()+" AND m.water_line_id = ? ORDER BY name", locale, waterLineID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch connected mills: %w", err)
	}
	return r.toMillSummaries(rows), nil
}

type waterLineRow struct {
	ID           string
	Slug         string
	Name         string
	SourceKind   string
	LengthMeters float64
	Summary      string
	Description  string
	ServedLocale string
	PathWKT      sql.NullString
}

func (r *gormCatalogRepository) waterLineSQL() string {
	return `SELECT c.id, c.slug,
		COALESCE(t.name, dt.name, '') AS name,
		COALESCE(t.summary, dt.summary, '') AS summary,
		COALESCE(t.description, dt.description, '') AS description,
		CASE WHEN t.construction_id IS NULL THEN 'pt' ELSE ? END AS served_locale,
		w.source_kind, w.length_meters,
		` + pathSelect(r.db, "w") + `
	FROM constructions c
	JOIN water_lines w ON w.construction_id = c.id
	LEFT JOIN construction_translations t ON t.construction_id = c.id AND t.locale = ?
	LEFT JOIN construction_translations dt ON dt.construction_id = c.id AND dt.locale = 'pt'
	WHERE c.status = 'published' AND c.kind = 'water_line'`
}

func (r *gormCatalogRepository) ListWaterLinePaths(ctx context.Context, locale string) ([]*mills.WaterLinePath, error) {
	var rows []*waterLineRow
	err := r.db.WithContext(ctx).
		Raw(r.waterLineSQL()+" ORDER BY name", locale, locale).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch water line paths: %w", err)
	}

	result := make([]*mills.WaterLinePath, 0, len(rows))
	for _, row := range rows {
		points, ok := r.parsePath(row)
		if !ok {
			continue
		}
		result = append(result, &mills.WaterLinePath{
			ID:         row.ID,
			Slug:       row.Slug,
			Name:       row.Name,
			SourceKind: row.SourceKind,
			Points:     points,
		})
	}

	return result, nil
}

func (r *gormCatalogRepository) GetWaterLineBySlug(ctx context.Context, slug, locale string) (*mills.WaterLineDetail, error) {
	var row waterLineRow
	tx := r.db.WithContext(ctx).
		Raw(r.waterLineSQL()+" AND c.slug = ?", locale, locale, slug).
		Scan(&row)
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to fetch water line: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, fmt.Errorf("published water line with slug %s not found", slug)
	}

	points, _ := r.parsePath(&row)

	connected, err := r.ListConnectedMills(ctx, row.ID, locale)
	if err != nil {
		return nil, err
	}

	return &mills.WaterLineDetail{
		WaterLinePath: mills.WaterLinePath{
			ID:         row.ID,
			Slug:       row.Slug,
			Name:       row.Name,
			SourceKind: row.SourceKind,
			Points:     points,
		},
		Locale:         row.ServedLocale,
		Summary:        row.Summary,
		Description:    row.Description,
		LengthMeters:   row.LengthMeters,
		ConnectedMills: connected,
	}, nil
}

type pocaMarkerRow struct {
	GeoRow
	ID   string
	Slug string
	Name string
}

func (r *gormCatalogRepository) ListPocaMarkers(ctx context.Context, locale string) ([]*mills.PocaMarker, error) {
	var rows []*pocaMarkerRow
	err := r.db.WithContext(ctx).Raw(`SELECT c.id, c.slug,
		`+pointSelect(r.db, "c")+`,
		COALESCE(t.name, dt.name, '') AS name
	FROM constructions c
	LEFT JOIN construction_translations t ON t.construction_id = c.id AND t.locale = ?
	LEFT JOIN construction_translations dt ON dt.construction_id = c.id AND dt.locale = 'pt'
	WHERE c.status = 'published' AND c.kind = 'poca'
	ORDER BY name`, locale).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch poca markers: %w", err)
	}

	result := make([]*mills.PocaMarker, 0, len(rows))
	for _, row := range rows {
		point, ok := row.point()
		if !ok {
			r.logger.Warn("Skipping poca ", row.Slug, " without usable coordinates")
			continue
		}
		result = append(result, &mills.PocaMarker{
			ID:        row.ID,
			Slug:      row.Slug,
			Name:      row.Name,
			Latitude:  point.Latitude,
			Longitude: point.Longitude,
		})
	}

	return result, nil
}

type searchableMillRow struct {
	GeoRow
	ID                    string
	Slug                  string
	Municipality          string
	Parish                string
	Typology              string
	ConstructionTechnique string
	RoofMaterial          string
	Mechanism             string
	Conservation          string
}

type searchableTextRow struct {
	ConstructionID string
	Locale         string
	Name           string
	Summary        string
	Description    string
}

func (r *gormCatalogRepository) ListSearchableMills(ctx context.Context) ([]*mills.SearchableMill, error) {
	var rows []*searchableMillRow
	err := r.db.WithContext(ctx).Raw(`SELECT c.id, c.slug, c.municipality, c.parish,
		` + pointSelect(r.db, "c") + `,
		m.typology, m.construction_technique, m.roof_material, m.mechanism, m.conservation
	FROM constructions c
	JOIN mill_data m ON m.construction_id = c.id
	WHERE c.status = 'published' AND c.kind = 'mill'
	ORDER BY c.slug`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch searchable mills: %w", err)
	}

	var textRows []*searchableTextRow
	err = r.db.WithContext(ctx).Raw(`SELECT t.construction_id, t.locale, t.name, t.summary, t.description
	FROM construction_translations t
	JOIN constructions c ON c.id = t.construction_id
	WHERE c.status = 'published' AND c.kind = 'mill'`).Scan(&textRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch searchable translations: %w", err)
	}

	texts := make(map[string]map[string]mills.SearchableText, len(rows))
	for _, tr := range textRows {
		if texts[tr.ConstructionID] == nil {
			texts[tr.ConstructionID] = make(map[string]mills.SearchableText)
		}
		texts[tr.ConstructionID][tr.Locale] = mills.SearchableText{
			Name:        tr.Name,
			Summary:     tr.Summary,
			Description: tr.Description,
		}
	}

	result := make([]*mills.SearchableMill, 0, len(rows))
	for _, row := range rows {
		point, ok := row.point()
		if !ok {
			r.logger.Warn("Skipping mill ", row.Slug, " without usable coordinates")
			continue
		}

		translations := texts[row.ID]
		if translations == nil {
			translations = make(map[string]mills.SearchableText)
		}

		result = append(result, &mills.SearchableMill{
			ID:                    row.ID,
			Slug:                  row.Slug,
			Latitude:              point.Latitude,
			Longitude:             point.Longitude,
			Municipality:          row.Municipality,
			Parish:                row.Parish,
			Typology:              row.Typology,
			ConstructionTechnique: row.ConstructionTechnique,
			RoofMaterial:          row.RoofMaterial,
			Mechanism:             row.Mechanism,
			Conservation:          row.Conservation,
			Translations:          translations,
		})
	}

	return result, nil
}

// toPublishedMill converts a scanned row, resolving taxonomy labels for the
// requested locale. Rows without a usable point are reported unusable.
func (r *gormCatalogRepository) toPublishedMill(row *publishedMillRow, locale string) (*mills.PublishedMill, bool) {
	point, ok := row.point()
	if !ok {
		r.logger.Warn("Skipping published mill ", row.Slug, " without usable coordinates")
		return nil, false
	}

	mill := &mills.PublishedMill{
		ID:           row.ID,
		Slug:         row.Slug,
		Locale:       row.ServedLocale,
		Name:         row.Name,
		Summary:      row.Summary,
		Description:  row.Description,
		History:      row.History,
		District:     row.District,
		Municipality: row.Municipality,
		Parish:       row.Parish,
		Latitude:     point.Latitude,
		Longitude:    point.Longitude,

		Typology:              taxonomyValue(taxonomy.FieldTypology, row.Typology, locale),
		ConstructionTechnique: taxonomyValue(taxonomy.FieldTechnique, row.ConstructionTechnique, locale),
		RoofMaterial:          taxonomyValue(taxonomy.FieldRoofMaterial, row.RoofMaterial, locale),
		Mechanism:             taxonomyValue(taxonomy.FieldMechanism, row.Mechanism, locale),
		Conservation:          taxonomyValue(taxonomy.FieldConservation, row.Conservation, locale),

		GrindingPairs: row.GrindingPairs,
		Epigraphy:     row.Epigraphy,
	}

	if row.Annexes != "" {
		var annexKeys []string
		if err := json.Unmarshal([]byte(row.Annexes), &annexKeys); err == nil {
			for _, key := range annexKeys {
				mill.Annexes = append(mill.Annexes, taxonomyValue(taxonomy.FieldAnnex, key, locale))
			}
		}
	}

	if row.WaterLineSlug.Valid {
		mill.WaterLineSlug = &row.WaterLineSlug.String
	}
	if row.WaterLineName.Valid {
		mill.WaterLineName = &row.WaterLineName.String
	}

	return mill, true
}

func (r *gormCatalogRepository) toMillSummaries(rows []*millMarkerRow) []*mills.MillSummary {
	result := make([]*mills.MillSummary, 0, len(rows))
	for _, row := range rows {
		point, ok := row.point()
		if !ok {
			r.logger.Warn("Skipping mill ", row.Slug, " without usable coordinates")
			continue
		}
		result = append(result, &mills.MillSummary{
			ID:           row.ID,
			Slug:         row.Slug,
			Name:         row.Name,
			Latitude:     point.Latitude,
			Longitude:    point.Longitude,
			Typology:     row.Typology,
			Conservation: row.Conservation,
		})
	}
	return result
}

// parsePath parses a water line's LINESTRING. Malformed or missing paths are
// logged and skipped, never fatal to a listing.
func (r *gormCatalogRepository) parsePath(row *waterLineRow) ([]geo.Point, bool) {
	if !row.PathWKT.Valid || row.PathWKT.String == "" {
		r.logger.Warn("Skipping water line ", row.Slug, " without a surveyed path")
		return nil, false
	}

	points, err := geo.ParseLineString(row.PathWKT.String)
	if err != nil {
		r.logger.Warn("Skipping water line ", row.Slug, " with malformed path: ", err)
		return nil, false
	}

	return points, true
}

// attachImageURLs loads gallery URLs for the given mills in one query.
func (r *gormCatalogRepository) attachImageURLs(ctx context.Context, ids []string, result []*mills.PublishedMill) error {
	if len(ids) == 0 {
		return nil
	}

	var rows []*struct {
		ConstructionID string
		URL            string
	}
	err := r.db.WithContext(ctx).Raw(`SELECT construction_id, url
	FROM construction_images
	WHERE construction_id IN ?
	ORDER BY construction_id, position`, ids).Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to fetch image urls: %w", err)
	}

	urls := make(map[string][]string, len(ids))
	for _, row := range rows {
		urls[row.ConstructionID] = append(urls[row.ConstructionID], row.URL)
	}

	for _, mill := range result {
		mill.ImageURLs = urls[mill.ID]
	}

	return nil
}

// taxonomyValue resolves one key to its localized label, keeping both.
func taxonomyValue(field, key, locale string) mills.TaxonomyValue {
	return mills.TaxonomyValue{Key: key, Label: taxonomy.Label(field, key, locale)}
}
