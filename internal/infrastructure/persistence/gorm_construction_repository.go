package persistence

import (
	"context"
	"errors"
	"fmt"

	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/geo"
	"mill_inventory_service/internal/infrastructure/persistence/models"
	"mill_inventory_service/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormConstructionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormConstructionRepository creates a new GORM-based ConstructionRepository implementation
func NewGormConstructionRepository(db *gorm.DB, logger logger.Logger) (constructions.ConstructionRepository, error) {
	return &gormConstructionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormConstructionRepository) Create(ctx context.Context, record *constructions.Record) error {
	// Validate domain aggregate (business rules)
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &models.ConstructionModel{}
		model.FromDomain(record.Construction)

		// Geom is written separately so the column type survives on postgres
		if err := tx.Omit("geom").Create(model).Error; err != nil {
			return fmt.Errorf("failed to create construction: %w", err)
		}

		if err := setConstructionGeom(tx, record.Construction.ID, record.Construction.Point); err != nil {
			return fmt.Errorf("failed to write construction geometry: %w", err)
		}

		for _, translation := range record.Translations {
			trModel := &models.TranslationModel{}
			trModel.FromDomain(translation)
			if err := tx.Create(trModel).Error; err != nil {
				return fmt.Errorf("failed to create translation %s: %w", translation.Locale, err)
			}
		}

		return r.saveSpecialization(tx, record)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Created construction with id ", record.Construction.ID)
	return nil
}

func (r *gormConstructionRepository) GetByID(ctx context.Context, constructionID string) (*constructions.Record, error) {
	var model models.ConstructionModel
	if err := r.db.WithContext(ctx).Where("id = ?", constructionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("construction with ID %s not found", constructionID)
		}
		return nil, fmt.Errorf("failed to fetch construction: %w", err)
	}
	return r.assembleRecord(ctx, &model)
}

func (r *gormConstructionRepository) GetBySlug(ctx context.Context, slug string) (*constructions.Record, error) {
	var model models.ConstructionModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("construction with slug %s not found", slug)
		}
		return nil, fmt.Errorf("failed to fetch construction: %w", err)
	}
	return r.assembleRecord(ctx, &model)
}

func (r *gormConstructionRepository) List(ctx context.Context, query *constructions.ConstructionQuery) ([]*constructions.Record, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ConstructionModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ConstructionModel{})

	// Apply filters
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.Kind != "" {
		dbQuery = dbQuery.Where("kind = ?", query.Kind)
	}
	if query.Municipality != "" {
		dbQuery = dbQuery.Where("municipality = ?", query.Municipality)
	}
	if query.Text != "" {
		pattern := "%" + query.Text + "%"
		dbQuery = dbQuery.Where(
			"slug LIKE ? OR id IN (SELECT construction_id FROM construction_translations WHERE name LIKE ?)",
			pattern, pattern,
		)
	}
	if !query.UpdatedAfter.IsZero() {
		dbQuery = dbQuery.Where("updated_at >= ?", query.UpdatedAfter)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch constructions: %w", err)
	}

	records := make([]*constructions.Record, len(modelList))
	for i, model := range modelList {
		record, err := r.assembleRecord(ctx, model)
		if err != nil {
			return nil, err
		}
		records[i] = record
	}

	return records, nil
}

func (r *gormConstructionRepository) UpdateByID(ctx context.Context, record *constructions.Record) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &models.ConstructionModel{}
		model.FromDomain(record.Construction)

		// Geom and created_at are deliberately not in the column list
		result := tx.Model(&models.ConstructionModel{}).
			Where("id = ?", record.Construction.ID).
			Select("slug", "kind", "status", "district", "municipality", "parish", "updated_at").
			Updates(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update construction: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("construction with ID %s not found", record.Construction.ID)
		}

		if err := setConstructionGeom(tx, record.Construction.ID, record.Construction.Point); err != nil {
			return fmt.Errorf("failed to write construction geometry: %w", err)
		}

		return r.saveSpecialization(tx, record)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Updated construction with id ", record.Construction.ID)
	return nil
}

func (r *gormConstructionRepository) UpdateStatus(ctx context.Context, constructionID string, status constructions.Status) error {
	result := r.db.WithContext(ctx).Model(&models.ConstructionModel{}).
		Where("id = ?", constructionID).
		Update("status", string(status))
	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("construction with ID %s not found", constructionID)
	}

	r.logger.Info("Updated construction ", constructionID, " to status ", status)
	return nil
}

func (r *gormConstructionRepository) DeleteByID(ctx context.Context, constructionID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("construction_id = ?", constructionID).Delete(&models.TranslationModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete translations: %w", err)
		}
		if err := tx.Where("construction_id = ?", constructionID).Delete(&models.MillDataModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete mill data: %w", err)
		}
		if err := tx.Where("construction_id = ?", constructionID).Delete(&models.WaterLineModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete water line data: %w", err)
		}
		if err := tx.Where("construction_id = ?", constructionID).Delete(&models.PocaModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete poca data: %w", err)
		}
		if err := tx.Where("construction_id = ?", constructionID).Delete(&models.ImageModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete image metadata: %w", err)
		}

		// Mills on a deleted water line fall back to no water line
		if err := tx.Model(&models.MillDataModel{}).
			Where("water_line_id = ?", constructionID).
			Update("water_line_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach mills from water line: %w", err)
		}
		if err := tx.Model(&models.PocaModel{}).
			Where("water_line_id = ?", constructionID).
			Update("water_line_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach pocas from water line: %w", err)
		}

		result := tx.Where("id = ?", constructionID).Delete(&models.ConstructionModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete construction: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("construction with ID %s not found", constructionID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted construction with id ", constructionID)
	return nil
}

func (r *gormConstructionRepository) UpsertTranslation(ctx context.Context, translation *constructions.Translation) error {
	if err := translation.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TranslationModel{}
	model.FromDomain(translation)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "construction_id"}, {Name: "locale"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "summary", "description", "history"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert translation: %w", err)
	}

	r.logger.Info("Upserted ", translation.Locale, " translation for construction ", translation.ConstructionID)
	return nil
}

func (r *gormConstructionRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ConstructionModel{}).
		Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

// assembleRecord loads translations, the specialization and the geometry for
// one construction row.
func (r *gormConstructionRepository) assembleRecord(ctx context.Context, model *models.ConstructionModel) (*constructions.Record, error) {
	record := &constructions.Record{Construction: model.ToDomain()}

	point, err := r.loadPoint(ctx, model.ID)
	if err != nil {
		return nil, err
	}
	record.Construction.Point = point

	var trModels []*models.TranslationModel
	if err := r.db.WithContext(ctx).
		Where("construction_id = ?", model.ID).
		Order("locale").
		Find(&trModels).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch translations: %w", err)
	}
	for _, trModel := range trModels {
		record.Translations = append(record.Translations, trModel.ToDomain())
	}

	switch model.Kind {
	case constructions.KindMill:
		var mill models.MillDataModel
		if err := r.db.WithContext(ctx).Where("construction_id = ?", model.ID).First(&mill).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch mill data: %w", err)
		}
		record.Mill = mill.ToDomain()
	case constructions.KindWaterLine:
		var waterLine models.WaterLineModel
		if err := r.db.WithContext(ctx).Where("construction_id = ?", model.ID).First(&waterLine).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch water line data: %w", err)
		}
		record.WaterLine = waterLine.ToDomain()

		path, err := r.loadPath(ctx, model.ID)
		if err != nil {
			return nil, err
		}
		record.WaterLine.Path = path
	case constructions.KindPoca:
		var poca models.PocaModel
		if err := r.db.WithContext(ctx).Where("construction_id = ?", model.ID).First(&poca).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch poca data: %w", err)
		}
		record.Poca = poca.ToDomain()
	}

	return record, nil
}

// saveSpecialization upserts the kind-specific row inside the caller's
// transaction. The water line path goes through setWaterLinePath.
func (r *gormConstructionRepository) saveSpecialization(tx *gorm.DB, record *constructions.Record) error {
	switch record.Construction.Kind {
	case constructions.KindMill:
		model := &models.MillDataModel{}
		model.FromDomain(record.Mill)
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "construction_id"}},
			UpdateAll: true,
		}).Create(model).Error; err != nil {
			return fmt.Errorf("failed to save mill data: %w", err)
		}
	case constructions.KindWaterLine:
		model := &models.WaterLineModel{}
		model.FromDomain(record.WaterLine)
		if err := tx.Omit("path").Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "construction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"source_kind", "length_meters"}),
		}).Create(model).Error; err != nil {
			return fmt.Errorf("failed to save water line data: %w", err)
		}
		if err := setWaterLinePath(tx, record.Construction.ID, record.WaterLine.Path); err != nil {
			return fmt.Errorf("failed to write water line path: %w", err)
		}
	case constructions.KindPoca:
		model := &models.PocaModel{}
		model.FromDomain(record.Poca)
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "construction_id"}},
			UpdateAll: true,
		}).Create(model).Error; err != nil {
			return fmt.Errorf("failed to save poca data: %w", err)
		}
	}
	return nil
}

// loadPoint extracts one construction's point with the dialect-appropriate
// mechanism. A row without geometry yields nil, not an error.
func (r *gormConstructionRepository) loadPoint(ctx context.Context, constructionID string) (*geo.Point, error) {
	var row GeoRow
	err := r.db.WithContext(ctx).Raw(
		"SELECT "+pointSelect(r.db, "c")+" FROM constructions c WHERE c.id = ?",
		constructionID,
	).Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to extract coordinates: %w", err)
	}

	p, ok := row.point()
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// loadPath extracts one water line's path. A row without a path yields nil.
func (r *gormConstructionRepository) loadPath(ctx context.Context, constructionID string) ([]geo.Point, error) {
	var row struct {
		PathWKT *string
	}
	err := r.db.WithContext(ctx).Raw(
		"SELECT "+pathSelect(r.db, "w")+" FROM water_lines w WHERE w.construction_id = ?",
		constructionID,
	).Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to extract water line path: %w", err)
	}

	if row.PathWKT == nil || *row.PathWKT == "" {
		return nil, nil
	}

	points, err := geo.ParseLineString(*row.PathWKT)
	if err != nil {
		r.logger.Warn("Skipping malformed water line path for construction ", constructionID, ": ", err)
		return nil, nil
	}
	return points, nil
}
