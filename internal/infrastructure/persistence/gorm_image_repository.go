package persistence

import (
	"context"
	"errors"
	"fmt"

	"mill_inventory_service/internal/domain/images"
	"mill_inventory_service/internal/infrastructure/persistence/models"
	"mill_inventory_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormImageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormImageRepository creates a new GORM-based ImageRepository implementation
func NewGormImageRepository(db *gorm.DB, logger logger.Logger) (images.ImageRepository, error) {
	return &gormImageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormImageRepository) Create(ctx context.Context, image *images.ImageMeta) error {
	if err := image.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ImageModel{}
	model.FromDomain(image)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create image metadata: %w", err)
	}

	r.logger.Info("Created image metadata with id ", image.ID)
	return nil
}

func (r *gormImageRepository) ListByConstruction(ctx context.Context, constructionID string) ([]*images.ImageMeta, error) {
	var modelList []*models.ImageModel
	err := r.db.WithContext(ctx).
		Where("construction_id = ?", constructionID).
		Order("position").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch images: %w", err)
	}

	domainList := make([]*images.ImageMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormImageRepository) GetByID(ctx context.Context, imageID string) (*images.ImageMeta, error) {
	var model models.ImageModel
	if err := r.db.WithContext(ctx).Where("id = ?", imageID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("image with ID %s not found", imageID)
		}
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormImageRepository) UpdatePositions(ctx context.Context, constructionID string, orderedIDs []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, imageID := range orderedIDs {
			result := tx.Model(&models.ImageModel{}).
				Where("id = ? AND construction_id = ?", imageID, constructionID).
				Update("position", position)
			if result.Error != nil {
				return fmt.Errorf("failed to update image position: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("image %s does not belong to construction %s", imageID, constructionID)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Reordered ", len(orderedIDs), " images for construction ", constructionID)
	return nil
}

func (r *gormImageRepository) DeleteByID(ctx context.Context, imageID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", imageID).Delete(&models.ImageModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete image metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("image with ID %s not found", imageID)
	}

	r.logger.Info("Deleted image metadata with id ", imageID)
	return nil
}
