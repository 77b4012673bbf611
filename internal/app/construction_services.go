package app

import (
	"context"
	"fmt"
	"time"

	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/images"
	"mill_inventory_service/internal/pkg/logger"
	"mill_inventory_service/internal/pkg/strutil"

	"github.com/google/uuid"
)

// CatalogInvalidator drops cached public catalog responses after a change
// that affects published records. A nil invalidator disables the hook.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

// constructionService implements the AdminService interface for the
// dashboard workflow.
type constructionService struct {
	constructionRepo constructions.ConstructionRepository
	invalidator      CatalogInvalidator
	imageService     images.ImageService
	logger           logger.Logger
}

// NewConstructionService creates a new instance of AdminService. A nil
// imageService skips blob cleanup on delete; the metadata rows are removed
// with the construction either way.
func NewConstructionService(
	constructionRepo constructions.ConstructionRepository,
	invalidator CatalogInvalidator,
	imageService images.ImageService,
	logger logger.Logger,
) (constructions.AdminService, error) {
	return &constructionService{
		constructionRepo: constructionRepo,
		invalidator:      invalidator,
		imageService:     imageService,
		logger:           logger,
	}, nil
}

func (s *constructionService) Create(ctx context.Context, record *constructions.Record) (*constructions.Record, error) {
	if record.Construction == nil {
		return nil, fmt.Errorf("record carries no construction")
	}

	now := time.Now().UTC()
	record.Construction.ID = uuid.NewString()
	record.Construction.Status = constructions.StatusDraft
	record.Construction.CreatedAt = now
	record.Construction.UpdatedAt = now

	for _, translation := range record.Translations {
		if !constructions.IsSupportedLocale(translation.Locale) {
			return nil, fmt.Errorf("unsupported locale: %s", translation.Locale)
		}
		translation.ConstructionID = record.Construction.ID
	}

	s.stampSpecialization(record)

	if record.Construction.Slug == "" {
		slug, err := s.deriveSlug(ctx, record)
		if err != nil {
			return nil, err
		}
		record.Construction.Slug = slug
	} else {
		exists, err := s.constructionRepo.SlugExists(ctx, record.Construction.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("slug %s is already taken", record.Construction.Slug)
		}
	}

	if err := s.constructionRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return s.constructionRepo.GetByID(ctx, record.Construction.ID)
}

func (s *constructionService) GetByID(ctx context.Context, constructionID string) (*constructions.Record, error) {
	return s.constructionRepo.GetByID(ctx, constructionID)
}

func (s *constructionService) List(ctx context.Context, query *constructions.ConstructionQuery) ([]*constructions.Record, error) {
	return s.constructionRepo.List(ctx, query)
}

func (s *constructionService) UpdateByID(ctx context.Context, record *constructions.Record) (*constructions.Record, error) {
	if record.Construction == nil || record.Construction.ID == "" {
		return nil, fmt.Errorf("record carries no construction id")
	}

	existing, err := s.constructionRepo.GetByID(ctx, record.Construction.ID)
	if err != nil {
		return nil, err
	}

	// Kind, status and slug are fixed after creation; the workflow owns status
	record.Construction.Kind = existing.Construction.Kind
	record.Construction.Status = existing.Construction.Status
	record.Construction.Slug = existing.Construction.Slug
	record.Construction.CreatedAt = existing.Construction.CreatedAt
	record.Construction.UpdatedAt = time.Now().UTC()
	record.Translations = existing.Translations

	s.stampSpecialization(record)

	if err := s.constructionRepo.UpdateByID(ctx, record); err != nil {
		return nil, err
	}

	if existing.Construction.Status == constructions.StatusPublished {
		s.invalidateCatalog(ctx)
	}

	return s.constructionRepo.GetByID(ctx, record.Construction.ID)
}

func (s *constructionService) DeleteByID(ctx context.Context, constructionID string) error {
	existing, err := s.constructionRepo.GetByID(ctx, constructionID)
	if err != nil {
		return err
	}

	s.purgeGallery(ctx, constructionID)

	if err := s.constructionRepo.DeleteByID(ctx, constructionID); err != nil {
		return err
	}

	if existing.Construction.Status == constructions.StatusPublished {
		s.invalidateCatalog(ctx)
	}

	return nil
}

func (s *constructionService) Transition(ctx context.Context, constructionID string, target constructions.Status) (*constructions.Record, error) {
	record, err := s.constructionRepo.GetByID(ctx, constructionID)
	if err != nil {
		return nil, err
	}

	current := record.Construction.Status
	if !current.CanTransitionTo(target) {
		return nil, fmt.Errorf("cannot transition construction %s from %s to %s", constructionID, current, target)
	}

	if target == constructions.StatusPublished {
		if err := record.ReadyToPublish(); err != nil {
			return nil, fmt.Errorf("construction %s is not publishable: %w", constructionID, err)
		}
	}

	if err := s.constructionRepo.UpdateStatus(ctx, constructionID, target); err != nil {
		return nil, err
	}

	// Entering or leaving published state changes the public catalog
	if target == constructions.StatusPublished || current == constructions.StatusPublished {
		s.invalidateCatalog(ctx)
	}

	s.logger.Info("Transitioned construction ", constructionID, " from ", current, " to ", target)
	return s.constructionRepo.GetByID(ctx, constructionID)
}

func (s *constructionService) UpsertTranslation(ctx context.Context, constructionID string, translation *constructions.Translation) error {
	if !constructions.IsSupportedLocale(translation.Locale) {
		return fmt.Errorf("unsupported locale: %s", translation.Locale)
	}

	record, err := s.constructionRepo.GetByID(ctx, constructionID)
	if err != nil {
		return err
	}

	translation.ConstructionID = constructionID
	if err := s.constructionRepo.UpsertTranslation(ctx, translation); err != nil {
		return err
	}

	if record.Construction.Status == constructions.StatusPublished {
		s.invalidateCatalog(ctx)
	}

	return nil
}

// deriveSlug builds a unique slug from the pt name, suffixing a counter on
// collision: moinho-da-achada, moinho-da-achada-2, ...
func (s *constructionService) deriveSlug(ctx context.Context, record *constructions.Record) (string, error) {
	translation := record.Translation(constructions.DefaultLocale)
	if translation == nil || translation.Name == "" {
		return "", fmt.Errorf("cannot derive a slug without a %s translation name", constructions.DefaultLocale)
	}

	base := strutil.Slugify(translation.Name)
	if base == "" {
		return "", fmt.Errorf("translation name %q yields an empty slug", translation.Name)
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := s.constructionRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// stampSpecialization propagates the construction id into the specialization.
func (s *constructionService) stampSpecialization(record *constructions.Record) {
	id := record.Construction.ID
	if record.Mill != nil {
		record.Mill.ConstructionID = id
	}
	if record.WaterLine != nil {
		record.WaterLine.ConstructionID = id
	}
	if record.Poca != nil {
		record.Poca.ConstructionID = id
	}
}

// purgeGallery removes a construction's stored blobs before the metadata
// rows go away with the record. Blob failures are logged, not fatal: the
// delete must not be blocked by an unreachable store.
func (s *constructionService) purgeGallery(ctx context.Context, constructionID string) {
	if s.imageService == nil {
		return
	}

	metas, err := s.imageService.ListByConstruction(ctx, constructionID)
	if err != nil {
		s.logger.Warn("Failed to list gallery of construction ", constructionID, ": ", err)
		return
	}

	for _, meta := range metas {
		if err := s.imageService.DeleteByID(ctx, constructionID, meta.ID); err != nil {
			s.logger.Warn("Failed to delete image ", meta.ID, ": ", err)
		}
	}
}

func (s *constructionService) invalidateCatalog(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx); err != nil {
		s.logger.Warn("Failed to invalidate catalog cache: ", err)
	}
}
