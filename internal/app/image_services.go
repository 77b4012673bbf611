package app

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"time"

	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/images"
	"mill_inventory_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// imageService implements the ImageService interface: files go to object
// storage, their metadata and gallery order to the database.
type imageService struct {
	imageRepo        images.ImageRepository
	imageStore       images.ImageStore
	constructionRepo constructions.ConstructionRepository
	logger           logger.Logger
}

// NewImageService creates a new instance of ImageService
func NewImageService(
	imageRepo images.ImageRepository,
	imageStore images.ImageStore,
	constructionRepo constructions.ConstructionRepository,
	logger logger.Logger,
) (images.ImageService, error) {
	return &imageService{
		imageRepo:        imageRepo,
		imageStore:       imageStore,
		constructionRepo: constructionRepo,
		logger:           logger,
	}, nil
}

func (s *imageService) Upload(ctx context.Context, constructionID string, form *multipart.Form) ([]*images.ImageMeta, error) {
	if form == nil || len(form.File["files"]) == 0 {
		return nil, fmt.Errorf("no files provided in upload request")
	}

	if _, err := s.constructionRepo.GetByID(ctx, constructionID); err != nil {
		return nil, err
	}

	existing, err := s.imageRepo.ListByConstruction(ctx, constructionID)
	if err != nil {
		return nil, err
	}
	position := nextPosition(existing)

	uploaded := make([]*images.ImageMeta, 0, len(form.File["files"]))
	for _, header := range form.File["files"] {
		meta, err := s.uploadOne(ctx, constructionID, header, position)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, meta)
		position++
	}

	return uploaded, nil
}

func (s *imageService) uploadOne(ctx context.Context, constructionID string, header *multipart.FileHeader, position int) (*images.ImageMeta, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file %s: %w", header.Filename, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Warn("Failed to close uploaded file ", header.Filename, ": ", err)
		}
	}()

	id := uuid.NewString()
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(header.Filename))
	}

	url, err := s.imageStore.Upload(ctx, storedBlobName(constructionID, id, header.Filename), contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to store file %s: %w", header.Filename, err)
	}

	meta := &images.ImageMeta{
		ID:              id,
		ConstructionID:  constructionID,
		FileName:        header.Filename,
		ContentType:     contentType,
		SizeBytes:       header.Size,
		Position:        position,
		URL:             url,
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.imageRepo.Create(ctx, meta); err != nil {
		// Metadata failed; drop the orphaned blob before reporting
		if delErr := s.imageStore.Delete(ctx, storedBlobName(constructionID, id, header.Filename)); delErr != nil {
			s.logger.Warn("Failed to clean up orphaned blob for ", header.Filename, ": ", delErr)
		}
		return nil, fmt.Errorf("failed to save image metadata for %s: %w", header.Filename, err)
	}

	return meta, nil
}

func (s *imageService) ListByConstruction(ctx context.Context, constructionID string) ([]*images.ImageMeta, error) {
	return s.imageRepo.ListByConstruction(ctx, constructionID)
}

func (s *imageService) Reorder(ctx context.Context, constructionID string, orderedIDs []string) error {
	existing, err := s.imageRepo.ListByConstruction(ctx, constructionID)
	if err != nil {
		return err
	}

	if len(orderedIDs) != len(existing) {
		return fmt.Errorf("reorder expects %d image ids, got %d", len(existing), len(orderedIDs))
	}

	known := make(map[string]bool, len(existing))
	for _, meta := range existing {
		known[meta.ID] = true
	}
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !known[id] {
			return fmt.Errorf("image %s does not belong to construction %s", id, constructionID)
		}
		if seen[id] {
			return fmt.Errorf("image %s appears twice in the new order", id)
		}
		seen[id] = true
	}

	return s.imageRepo.UpdatePositions(ctx, constructionID, orderedIDs)
}

func (s *imageService) DeleteByID(ctx context.Context, constructionID, imageID string) error {
	meta, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if meta.ConstructionID != constructionID {
		return fmt.Errorf("image %s does not belong to construction %s", imageID, constructionID)
	}

	if err := s.imageStore.Delete(ctx, storedBlobName(meta.ConstructionID, meta.ID, meta.FileName)); err != nil {
		return err
	}

	return s.imageRepo.DeleteByID(ctx, imageID)
}

// storedBlobName is the storage layout: one folder per construction, blobs
// keyed by image id so renamed uploads never collide.
func storedBlobName(constructionID, imageID, fileName string) string {
	return constructionID + "/" + imageID + filepath.Ext(fileName)
}

func nextPosition(existing []*images.ImageMeta) int {
	next := 0
	for _, meta := range existing {
		if meta.Position >= next {
			next = meta.Position + 1
		}
	}
	return next
}
