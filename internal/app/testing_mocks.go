//go:build unit
// +build unit

package app

import (
	"context"
	"io"
	"mime/multipart"

	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/images"
	"mill_inventory_service/internal/domain/mills"

	"github.com/stretchr/testify/mock"
)

// MockConstructionRepository is a mock implementation of ConstructionRepository
type MockConstructionRepository struct {
	mock.Mock
}

func (m *MockConstructionRepository) Create(ctx context.Context, record *constructions.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockConstructionRepository) GetByID(ctx context.Context, constructionID string) (*constructions.Record, error) {
	args := m.Called(ctx, constructionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*constructions.Record), args.Error(1)
}

func (m *MockConstructionRepository) GetBySlug(ctx context.Context, slug string) (*constructions.Record, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*constructions.Record), args.Error(1)
}

func (m *MockConstructionRepository) List(ctx context.Context, query *constructions.ConstructionQuery) ([]*constructions.Record, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*constructions.Record), args.Error(1)
}

func (m *MockConstructionRepository) UpdateByID(ctx context.Context, record *constructions.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockConstructionRepository) UpdateStatus(ctx context.Context, constructionID string, status constructions.Status) error {
	args := m.Called(ctx, constructionID, status)
	return args.Error(0)
}

func (m *MockConstructionRepository) DeleteByID(ctx context.Context, constructionID string) error {
	args := m.Called(ctx, constructionID)
	return args.Error(0)
}

func (m *MockConstructionRepository) UpsertTranslation(ctx context.Context, translation *constructions.Translation) error {
	args := m.Called(ctx, translation)
	return args.Error(0)
}

func (m *MockConstructionRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

// MockCatalogRepository is a mock implementation of CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListPublishedMills(ctx context.Context, locale string) ([]*mills.PublishedMill, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mills.PublishedMill), args.Error(1)
}

func (m *MockCatalogRepository) GetPublishedMillBySlug(ctx context.Context, slug, locale string) (*mills.PublishedMill, error) {
	args := m.Called(ctx, slug, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mills.PublishedMill), args.Error(1)
}

func (m *MockCatalogRepository) ListMillMarkers(ctx context.Context, locale string) ([]*mills.MillSummary, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mills.MillSummary), args.Error(1)
}

func (m *MockCatalogRepository) ListWaterLinePaths(ctx context.Context, locale string) ([]*mills.WaterLinePath, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mills.WaterLinePath), args.Error(1)
}

func (m *MockCatalogRepository) ListPocaMarkers(ctx context.Context, locale string) ([]*mills.PocaMarker, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mills.PocaMarker), args.Error(1)
}

func (m *MockCatalogRepository) GetWaterLineBySlug(ctx context.Context, slug, locale string) (*mills.WaterLineDetail, error) {
	args := m.Called(ctx, slug, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mills.WaterLineDetail), args.Error(1)
}

func (m *MockCatalogRepository) ListConnectedMills(ctx context.Context, waterLineID, locale string) ([]*mills.MillSummary, error) {
	args := m.Called(ctx, waterLineID, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mills.MillSummary), args.Error(1)
}

func (m *MockCatalogRepository) ListSearchableMills(ctx context.Context) ([]*mills.SearchableMill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mills.SearchableMill), args.Error(1)
}

// MockImageRepository is a mock implementation of ImageRepository
type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, image *images.ImageMeta) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockImageRepository) ListByConstruction(ctx context.Context, constructionID string) ([]*images.ImageMeta, error) {
	args := m.Called(ctx, constructionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*images.ImageMeta), args.Error(1)
}

func (m *MockImageRepository) GetByID(ctx context.Context, imageID string) (*images.ImageMeta, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*images.ImageMeta), args.Error(1)
}

func (m *MockImageRepository) UpdatePositions(ctx context.Context, constructionID string, orderedIDs []string) error {
	args := m.Called(ctx, constructionID, orderedIDs)
	return args.Error(0)
}

func (m *MockImageRepository) DeleteByID(ctx context.Context, imageID string) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

// MockImageStore is a mock implementation of ImageStore
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Upload(ctx context.Context, blobName, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, blobName, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) Delete(ctx context.Context, blobName string) error {
	args := m.Called(ctx, blobName)
	return args.Error(0)
}

// MockImageService is a mock implementation of ImageService
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, constructionID string, form *multipart.Form) ([]*images.ImageMeta, error) {
	args := m.Called(ctx, constructionID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*images.ImageMeta), args.Error(1)
}

func (m *MockImageService) ListByConstruction(ctx context.Context, constructionID string) ([]*images.ImageMeta, error) {
	args := m.Called(ctx, constructionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*images.ImageMeta), args.Error(1)
}

func (m *MockImageService) Reorder(ctx context.Context, constructionID string, orderedIDs []string) error {
	args := m.Called(ctx, constructionID, orderedIDs)
	return args.Error(0)
}

func (m *MockImageService) DeleteByID(ctx context.Context, constructionID, imageID string) error {
	args := m.Called(ctx, constructionID, imageID)
	return args.Error(0)
}

// MockCatalogInvalidator is a mock implementation of CatalogInvalidator
type MockCatalogInvalidator struct {
	mock.Mock
}

func (m *MockCatalogInvalidator) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
