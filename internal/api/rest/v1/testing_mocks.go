//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/images"
	"mill_inventory_service/internal/domain/mills"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) PublishedMills(ctx context.Context, locale string) ([]*mills.PublishedMill, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mills.PublishedMill), args.Error(1)
}

func (m *MockCatalogService) PublishedMillBySlug(ctx context.Context, slug, locale string) (*mills.PublishedMill, error) {
	args := m.Called(ctx, slug, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mills.PublishedMill), args.Error(1)
}

func (m *MockCatalogService) MapData(ctx context.Context, locale string) (*mills.MapData, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mills.MapData), args.Error(1)
}

func (m *MockCatalogService) WaterLineBySlug(ctx context.Context, slug, locale string) (*mills.WaterLineDetail, error) {
	args := m.Called(ctx, slug, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mills.WaterLineDetail), args.Error(1)
}

func (m *MockCatalogService) ConnectedMills(ctx context.Context, waterLineID, locale string) ([]*mills.MillSummary, error) {
	args := m.Called(ctx, waterLineID, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mills.MillSummary), args.Error(1)
}

func (m *MockCatalogService) SearchableMills(ctx context.Context) ([]*mills.SearchableMill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mills.SearchableMill), args.Error(1)
}

func (m *MockCatalogService) Search(ctx context.Context, query, locale string) ([]*mills.SearchResult, error) {
	args := m.Called(ctx, query, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mills.SearchResult), args.Error(1)
}

// MockAdminService is a mock implementation of AdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Create(ctx context.Context, record *constructions.Record) (*constructions.Record, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*constructions.Record), args.Error(1)
}

func (m *MockAdminService) GetByID(ctx context.Context, constructionID string) (*constructions.Record, error) {
	args := m.Called(ctx, constructionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*constructions.Record), args.Error(1)
}

func (m *MockAdminService) List(ctx context.Context, query *constructions.ConstructionQuery) ([]*constructions.Record, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*constructions.Record), args.Error(1)
}

func (m *MockAdminService) UpdateByID(ctx context.Context, record *constructions.Record) (*constructions.Record, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*constructions.Record), args.Error(1)
}

func (m *MockAdminService) DeleteByID(ctx context.Context, constructionID string) error {
	args := m.Called(ctx, constructionID)
	return args.Error(0)
}

func (m *MockAdminService) Transition(ctx context.Context, constructionID string, target constructions.Status) (*constructions.Record, error) {
	args := m.Called(ctx, constructionID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*constructions.Record), args.Error(1)
}

func (m *MockAdminService) UpsertTranslation(ctx context.Context, constructionID string, translation *constructions.Translation) error {
	args := m.Called(ctx, constructionID, translation)
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
