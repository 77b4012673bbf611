//go:build unit
// +build unit

package app

import (
	"context"
	"testing"
	"time"

	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/geo"
	"mill_inventory_service/internal/domain/images"
	"mill_inventory_service/internal/domain/mills"
	"mill_inventory_service/internal/domain/taxonomy"
	"mill_inventory_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConstructionService(t *testing.T, repo *MockConstructionRepository, invalidator CatalogInvalidator) constructions.AdminService {
	t.Helper()

	service, err := NewConstructionService(repo, invalidator, nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return service
}

func draftMillRecord(id string) *constructions.Record {
	return &constructions.Record{
		Construction: &constructions.Construction{
			ID:           id,
			Slug:         "moinho-da-achada",
			Kind:         constructions.KindMill,
			Status:       constructions.StatusDraft,
			Municipality: "Santana",
			Point:        &geo.Point{Latitude: 32.79, Longitude: -16.89},
			CreatedAt:    time.Now().UTC(),
			UpdatedAt:    time.Now().UTC(),
		},
		Translations: []*constructions.Translation{
			{ConstructionID: id, Locale: "pt", Name: "Moinho da Achada"},
		},
		Mill: &mills.MillData{
			ConstructionID:        id,
			Typology:              taxonomy.TypologyWatermillHorizontal,
			ConstructionTechnique: taxonomy.TechniqueDryStone,
			RoofMaterial:          taxonomy.RoofTile,
			Mechanism:             taxonomy.MechanismHorizontalWheel,
			Conservation:          taxonomy.ConservationRuin,
		},
	}
}

func TestConstructionService_Create_DerivesSlugFromPtName(t *testing.T) {
	repo := new(MockConstructionRepository)
	service := newConstructionService(t, repo, nil)

	record := draftMillRecord("")
	record.Construction.Slug = ""

	repo.On("SlugExists", mock.Anything, "moinho-da-achada").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(record, nil)

	created, err := service.Create(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, "moinho-da-achada", created.Construction.Slug)
	assert.Equal(t, constructions.StatusDraft, created.Construction.Status)
	assert.NotEmpty(t, record.Construction.ID)
	assert.Equal(t, record.Construction.ID, record.Mill.ConstructionID)
}

func TestConstructionService_Create_SlugCollisionGetsSuffix(t *testing.T) {
	repo := new(MockConstructionRepository)
	service := newConstructionService(t, repo, nil)

	record := draftMillRecord("")
	record.Construction.Slug = ""

	repo.On("SlugExists", mock.Anything, "moinho-da-achada").Return(true, nil)
	repo.On("SlugExists", mock.Anything, "moinho-da-achada-2").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(record, nil)

	_, err := service.Create(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, "moinho-da-achada-2", record.Construction.Slug)
}

func TestConstructionService_Create_RejectsUnsupportedLocale(t *testing.T) {
	repo := new(MockConstructionRepository)
	service := newConstructionService(t, repo, nil)

	record := draftMillRecord("")
	record.Translations[0].Locale = "de"

	_, err := service.Create(context.Background(), record)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported locale")
}

func TestConstructionService_Transition_PublishRequiresReadiness(t *testing.T) {
	repo := new(MockConstructionRepository)
	service := newConstructionService(t, repo, nil)

	id := uuid.NewString()
	record := draftMillRecord(id)
	record.Construction.Status = constructions.StatusReview
	record.Construction.Point = nil // not publishable without coordinates

	repo.On("GetByID", mock.Anything, id).Return(record, nil)

	_, err := service.Transition(context.Background(), id, constructions.StatusPublished)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not publishable")
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestConstructionService_Transition_RejectsIllegalEdge(t *testing.T) {
	repo := new(MockConstructionRepository)
	service := newConstructionService(t, repo, nil)

	id := uuid.NewString()
	record := draftMillRecord(id)

	repo.On("GetByID", mock.Anything, id).Return(record, nil)

	// draft -> published skips review
	_, err := service.Transition(context.Background(), id, constructions.StatusPublished)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot transition")
}

func TestConstructionService_Transition_PublishInvalidatesCache(t *testing.T) {
	repo := new(MockConstructionRepository)
	invalidator := new(MockCatalogInvalidator)
	service := newConstructionService(t, repo, invalidator)

	id := uuid.NewString()
	record := draftMillRecord(id)
	record.Construction.Status = constructions.StatusReview

	repo.On("GetByID", mock.Anything, id).Return(record, nil)
	repo.On("UpdateStatus", mock.Anything, id, constructions.StatusPublished).Return(nil)
	invalidator.On("Invalidate", mock.Anything).Return(nil)

	_, err := service.Transition(context.Background(), id, constructions.StatusPublished)
	require.NoError(t, err)
	invalidator.AssertCalled(t, "Invalidate", mock.Anything)
}

func TestConstructionService_Transition_ReviewToDraftSkipsInvalidation(t *testing.T) {
	repo := new(MockConstructionRepository)
	invalidator := new(MockCatalogInvalidator)
	service := newConstructionService(t, repo, invalidator)

	id := uuid.NewString()
	record := draftMillRecord(id)
	record.Construction.Status = constructions.StatusReview

	repo.On("GetByID", mock.Anything, id).Return(record, nil)
	repo.On("UpdateStatus", mock.Anything, id, constructions.StatusDraft).Return(nil)

	_, err := service.Transition(context.Background(), id, constructions.StatusDraft)
	require.NoError(t, err)
	invalidator.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestConstructionService_UpdateByID_PreservesWorkflowFields(t *testing.T) {
	repo := new(MockConstructionRepository)
	service := newConstructionService(t, repo, nil)

	id := uuid.NewString()
	existing := draftMillRecord(id)
	existing.Construction.Status = constructions.StatusReview

	update := draftMillRecord(id)
	update.Construction.Status = constructions.StatusPublished // must be ignored
	update.Construction.Slug = "tampered-slug"                 // must be ignored
	update.Construction.Municipality = "Machico"

	repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	repo.On("UpdateByID", mock.Anything, mock.Anything).Return(nil)

	_, err := service.UpdateByID(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, constructions.StatusReview, update.Construction.Status)
	assert.Equal(t, "moinho-da-achada", update.Construction.Slug)
	assert.Equal(t, "Machico", update.Construction.Municipality)
}

func TestConstructionService_UpsertTranslation_RejectsUnsupportedLocale(t *testing.T) {
	repo := new(MockConstructionRepository)
	service := newConstructionService(t, repo, nil)

	err := service.UpsertTranslation(context.Background(), uuid.NewString(), &constructions.Translation{
		Locale: "es",
		Name:   "Molino",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported locale")
}

func TestConstructionService_DeleteByID_PurgesGallery(t *testing.T) {
	repo := new(MockConstructionRepository)
	imageService := new(MockImageService)
	service, err := NewConstructionService(repo, nil, imageService, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	id := uuid.NewString()
	record := draftMillRecord(id)

	repo.On("GetByID", mock.Anything, id).Return(record, nil)
	repo.On("DeleteByID", mock.Anything, id).Return(nil)

	metas := []*images.ImageMeta{
		{ID: "img-1", ConstructionID: id},
		{ID: "img-2", ConstructionID: id},
	}
	imageService.On("ListByConstruction", mock.Anything, id).Return(metas, nil)
	imageService.On("DeleteByID", mock.Anything, id, "img-1").Return(nil)
	imageService.On("DeleteByID", mock.Anything, id, "img-2").Return(nil)

	require.NoError(t, service.DeleteByID(context.Background(), id))
	imageService.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestConstructionService_DeleteByID_PublishedInvalidatesCache(t *testing.T) {
	repo := new(MockConstructionRepository)
	invalidator := new(MockCatalogInvalidator)
	service := newConstructionService(t, repo, invalidator)

	id := uuid.NewString()
	record := draftMillRecord(id)
	record.Construction.Status = constructions.StatusPublished

	repo.On("GetByID", mock.Anything, id).Return(record, nil)
	repo.On("DeleteByID", mock.Anything, id).Return(nil)
	invalidator.On("Invalidate", mock.Anything).Return(nil)

	require.NoError(t, service.DeleteByID(context.Background(), id))
	invalidator.AssertCalled(t, "Invalidate", mock.Anything)
}
