//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/geo"
	"mill_inventory_service/internal/infrastructure/persistence/models"
	"mill_inventory_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructionSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestMillRecord(t, "moinho-create")
	err := ctx.ConstructionRepo.Create(context.Background(), record)
	require.NoError(t, err)

	// Verify using GORM model (infrastructure concern)
	var model models.ConstructionModel
	err = ctx.DB.First(&model, "id = ?", record.Construction.ID).Error
	require.NoError(t, err)
	assert.Equal(t, "moinho-create", model.Slug)
	assert.Equal(t, string(constructions.StatusDraft), model.Status)

	// Geometry lands as WKT on sqlite
	require.NotNil(t, model.Geom)
	parsed, err := geo.ParsePoint(string(*model.Geom))
	require.NoError(t, err)
	assert.InDelta(t, TestLatitude, parsed.Latitude, 1e-9)
	assert.InDelta(t, TestLongitude, parsed.Longitude, 1e-9)
}

func TestConstructionSqliteRepository_Create_InvalidRecord(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestMillRecord(t, "moinho-invalid")
	record.Mill = nil // mill kind without mill data

	err := ctx.ConstructionRepo.Create(context.Background(), record)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires mill data")
}

func TestConstructionSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestMillRecord(t, "moinho-get")
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), record))

	fetched, err := ctx.ConstructionRepo.GetByID(context.Background(), record.Construction.ID)
	require.NoError(t, err)
	assert.Equal(t, record.Construction.Slug, fetched.Construction.Slug)
	assert.Len(t, fetched.Translations, 1)
	require.NotNil(t, fetched.Mill)
	assert.Equal(t, record.Mill.Typology, fetched.Mill.Typology)

	require.NotNil(t, fetched.Construction.Point)
	assert.InDelta(t, TestLatitude, fetched.Construction.Point.Latitude, 1e-9)
}

func TestConstructionSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.ConstructionRepo.GetByID(context.Background(), "non-existent-id")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConstructionSqliteRepository_WaterLineRoundTrip(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestWaterLineRecord(t, "levada-roundtrip")
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), record))

	fetched, err := ctx.ConstructionRepo.GetByID(context.Background(), record.Construction.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.WaterLine)
	assert.Equal(t, record.WaterLine.SourceKind, fetched.WaterLine.SourceKind)
	require.Len(t, fetched.WaterLine.Path, 2)
	assert.InDelta(t, record.WaterLine.Path[1].Longitude, fetched.WaterLine.Path[1].Longitude, 1e-9)
}

func TestConstructionSqliteRepository_List_WithFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	mill := CreateTestMillRecord(t, "moinho-list")
	poca := CreateTestPocaRecord(t, "poca-list")
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), mill))
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), poca))

	query := constructions.NewConstructionQuery()
	query.Kind = constructions.KindMill

	records, err := ctx.ConstructionRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "moinho-list", records[0].Construction.Slug)
}

func TestConstructionSqliteRepository_List_TextMatchesTranslatedName(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestMillRecord(t, "moinho-texto")
	record.Translations[0].Name = "Moinho da Achada Grande"
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), record))

	query := constructions.NewConstructionQuery()
	query.Text = "Achada"

	records, err := ctx.ConstructionRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.Construction.ID, records[0].Construction.ID)
}

func TestConstructionSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestMillRecord(t, "moinho-update")
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), record))

	record.Construction.Municipality = "Machico"
	record.Construction.Point = &geo.Point{Latitude: 32.7, Longitude: -16.77}
	record.Mill.GrindingPairs = 2

	require.NoError(t, ctx.ConstructionRepo.UpdateByID(context.Background(), record))

	fetched, err := ctx.ConstructionRepo.GetByID(context.Background(), record.Construction.ID)
	require.NoError(t, err)
	assert.Equal(t, "Machico", fetched.Construction.Municipality)
	assert.Equal(t, 2, fetched.Mill.GrindingPairs)
	require.NotNil(t, fetched.Construction.Point)
	assert.InDelta(t, 32.7, fetched.Construction.Point.Latitude, 1e-9)
}

func TestConstructionSqliteRepository_UpdateStatus(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestMillRecord(t, "moinho-status")
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), record))

	require.NoError(t, ctx.ConstructionRepo.UpdateStatus(context.Background(), record.Construction.ID, constructions.StatusReview))

	fetched, err := ctx.ConstructionRepo.GetByID(context.Background(), record.Construction.ID)
	require.NoError(t, err)
	assert.Equal(t, constructions.StatusReview, fetched.Construction.Status)
}

func TestConstructionSqliteRepository_DeleteByID_DetachesMills(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	waterLine := CreateTestWaterLineRecord(t, "levada-delete")
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), waterLine))

	mill := CreateTestMillRecord(t, "moinho-attached")
	mill.Mill.WaterLineID = &waterLine.Construction.ID
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), mill))

	require.NoError(t, ctx.ConstructionRepo.DeleteByID(context.Background(), waterLine.Construction.ID))

	_, err := ctx.ConstructionRepo.GetByID(context.Background(), waterLine.Construction.ID)
	assert.Error(t, err)

	fetched, err := ctx.ConstructionRepo.GetByID(context.Background(), mill.Construction.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Mill.WaterLineID)
}

func TestConstructionSqliteRepository_DeleteByID_RemovesImageRows(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestMillRecord(t, "moinho-galeria")
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), record))

	image := CreateTestImage(t, record.Construction.ID, 0)
	require.NoError(t, ctx.ImageRepo.Create(context.Background(), image))

	require.NoError(t, ctx.ConstructionRepo.DeleteByID(context.Background(), record.Construction.ID))

	var count int64
	require.NoError(t, ctx.DB.Model(&models.ImageModel{}).
		Where("construction_id = ?", record.Construction.ID).
		Count(&count).Error)
	assert.Zero(t, count)
}

func TestConstructionSqliteRepository_UpsertTranslation(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestMillRecord(t, "moinho-translation")
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), record))

	en := &constructions.Translation{
		ConstructionID: record.Construction.ID,
		Locale:         constructions.LocaleEnglish,
		Name:           "Achada Mill",
	}
	require.NoError(t, ctx.ConstructionRepo.UpsertTranslation(context.Background(), en))

	// Upserting again replaces, not duplicates
	en.Name = "Achada Watermill"
	require.NoError(t, ctx.ConstructionRepo.UpsertTranslation(context.Background(), en))

	fetched, err := ctx.ConstructionRepo.GetByID(context.Background(), record.Construction.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Translations, 2)

	var enName string
	for _, tr := range fetched.Translations {
		if tr.Locale == constructions.LocaleEnglish {
			enName = tr.Name
		}
	}
	assert.Equal(t, "Achada Watermill", enName)
}

func TestConstructionSqliteRepository_SlugExists(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestMillRecord(t, "moinho-slug")
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), record))

	exists, err := ctx.ConstructionRepo.SlugExists(context.Background(), "moinho-slug")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ctx.ConstructionRepo.SlugExists(context.Background(), "moinho-unknown")
	require.NoError(t, err)
	assert.False(t, exists)
}
