//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/geo"
	"mill_inventory_service/internal/domain/images"
	"mill_inventory_service/internal/domain/mills"
	"mill_inventory_service/internal/domain/pocas"
	"mill_inventory_service/internal/domain/taxonomy"
	"mill_inventory_service/internal/domain/waterlines"
	"mill_inventory_service/internal/infrastructure/persistence/models"
	"mill_inventory_service/internal/pkg/config"
	"mill_inventory_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Coordinates used across the fixtures; a real mill site on Madeira.
const (
	TestLatitude  = 32.6953
	TestLongitude = -16.8186
)

// TestContext holds test database and repositories
type TestContext struct {
	DB               *gorm.DB
	ConstructionRepo constructions.ConstructionRepository
	CatalogRepo      mills.CatalogRepository
	ImageRepo        images.ImageRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(
		&models.ConstructionModel{},
		&models.TranslationModel{},
		&models.MillDataModel{},
		&models.WaterLineModel{},
		&models.PocaModel{},
		&models.ImageModel{},
	)
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	log := testutil.SetupTestLogger(t)

	constructionRepo, err := NewGormConstructionRepository(db, log)
	require.NoError(t, err, "Failed to create construction repository")

	catalogRepo, err := NewGormCatalogRepository(db, log)
	require.NoError(t, err, "Failed to create catalog repository")

	imageRepo, err := NewGormImageRepository(db, log)
	require.NoError(t, err, "Failed to create image repository")

	return &TestContext{
		DB:               db,
		ConstructionRepo: constructionRepo,
		CatalogRepo:      catalogRepo,
		ImageRepo:        imageRepo,
	}
}

// CreateTestMillRecord builds a draft mill record with a pt translation.
func CreateTestMillRecord(t *testing.T, slug string) *constructions.Record {
	t.Helper()

	id := uuid.NewString()
	now := time.Now().UTC()

	return &constructions.Record{
		Construction: &constructions.Construction{
			ID:           id,
			Slug:         slug,
			Kind:         constructions.KindMill,
			Status:       constructions.StatusDraft,
			District:     "Madeira",
			Municipality: "Santana",
			Parish:       "São Jorge",
			Point:        &geo.Point{Latitude: TestLatitude, Longitude: TestLongitude},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		Translations: []*constructions.Translation{
			{
				ConstructionID: id,
				Locale:         constructions.DefaultLocale,
				Name:           "Moinho de " + slug,
				Summary:        "Moinho de água de roda horizontal.",
			},
		},
		Mill: &mills.MillData{
			ConstructionID:        id,
			Typology:              taxonomy.TypologyWatermillHorizontal,
			ConstructionTechnique: taxonomy.TechniqueDryStone,
			RoofMaterial:          taxonomy.RoofTile,
			Mechanism:             taxonomy.MechanismHorizontalWheel,
			Conservation:          taxonomy.ConservationRuin,
			GrindingPairs:         1,
		},
	}
}

// CreateTestWaterLineRecord builds a draft water line record with a two-vertex path.
func CreateTestWaterLineRecord(t *testing.T, slug string) *constructions.Record {
	t.Helper()

	id := uuid.NewString()
	now := time.Now().UTC()

	return &constructions.Record{
		Construction: &constructions.Construction{
			ID:           id,
			Slug:         slug,
			Kind:         constructions.KindWaterLine,
			Status:       constructions.StatusDraft,
			District:     "Madeira",
			Municipality: "Santana",
			Parish:       "São Jorge",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		Translations: []*constructions.Translation{
			{
				ConstructionID: id,
				Locale:         constructions.DefaultLocale,
				Name:           "Levada de " + slug,
			},
		},
		WaterLine: &waterlines.WaterLine{
			ConstructionID: id,
			SourceKind:     taxonomy.SourceLevada,
			LengthMeters:   1200,
			Path: []geo.Point{
				{Latitude: TestLatitude, Longitude: TestLongitude},
				{Latitude: TestLatitude + 0.002, Longitude: TestLongitude + 0.003},
			},
		},
	}
}

// CreateTestPocaRecord builds a draft poça record.
func CreateTestPocaRecord(t *testing.T, slug string) *constructions.Record {
	t.Helper()

	id := uuid.NewString()
	now := time.Now().UTC()

	return &constructions.Record{
		Construction: &constructions.Construction{
			ID:           id,
			Slug:         slug,
			Kind:         constructions.KindPoca,
			Status:       constructions.StatusDraft,
			District:     "Madeira",
			Municipality: "Santana",
			Parish:       "São Jorge",
			Point:        &geo.Point{Latitude: TestLatitude + 0.001, Longitude: TestLongitude - 0.001},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		Translations: []*constructions.Translation{
			{
				ConstructionID: id,
				Locale:         constructions.DefaultLocale,
				Name:           "Poça de " + slug,
			},
		},
		Poca: &pocas.Poca{
			ConstructionID: id,
			CapacityLiters: 40000,
			DepthMeters:    1.8,
		},
	}
}

// CreateTestImage builds image metadata for a construction.
func CreateTestImage(t *testing.T, constructionID string, position int) *images.ImageMeta {
	t.Helper()

	id := uuid.NewString()
	return &images.ImageMeta{
		ID:              id,
		ConstructionID:  constructionID,
		FileName:        "photo-" + id[:8] + ".jpg",
		ContentType:     "image/jpeg",
		SizeBytes:       2048,
		Position:        position,
		URL:             "https://images.example.com/" + id,
		DateTimeCreated: time.Now().UTC(),
	}
}

// PublishRecord pushes a stored record through draft -> review -> published.
func PublishRecord(t *testing.T, ctx *TestContext, constructionID string) {
	t.Helper()

	require.NoError(t, ctx.ConstructionRepo.UpdateStatus(context.Background(), constructionID, constructions.StatusReview))
	require.NoError(t, ctx.ConstructionRepo.UpdateStatus(context.Background(), constructionID, constructions.StatusPublished))
}
