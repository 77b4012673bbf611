//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"mill_inventory_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a local PostgreSQL with the PostGIS extension available.

func TestCatalogPsqlRepository_PointExtraction(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	record := CreateTestMillRecord(t, "moinho-postgis")
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), record))
	PublishRecord(t, ctx, record.Construction.ID)

	// Coordinates come back through ST_X/ST_Y, not Go-side parsing
	result, err := ctx.CatalogRepo.ListPublishedMills(context.Background(), "pt")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.InDelta(t, TestLatitude, result[0].Latitude, 1e-6)
	assert.InDelta(t, TestLongitude, result[0].Longitude, 1e-6)
}

func TestCatalogPsqlRepository_LineStringExtraction(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	record := CreateTestWaterLineRecord(t, "levada-postgis")
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), record))
	PublishRecord(t, ctx, record.Construction.ID)

	paths, err := ctx.CatalogRepo.ListWaterLinePaths(context.Background(), "pt")
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Len(t, paths[0].Points, 2)
	assert.InDelta(t, TestLatitude, paths[0].Points[0].Latitude, 1e-6)
}

func TestConstructionPsqlRepository_RoundTrip(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	record := CreateTestMillRecord(t, "moinho-psql")
	require.NoError(t, ctx.ConstructionRepo.Create(context.Background(), record))

	fetched, err := ctx.ConstructionRepo.GetByID(context.Background(), record.Construction.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Construction.Point)
	assert.InDelta(t, TestLatitude, fetched.Construction.Point.Latitude, 1e-6)
}
