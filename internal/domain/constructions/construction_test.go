//go:build unit
// +build unit

package constructions

import (
	"testing"
	"time"

	"mill_inventory_service/internal/domain/geo"
	"mill_inventory_service/internal/domain/mills"
	"mill_inventory_service/internal/domain/taxonomy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConstruction() *Construction {
	return &Construction{
		ID:           uuid.NewString(),
		Slug:         "moinho-da-ribeira",
		Kind:         KindMill,
		Status:       StatusDraft,
		District:     "Madeira",
		Municipality: "Santana",
		Parish:       "São Jorge",
		Point:        &geo.Point{Latitude: 32.82, Longitude: -16.90},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func validMillData(constructionID string) *mills.MillData {
	return &mills.MillData{
		ConstructionID:        constructionID,
		Typology:              taxonomy.TypologyWatermillHorizontal,
		ConstructionTechnique: taxonomy.TechniqueDryStone,
		RoofMaterial:          taxonomy.RoofTile,
		Mechanism:             taxonomy.MechanismHorizontalWheel,
		Conservation:          taxonomy.ConservationReasonable,
		GrindingPairs:         1,
	}
}

func TestConstructionValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validConstruction().Validate())
	})

	t.Run("missing slug", func(t *testing.T) {
		c := validConstruction()
		c.Slug = ""
		require.Error(t, c.Validate())
	})

	t.Run("unknown kind", func(t *testing.T) {
		c := validConstruction()
		c.Kind = "bridge"
		require.Error(t, c.Validate())
	})

	t.Run("nil point allowed in draft", func(t *testing.T) {
		c := validConstruction()
		c.Point = nil
		require.NoError(t, c.Validate())
	})

	t.Run("point out of bounds", func(t *testing.T) {
		c := validConstruction()
		c.Point = &geo.Point{Latitude: 132.82, Longitude: -16.90}
		require.Error(t, c.Validate())
	})

	t.Run("invalid status", func(t *testing.T) {
		c := validConstruction()
		c.Status = Status("gone")
		require.Error(t, c.Validate())
	})
}

func TestRecordValidate_SpecializationMatchesKind(t *testing.T) {
	c := validConstruction()

	t.Run("mill with mill data", func(t *testing.T) {
		record := &Record{Construction: c, Mill: validMillData(c.ID)}
		require.NoError(t, record.Validate())
	})

	t.Run("mill without mill data", func(t *testing.T) {
		record := &Record{Construction: c}
		require.Error(t, record.Validate())
	})

	t.Run("mill with unknown typology", func(t *testing.T) {
		mill := validMillData(c.ID)
		mill.Typology = "gristmill"
		record := &Record{Construction: c, Mill: mill}
		require.Error(t, record.Validate())
	})
}

func TestRecordReadyToPublish(t *testing.T) {
	c := validConstruction()
	ptTranslation := &Translation{
		ConstructionID: c.ID,
		Locale:         DefaultLocale,
		Name:           "Moinho da Ribeira",
	}

	t.Run("ready", func(t *testing.T) {
		record := &Record{Construction: c, Translations: []*Translation{ptTranslation}, Mill: validMillData(c.ID)}
		require.NoError(t, record.ReadyToPublish())
	})

	t.Run("missing pt translation", func(t *testing.T) {
		en := &Translation{ConstructionID: c.ID, Locale: LocaleEnglish, Name: "Ribeira Mill"}
		record := &Record{Construction: c, Translations: []*Translation{en}, Mill: validMillData(c.ID)}
		require.Error(t, record.ReadyToPublish())
	})

	t.Run("missing coordinates", func(t *testing.T) {
		noPoint := validConstruction()
		noPoint.Point = nil
		record := &Record{Construction: noPoint, Translations: []*Translation{ptTranslation}, Mill: validMillData(noPoint.ID)}
		require.Error(t, record.ReadyToPublish())
	})
}

func TestRecordTranslationLookup(t *testing.T) {
	c := validConstruction()
	record := &Record{
		Construction: c,
		Translations: []*Translation{
			{ConstructionID: c.ID, Locale: "pt", Name: "Moinho"},
			{ConstructionID: c.ID, Locale: "en", Name: "Mill"},
		},
	}

	require.NotNil(t, record.Translation("en"))
	assert.Equal(t, "Mill", record.Translation("en").Name)
	assert.Nil(t, record.Translation("fr"))
}

func TestIsSupportedLocale(t *testing.T) {
	assert.True(t, IsSupportedLocale("pt"))
	assert.True(t, IsSupportedLocale("en"))
	assert.False(t, IsSupportedLocale("de"))
}

func TestNormalizeLocale(t *testing.T) {
	assert.Equal(t, "pt", NormalizeLocale("pt"))
	assert.Equal(t, "en", NormalizeLocale("en"))
	assert.Equal(t, "pt", NormalizeLocale("PT"))
	assert.Equal(t, "en", NormalizeLocale(" EN "))
	assert.Equal(t, "pt", NormalizeLocale("fr"))
	assert.Equal(t, "pt", NormalizeLocale(""))
}
