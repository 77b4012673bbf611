//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"mill_inventory_service/internal/domain/constructions"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConstructionModelRoundTrip(t *testing.T) {
	entity := &constructions.Construction{
		ID:           uuid.NewString(),
		Slug:         "moinho-do-caniço",
		Kind:         constructions.KindMill,
		Status:       constructions.StatusReview,
		District:     "Madeira",
		Municipality: "Santa Cruz",
		Parish:       "Caniço",
		CreatedAt:    time.Now().Truncate(time.Second),
		UpdatedAt:    time.Now().Truncate(time.Second),
	}

	var model ConstructionModel
	model.FromDomain(entity)
	assert.Equal(t, string(constructions.StatusReview), model.Status)

	back := model.ToDomain()
	assert.Equal(t, entity.ID, back.ID)
	assert.Equal(t, entity.Slug, back.Slug)
	assert.Equal(t, entity.Status, back.Status)
	assert.Nil(t, back.Point, "coordinates are extracted by the repository, not the model")
}

func TestTranslationModelRoundTrip(t *testing.T) {
	entity := &constructions.Translation{
		ConstructionID: uuid.NewString(),
		Locale:         "en",
		Name:           "Caniço Mill",
		Summary:        "A horizontal-wheel watermill.",
		Description:    "Longer text.",
		History:        "First recorded in 1794.",
	}

	var model TranslationModel
	model.FromDomain(entity)
	assert.Equal(t, entity, model.ToDomain())
}
