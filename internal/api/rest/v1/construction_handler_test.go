//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/geo"
	"mill_inventory_service/internal/domain/mills"
	"mill_inventory_service/internal/domain/taxonomy"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func millRecordFixture(id string) *constructions.Record {
	now := time.Now().UTC()
	return &constructions.Record{
		Construction: &constructions.Construction{
			ID:           id,
			Slug:         "moinho-do-canico",
			Kind:         constructions.KindMill,
			Status:       constructions.StatusDraft,
			District:     "Madeira",
			Municipality: "Santa Cruz",
			Parish:       "Caniço",
			Point:        &geo.Point{Latitude: 32.6953, Longitude: -16.8186},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		Translations: []*constructions.Translation{
			{ConstructionID: id, Locale: "pt", Name: "Moinho do Caniço"},
		},
		Mill: &mills.MillData{
			ConstructionID:        id,
			Typology:              taxonomy.TypologyWatermillHorizontal,
			ConstructionTechnique: taxonomy.TechniqueMasonry,
			RoofMaterial:          taxonomy.RoofTile,
			Mechanism:             taxonomy.MechanismHorizontalWheel,
			Conservation:          taxonomy.ConservationGood,
			GrindingPairs:         1,
		},
	}
}

func millRequestBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	return bytes.NewBufferString(`{
		"kind": "mill",
		"district": "Madeira",
		"municipality": "Santa Cruz",
		"parish": "Caniço",
		"point": {"latitude": 32.6953, "longitude": -16.8186},
		"translations": [{"locale": "pt", "name": "Moinho do Caniço"}],
		"mill": {
			"typology": "watermill_horizontal",
			"constructionTechnique": "masonry",
			"roofMaterial": "tile",
			"mechanism": "horizontal_wheel",
			"conservation": "good",
			"grindingPairs": 1
		}
	}`)
}

func TestConstructionHandler_Create_Success(t *testing.T) {
	mockAdminService := new(MockAdminService)
	handler := NewConstructionHandler(mockAdminService)

	mockAdminService.On("Create", mock.Anything, mock.Anything).Return(millRecordFixture("c-1"), nil)

	req, err := http.NewRequest("POST", "/admin/constructions", millRequestBody(t))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "moinho-do-canico")
	assert.Contains(t, w.Body.String(), "draft")
	mockAdminService.AssertExpectations(t)
}

func TestConstructionHandler_Create_InvalidKind_Error(t *testing.T) {
	mockAdminService := new(MockAdminService)
	handler := NewConstructionHandler(mockAdminService)

	body := bytes.NewBufferString(`{"kind": "castle"}`)
	req, err := http.NewRequest("POST", "/admin/constructions", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
	mockAdminService.AssertNotCalled(t, "Create")
}

func TestConstructionHandler_List_Success(t *testing.T) {
	mockAdminService := new(MockAdminService)
	handler := NewConstructionHandler(mockAdminService)

	records := []*constructions.Record{millRecordFixture("c-1")}
	mockAdminService.On("List", mock.Anything, mock.MatchedBy(func(query *constructions.ConstructionQuery) bool {
		return query.Status == "draft" && query.Kind == "mill" && query.Limit == 10
	})).Return(records, nil)

	req, err := http.NewRequest("GET", "/admin/constructions?status=draft&kind=mill&limit=10", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "moinho-do-canico")
	mockAdminService.AssertExpectations(t)
}

func TestConstructionHandler_List_InvalidQuery_Error(t *testing.T) {
	mockAdminService := new(MockAdminService)
	handler := NewConstructionHandler(mockAdminService)

	req, err := http.NewRequest("GET", "/admin/constructions?sortOrder=sideways", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockAdminService.AssertNotCalled(t, "List")
}

func TestConstructionHandler_GetByID_Success(t *testing.T) {
	mockAdminService := new(MockAdminService)
	handler := NewConstructionHandler(mockAdminService)

	mockAdminService.On("GetByID", mock.Anything, "c-1").Return(millRecordFixture("c-1"), nil)

	req, err := http.NewRequest("GET", "/admin/constructions/c-1", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "c-1"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Moinho do Caniço")
	mockAdminService.AssertExpectations(t)
}

func TestConstructionHandler_GetByID_NotFound_Error(t *testing.T) {
	mockAdminService := new(MockAdminService)
	handler := NewConstructionHandler(mockAdminService)

	mockAdminService.On("GetByID", mock.Anything, "missing").
		Return(nil, errors.New("construction with id missing not found"))

	req, err := http.NewRequest("GET", "/admin/constructions/missing", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockAdminService.AssertExpectations(t)
}

func TestConstructionHandler_UpdateByID_UsesPathID(t *testing.T) {
	mockAdminService := new(MockAdminService)
	handler := NewConstructionHandler(mockAdminService)

	mockAdminService.On("UpdateByID", mock.Anything, mock.MatchedBy(func(record *constructions.Record) bool {
		return record.Construction.ID == "c-1"
	})).Return(millRecordFixture("c-1"), nil)

	req, err := http.NewRequest("PUT", "/admin/constructions/c-1", millRequestBody(t))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "c-1"}}

	handler.UpdateByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockAdminService.AssertExpectations(t)
}

func TestConstructionHandler_DeleteByID_Success(t *testing.T) {
	mockAdminService := new(MockAdminService)
	handler := NewConstructionHandler(mockAdminService)

	mockAdminService.On("DeleteByID", mock.Anything, "c-1").Return(nil)

	req, err := http.NewRequest("DELETE", "/admin/constructions/c-1", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "c-1"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted")
	mockAdminService.AssertExpectations(t)
}

func TestConstructionHandler_Transition_Success(t *testing.T) {
	mockAdminService := new(MockAdminService)
	handler := NewConstructionHandler(mockAdminService)

	published := millRecordFixture("c-1")
	published.Construction.Status = constructions.StatusPublished
	mockAdminService.On("Transition", mock.Anything, "c-1", constructions.StatusPublished).
		Return(published, nil)

	body := bytes.NewBufferString(`{"status": "published"}`)
	req, err := http.NewRequest("POST", "/admin/constructions/c-1/transition", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "c-1"}}

	handler.Transition(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "published")
	mockAdminService.AssertExpectations(t)
}

func TestConstructionHandler_Transition_IllegalEdge_Conflict(t *testing.T) {
	mockAdminService := new(MockAdminService)
	handler := NewConstructionHandler(mockAdminService)

	mockAdminService.On("Transition", mock.Anything, "c-1", constructions.StatusPublished).
		Return(nil, errors.New("cannot transition from draft to published"))

	body := bytes.NewBufferString(`{"status": "published"}`)
	req, err := http.NewRequest("POST", "/admin/constructions/c-1/transition", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "c-1"}}

	handler.Transition(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockAdminService.AssertExpectations(t)
}

func TestConstructionHandler_Transition_UnknownStatus_Error(t *testing.T) {
	mockAdminService := new(MockAdminService)
	handler := NewConstructionHandler(mockAdminService)

	body := bytes.NewBufferString(`{"status": "archived"}`)
	req, err := http.NewRequest("POST", "/admin/constructions/c-1/transition", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "c-1"}}

	handler.Transition(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAdminService.AssertNotCalled(t, "Transition")
}

func TestConstructionHandler_UpsertTranslation_PathLocaleWins(t *testing.T) {
	mockAdminService := new(MockAdminService)
	handler := NewConstructionHandler(mockAdminService)

	mockAdminService.On("UpsertTranslation", mock.Anything, "c-1",
		mock.MatchedBy(func(translation *constructions.Translation) bool {
			return translation.Locale == "en" && translation.Name == "Caniço Mill"
		})).Return(nil)

	body := bytes.NewBufferString(`{"locale": "pt", "name": "Caniço Mill", "summary": "A restored watermill"}`)
	req, err := http.NewRequest("PUT", "/admin/constructions/c-1/translations/en", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "c-1"}, {Key: "locale", Value: "en"}}

	handler.UpsertTranslation(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "en translation stored")
	mockAdminService.AssertExpectations(t)
}
