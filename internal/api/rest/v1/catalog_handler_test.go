//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mill_inventory_service/internal/domain/mills"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_ListPublishedMills_Success(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	handler := NewCatalogHandler(mockCatalogService)

	published := []*mills.PublishedMill{
		{ID: "c-1", Slug: "moinho-do-canico", Locale: "pt", Name: "Moinho do Caniço"},
	}
	mockCatalogService.On("PublishedMills", mock.Anything, "pt").Return(published, nil)

	req, err := http.NewRequest("GET", "/mills", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListPublishedMills(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "moinho-do-canico")
	mockCatalogService.AssertExpectations(t)
}

func TestCatalogHandler_ListPublishedMills_LocaleQueryPassedThrough(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	handler := NewCatalogHandler(mockCatalogService)

	mockCatalogService.On("PublishedMills", mock.Anything, "en").
		Return([]*mills.PublishedMill{}, nil)

	req, err := http.NewRequest("GET", "/mills?locale=en", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListPublishedMills(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCatalogService.AssertExpectations(t)
}

func TestCatalogHandler_GetPublishedMillBySlug_Success(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	handler := NewCatalogHandler(mockCatalogService)

	mill := &mills.PublishedMill{ID: "c-1", Slug: "moinho-do-canico", Locale: "pt", Name: "Moinho do Caniço"}
	mockCatalogService.On("PublishedMillBySlug", mock.Anything, "moinho-do-canico", "pt").Return(mill, nil)

	req, err := http.NewRequest("GET", "/mills/moinho-do-canico", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "slug", Value: "moinho-do-canico"}}

	handler.GetPublishedMillBySlug(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Moinho do Caniço")
	mockCatalogService.AssertExpectations(t)
}

func TestCatalogHandler_GetPublishedMillBySlug_NotFound_Error(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	handler := NewCatalogHandler(mockCatalogService)

	mockCatalogService.On("PublishedMillBySlug", mock.Anything, "missing", "pt").
		Return(nil, errors.New("published mill with slug missing not found"))

	req, err := http.NewRequest("GET", "/mills/missing", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "slug", Value: "missing"}}

	handler.GetPublishedMillBySlug(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
	mockCatalogService.AssertExpectations(t)
}

func TestCatalogHandler_GetMapData_Success(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	handler := NewCatalogHandler(mockCatalogService)

	data := &mills.MapData{
		Mills:      []*mills.MillSummary{{ID: "c-1", Slug: "moinho-do-canico", Name: "Moinho do Caniço"}},
		WaterLines: []*mills.WaterLinePath{},
		Pocas:      []*mills.PocaMarker{},
	}
	mockCatalogService.On("MapData", mock.Anything, "pt").Return(data, nil)

	req, err := http.NewRequest("GET", "/map", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GetMapData(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "waterLines")
	mockCatalogService.AssertExpectations(t)
}

func TestCatalogHandler_GetMapData_ServiceFailure_Error(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	handler := NewCatalogHandler(mockCatalogService)

	mockCatalogService.On("MapData", mock.Anything, "pt").
		Return(nil, errors.New("failed to list mill markers"))

	req, err := http.NewRequest("GET", "/map", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GetMapData(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockCatalogService.AssertExpectations(t)
}

func TestCatalogHandler_GetWaterLineBySlug_Success(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	handler := NewCatalogHandler(mockCatalogService)

	detail := &mills.WaterLineDetail{
		WaterLinePath:  mills.WaterLinePath{ID: "c-9", Slug: "levada-nova", Name: "Levada Nova"},
		Locale:         "pt",
		ConnectedMills: []*mills.MillSummary{},
	}
	mockCatalogService.On("WaterLineBySlug", mock.Anything, "levada-nova", "pt").Return(detail, nil)

	req, err := http.NewRequest("GET", "/water-lines/levada-nova", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "slug", Value: "levada-nova"}}

	handler.GetWaterLineBySlug(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Levada Nova")
	mockCatalogService.AssertExpectations(t)
}

func TestCatalogHandler_ListConnectedMills_Success(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	handler := NewCatalogHandler(mockCatalogService)

	detail := &mills.WaterLineDetail{
		WaterLinePath: mills.WaterLinePath{ID: "c-9", Slug: "levada-nova", Name: "Levada Nova"},
		Locale:        "pt",
	}
	connected := []*mills.MillSummary{{ID: "c-1", Slug: "moinho-do-canico", Name: "Moinho do Caniço"}}

	mockCatalogService.On("WaterLineBySlug", mock.Anything, "levada-nova", "pt").Return(detail, nil)
	mockCatalogService.On("ConnectedMills", mock.Anything, "c-9", "pt").Return(connected, nil)

	req, err := http.NewRequest("GET", "/water-lines/levada-nova/mills", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "slug", Value: "levada-nova"}}

	handler.ListConnectedMills(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "moinho-do-canico")
	mockCatalogService.AssertExpectations(t)
}

func TestCatalogHandler_ListConnectedMills_UnknownWaterLine_Error(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	handler := NewCatalogHandler(mockCatalogService)

	mockCatalogService.On("WaterLineBySlug", mock.Anything, "missing", "pt").
		Return(nil, errors.New("published water line with slug missing not found"))

	req, err := http.NewRequest("GET", "/water-lines/missing/mills", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "slug", Value: "missing"}}

	handler.ListConnectedMills(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockCatalogService.AssertExpectations(t)
}

func TestCatalogHandler_ListSearchableMills_Success(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	handler := NewCatalogHandler(mockCatalogService)

	searchable := []*mills.SearchableMill{
		{
			ID:   "c-1",
			Slug: "moinho-do-canico",
			Translations: map[string]mills.SearchableText{
				"pt": {Name: "Moinho do Caniço"},
				"en": {Name: "Caniço Mill"},
			},
		},
	}
	mockCatalogService.On("SearchableMills", mock.Anything).Return(searchable, nil)

	req, err := http.NewRequest("GET", "/mills/searchable", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListSearchableMills(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Caniço Mill")
	mockCatalogService.AssertExpectations(t)
}

func TestCatalogHandler_Search_Success(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	handler := NewCatalogHandler(mockCatalogService)

	results := []*mills.SearchResult{
		{Slug: "moinho-do-canico", Name: "Caniço Mill", MatchedIn: "en"},
	}
	mockCatalogService.On("Search", mock.Anything, "watermill", "en").Return(results, nil)

	req, err := http.NewRequest("GET", "/search?q=watermill&locale=en", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "matchedIn")
	mockCatalogService.AssertExpectations(t)
}

func TestCatalogHandler_Search_BlankQuery_Error(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	handler := NewCatalogHandler(mockCatalogService)

	req, err := http.NewRequest("GET", "/search?q=%20%20", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "q is required")
	mockCatalogService.AssertNotCalled(t, "Search")
}
