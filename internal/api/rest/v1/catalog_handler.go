package v1

import (
	"fmt"
	"net/http"
	"strings"

	"mill_inventory_service/internal/domain/mills"

	"github.com/gin-gonic/gin"
)

// CatalogHandler defines the interface for the public catalog endpoints
type CatalogHandler interface {
	ListPublishedMills(ctx *gin.Context)
	GetPublishedMillBySlug(ctx *gin.Context)
	GetMapData(ctx *gin.Context)
	GetWaterLineBySlug(ctx *gin.Context)
	ListConnectedMills(ctx *gin.Context)
	ListSearchableMills(ctx *gin.Context)
	Search(ctx *gin.Context)
}

type catalogHandler struct {
	catalogService mills.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService mills.CatalogService) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
	}
}

// requestLocale reads the locale query parameter; the service maps unknown
// values to pt.
func requestLocale(ctx *gin.Context) string {
	return ctx.DefaultQuery("locale", "pt")
}

// ListPublishedMills returns the full published mill listing
func (handler *catalogHandler) ListPublishedMills(ctx *gin.Context) {
	result, err := handler.catalogService.PublishedMills(ctx, requestLocale(ctx))
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, fmt.Sprintf("error listing mills: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetPublishedMillBySlug returns one published mill
func (handler *catalogHandler) GetPublishedMillBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	mill, err := handler.catalogService.PublishedMillBySlug(ctx, slug, requestLocale(ctx))
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		respondError(ctx, status, fmt.Sprintf("error fetching mill: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, mill)
}

// GetMapData returns the markers and polylines behind the public map
func (handler *catalogHandler) GetMapData(ctx *gin.Context) {
	data, err := handler.catalogService.MapData(ctx, requestLocale(ctx))
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, fmt.Sprintf("error building map data: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, data)
}

// GetWaterLineBySlug returns one published water line with connected mills
func (handler *catalogHandler) GetWaterLineBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	detail, err := handler.catalogService.WaterLineBySlug(ctx, slug, requestLocale(ctx))
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		respondError(ctx, status, fmt.Sprintf("error fetching water line: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// ListConnectedMills returns the published mills attached to a water line
func (handler *catalogHandler) ListConnectedMills(ctx *gin.Context) {
	slug := ctx.Param("slug")
	locale := requestLocale(ctx)

	detail, err := handler.catalogService.WaterLineBySlug(ctx, slug, locale)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		respondError(ctx, status, fmt.Sprintf("error fetching water line: %v", err))
		return
	}

	result, err := handler.catalogService.ConnectedMills(ctx, detail.ID, locale)
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, fmt.Sprintf("error listing connected mills: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// ListSearchableMills returns every published mill with all translations
func (handler *catalogHandler) ListSearchableMills(ctx *gin.Context) {
	result, err := handler.catalogService.SearchableMills(ctx)
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, fmt.Sprintf("error listing searchable mills: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// Search filters published mills across all locales
func (handler *catalogHandler) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	if strings.TrimSpace(query) == "" {
		respondError(ctx, http.StatusBadRequest, "query parameter q is required")
		return
	}

	result, err := handler.catalogService.Search(ctx, query, requestLocale(ctx))
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, fmt.Sprintf("error searching mills: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// respondError writes the shared error payload.
func respondError(ctx *gin.Context, status int, message string) {
	var errorResponse ErrorResponse
	errorResponse.Message = &message
	ctx.JSON(status, errorResponse)
}
