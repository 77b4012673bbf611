package v1

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// ConstructionHandler defines the interface for the dashboard endpoints
type ConstructionHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Transition(ctx *gin.Context)
	UpsertTranslation(ctx *gin.Context)
}

type constructionHandler struct {
	adminService constructions.AdminService
}

// NewConstructionHandler creates a new ConstructionHandler
func NewConstructionHandler(adminService constructions.AdminService) ConstructionHandler {
	return &constructionHandler{
		adminService: adminService,
	}
}

// Create stores a new draft construction
func (handler *constructionHandler) Create(ctx *gin.Context) {
	var request ConstructionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	record, err := handler.adminService.Create(ctx, request.ToRecord())
	if err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("error creating construction: %v", err))
		return
	}

	ctx.JSON(http.StatusCreated, NewRecordResponse(record))
}

// List fetches constructions optionally with query parameters
func (handler *constructionHandler) List(ctx *gin.Context) {
	query := constructions.NewConstructionQuery()

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}

	if kind := ctx.Query("kind"); len(kind) > 0 {
		query.Kind = kind
	}

	if municipality := ctx.Query("municipality"); len(municipality) > 0 {
		query.Municipality = municipality
	}

	if text := ctx.Query("text"); len(text) > 0 {
		query.Text = text
	}

	if updatedAfter := ctx.Query("updatedAfter"); len(updatedAfter) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, updatedAfter)
		if err == nil {
			query.UpdatedAfter = parsedTime
		}
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	records, err := handler.adminService.List(ctx, query)
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, fmt.Sprintf("error listing constructions: %v", err))
		return
	}

	responses := make([]RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, NewRecordResponse(record))
	}

	ctx.JSON(http.StatusOK, responses)
}

// GetByID returns one construction regardless of status
func (handler *constructionHandler) GetByID(ctx *gin.Context) {
	record, err := handler.adminService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		respondError(ctx, status, fmt.Sprintf("error fetching construction: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, NewRecordResponse(record))
}

// UpdateByID replaces the construction fields and specialization
func (handler *constructionHandler) UpdateByID(ctx *gin.Context) {
	var request ConstructionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	record := request.ToRecord()
	record.Construction.ID = ctx.Param("id")

	updated, err := handler.adminService.UpdateByID(ctx, record)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		respondError(ctx, status, fmt.Sprintf("error updating construction: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, NewRecordResponse(updated))
}

// DeleteByID removes a construction with its translations and images
func (handler *constructionHandler) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := handler.adminService.DeleteByID(ctx, id); err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		respondError(ctx, status, fmt.Sprintf("error deleting construction: %v", err))
		return
	}

	var infoResponse InfoResponse
	message := fmt.Sprintf("construction with id %s deleted", id)
	infoResponse.Message = &message
	ctx.JSON(http.StatusOK, infoResponse)
}

// Transition moves a construction through the review workflow
func (handler *constructionHandler) Transition(ctx *gin.Context) {
	var request TransitionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	target, err := constructions.ParseStatus(request.Status)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	record, err := handler.adminService.Transition(ctx, ctx.Param("id"), target)
	if err != nil {
		status := http.StatusConflict
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		respondError(ctx, status, fmt.Sprintf("error transitioning construction: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, NewRecordResponse(record))
}

// UpsertTranslation creates or replaces one locale's translation
func (handler *constructionHandler) UpsertTranslation(ctx *gin.Context) {
	var request TranslationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	// The path parameter wins over whatever the body claims
	request.Locale = ctx.Param("locale")

	translation := &constructions.Translation{
		Locale:      request.Locale,
		Name:        request.Name,
		Summary:     request.Summary,
		Description: request.Description,
		History:     request.History,
	}

	if err := handler.adminService.UpsertTranslation(ctx, ctx.Param("id"), translation); err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		respondError(ctx, status, fmt.Sprintf("error upserting translation: %v", err))
		return
	}

	var infoResponse InfoResponse
	message := fmt.Sprintf("%s translation stored", request.Locale)
	infoResponse.Message = &message
	ctx.JSON(http.StatusOK, infoResponse)
}
