package v1

import (
	"fmt"
	"net/http"
	"strings"

	"mill_inventory_service/internal/domain/images"

	"github.com/gin-gonic/gin"
)

// ImageHandler defines the interface for the gallery endpoints
type ImageHandler interface {
	Upload(ctx *gin.Context)
	ListByConstruction(ctx *gin.Context)
	Reorder(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type imageHandler struct {
	imageService images.ImageService
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(imageService images.ImageService) ImageHandler {
	return &imageHandler{
		imageService: imageService,
	}
}

// Upload appends the files of a multipart form to a construction's gallery
func (handler *imageHandler) Upload(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "invalid form data")
		return
	}

	uploaded, err := handler.imageService.Upload(ctx, ctx.Param("id"), form)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		respondError(ctx, status, fmt.Sprintf("error uploading images: %v", err))
		return
	}

	responses := make([]ImageResponse, 0, len(uploaded))
	for _, meta := range uploaded {
		responses = append(responses, NewImageResponse(meta))
	}

	ctx.JSON(http.StatusCreated, responses)
}

// ListByConstruction returns the gallery in position order
func (handler *imageHandler) ListByConstruction(ctx *gin.Context) {
	metas, err := handler.imageService.ListByConstruction(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, fmt.Sprintf("error listing images: %v", err))
		return
	}

	responses := make([]ImageResponse, 0, len(metas))
	for _, meta := range metas {
		responses = append(responses, NewImageResponse(meta))
	}

	ctx.JSON(http.StatusOK, responses)
}

// Reorder rewrites gallery positions
func (handler *imageHandler) Reorder(ctx *gin.Context) {
	var request ReorderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := handler.imageService.Reorder(ctx, ctx.Param("id"), request.ImageIDs); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("error reordering images: %v", err))
		return
	}

	var infoResponse InfoResponse
	message := "gallery order updated"
	infoResponse.Message = &message
	ctx.JSON(http.StatusOK, infoResponse)
}

// DeleteByID removes one image from the store and the gallery
func (handler *imageHandler) DeleteByID(ctx *gin.Context) {
	imageID := ctx.Param("imageId")

	if err := handler.imageService.DeleteByID(ctx, ctx.Param("id"), imageID); err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		respondError(ctx, status, fmt.Sprintf("error deleting image: %v", err))
		return
	}

	var infoResponse InfoResponse
	message := fmt.Sprintf("image with id %s deleted", imageID)
	infoResponse.Message = &message
	ctx.JSON(http.StatusOK, infoResponse)
}
