package v1

import (
	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/images"
	"mill_inventory_service/internal/domain/mills"
	"mill_inventory_service/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1. The public catalog
// is open; everything under /admin requires a bearer token.
func SetupRoutes(r *gin.Engine,
	catalogService mills.CatalogService,
	adminService constructions.AdminService,
	imageService images.ImageService,
	authSettings *config.AuthSettings) {

	v1 := r.Group(BasePath) // lookup in version file

	// Public catalog routes
	catalogHandler := NewCatalogHandler(catalogService)
	v1.GET("/mills", catalogHandler.ListPublishedMills)
	v1.GET("/mills/searchable", catalogHandler.ListSearchableMills)
	v1.GET("/mills/:slug", catalogHandler.GetPublishedMillBySlug)
	v1.GET("/map", catalogHandler.GetMapData)
	v1.GET("/water-lines/:slug", catalogHandler.GetWaterLineBySlug)
	v1.GET("/water-lines/:slug/mills", catalogHandler.ListConnectedMills)
	v1.GET("/search", catalogHandler.Search)

	// Public taxonomy routes
	taxonomyHandler := NewTaxonomyHandler()
	v1.GET("/taxonomies", taxonomyHandler.ListFields)
	v1.GET("/taxonomies/:field", taxonomyHandler.GetTerms)

	// Dashboard routes
	admin := v1.Group("/admin", BearerAuth(authSettings))

	constructionHandler := NewConstructionHandler(adminService)
	admin.POST("/constructions", constructionHandler.Create)
	admin.GET("/constructions", constructionHandler.List)
	admin.GET("/constructions/:id", constructionHandler.GetByID)
	admin.PUT("/constructions/:id", constructionHandler.UpdateByID)
	admin.DELETE("/constructions/:id", constructionHandler.DeleteByID)
	admin.POST("/constructions/:id/transition", constructionHandler.Transition)
	admin.PUT("/constructions/:id/translations/:locale", constructionHandler.UpsertTranslation)

	imageHandler := NewImageHandler(imageService)
	admin.POST("/constructions/:id/images", imageHandler.Upload)
	admin.GET("/constructions/:id/images", imageHandler.ListByConstruction)
	admin.PUT("/constructions/:id/images/order", imageHandler.Reorder)
	admin.DELETE("/constructions/:id/images/:imageId", imageHandler.DeleteByID)
}
