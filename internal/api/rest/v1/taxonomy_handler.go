package v1

import (
	"fmt"
	"net/http"

	"mill_inventory_service/internal/domain/taxonomy"

	"github.com/gin-gonic/gin"
)

// TaxonomyHandler defines the interface for the vocabulary endpoints
type TaxonomyHandler interface {
	ListFields(ctx *gin.Context)
	GetTerms(ctx *gin.Context)
}

type taxonomyHandler struct{}

// NewTaxonomyHandler creates a new TaxonomyHandler
func NewTaxonomyHandler() TaxonomyHandler {
	return &taxonomyHandler{}
}

// ListFields returns every vocabulary with its terms, for form building
func (handler *taxonomyHandler) ListFields(ctx *gin.Context) {
	result := make(map[string][]taxonomy.Term, len(taxonomy.Fields()))
	for _, field := range taxonomy.Fields() {
		result[field] = taxonomy.Terms(field)
	}

	ctx.JSON(http.StatusOK, result)
}

// GetTerms returns one vocabulary's terms
func (handler *taxonomyHandler) GetTerms(ctx *gin.Context) {
	field := ctx.Param("field")

	terms := taxonomy.Terms(field)
	if terms == nil {
		respondError(ctx, http.StatusNotFound, fmt.Sprintf("unknown taxonomy field: %s", field))
		return
	}

	ctx.JSON(http.StatusOK, terms)
}
