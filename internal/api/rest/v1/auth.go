package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"mill_inventory_service/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// BearerAuth guards the dashboard routes with a static bearer token list.
// Tokens are compared in constant time.
func BearerAuth(settings *config.AuthSettings) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(ctx)
			return
		}

		for _, allowed := range settings.AdminTokens {
			if subtle.ConstantTimeCompare([]byte(token), []byte(allowed)) == 1 {
				ctx.Next()
				return
			}
		}

		unauthorized(ctx)
	}
}

func unauthorized(ctx *gin.Context) {
	var errorResponse ErrorResponse
	errorMessage := "missing or invalid bearer token"
	errorResponse.Message = &errorMessage
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse)
}
