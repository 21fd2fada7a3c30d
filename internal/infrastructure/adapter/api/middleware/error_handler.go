package middleware

import (
	"net/http"

	domainerr "wallet/internal/domain/error"
	coreport "wallet/internal/domain/port/core"
	"wallet/internal/infrastructure/adapter/api/dto"

	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":     err,
					"path":      c.Request.URL.Path,
					"method":    c.Request.Method,
					"client_ip": c.ClientIP(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:  domainerr.ErrorCode(domainerr.ErrInternalServer),
					Error: domainerr.Message(domainerr.ErrInternalServer),
				})
			}
		}()

		c.Next()
	}
}
