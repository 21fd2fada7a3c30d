package handler

import (
	"net/http"

	"wallet/internal/infrastructure/adapter/api/dto"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness
type HealthHandler struct{}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check returns 200 when the service is up
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Message: "Digital Wallet API is running",
	})
}
