package handler

import (
	"net/http"

	errs "wallet/internal/domain/error"
	coreport "wallet/internal/domain/port/core"
	"wallet/internal/domain/usecase/user"
	"wallet/internal/infrastructure/adapter/api/dto"

	"github.com/gin-gonic/gin"
)

// UserHandler handles account registration requests
type UserHandler struct {
	users  *user.Service
	logger coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(users *user.Service, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

// Register creates a new wallet account with a zero balance
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid registration request", map[string]any{
			"error": err.Error(),
		})
		respondError(c, errs.ErrInvalidRequest)
		return
	}

	if _, err := h.users.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Message: "User registered successfully",
	})
}
