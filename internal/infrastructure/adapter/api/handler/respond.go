package handler

import (
	domainerr "wallet/internal/domain/error"
	"wallet/internal/infrastructure/adapter/api/dto"

	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to its HTTP status, numeric code and
// client-safe message. Internal details never reach the response body.
func respondError(c *gin.Context, err error) {
	c.JSON(domainerr.HTTPStatus(err), dto.ErrorResponse{
		Code:  domainerr.ErrorCode(err),
		Error: domainerr.Message(err),
	})
}
