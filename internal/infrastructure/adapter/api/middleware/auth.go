package middleware

import (
	"context"

	"wallet/internal/domain/entity"
	domainerr "wallet/internal/domain/error"
	"wallet/internal/domain/usecase/user"
	"wallet/internal/infrastructure/adapter/api/dto"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// Authenticator resolves HTTP Basic credentials to a wallet user.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
}

var _ Authenticator = (*user.Service)(nil)

// BasicAuth middleware authenticates every request with HTTP Basic
// credentials and stores the resolved user in the request context.
// Requests without credentials or with invalid credentials are rejected
// with 401 before reaching any handler.
func BasicAuth(users Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			abortUnauthorized(c, domainerr.ErrUnauthenticated)
			return
		}

		u, err := users.Authenticate(c.Request.Context(), username, password)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(currentUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by BasicAuth.
// The second return value is false on routes without the middleware.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	u, ok := value.(*entity.User)
	return u, ok
}

func abortUnauthorized(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", `Basic realm="wallet"`)
	c.AbortWithStatusJSON(domainerr.HTTPStatus(err), dto.ErrorResponse{
		Code:  domainerr.ErrorCode(err),
		Error: domainerr.Message(err),
	})
}
