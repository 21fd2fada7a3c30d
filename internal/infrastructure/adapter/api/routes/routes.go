package routes

import (
	coreport "wallet/internal/domain/port/core"
	"wallet/internal/infrastructure/adapter/api/handler"
	"wallet/internal/infrastructure/adapter/api/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the handler instances wired into the router
type Handlers struct {
	User    *handler.UserHandler
	Wallet  *handler.WalletHandler
	Product *handler.ProductHandler
	Health  *handler.HealthHandler
}

// SetupRouter builds the gin engine with all middleware and routes.
// Registration, the health check and the public catalog listing are open;
// every other endpoint requires HTTP Basic authentication.
func SetupRouter(h Handlers, auth middleware.Authenticator, logger coreport.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))

	router.POST("/register", h.User.Register)
	router.GET("/health", h.Health.Check)
	router.GET("/product", h.Product.List)

	authenticated := router.Group("/")
	authenticated.Use(middleware.BasicAuth(auth))
	{
		authenticated.POST("/fund", h.Wallet.Fund)
		authenticated.POST("/pay", h.Wallet.Pay)
		authenticated.GET("/bal", h.Wallet.Balance)
		authenticated.GET("/stmt", h.Wallet.Statement)
		authenticated.POST("/product", h.Product.Create)
		authenticated.POST("/buy", h.Product.Buy)
	}

	return router
}
