package handler

import (
	"net/http"

	errs "wallet/internal/domain/error"
	coreport "wallet/internal/domain/port/core"
	"wallet/internal/domain/usecase/catalog"
	"wallet/internal/domain/usecase/ledger"
	"wallet/internal/infrastructure/adapter/api/dto"
	"wallet/internal/infrastructure/adapter/api/middleware"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles the product catalog and purchase endpoints
type ProductHandler struct {
	catalog *catalog.Service
	engine  *ledger.Service
	logger  coreport.Logger
}

// NewProductHandler creates a new product handler instance
func NewProductHandler(catalogService *catalog.Service, engine *ledger.Service, logger coreport.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalogService,
		engine:  engine,
		logger:  logger,
	}
}

// Create lists a new product in the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errs.ErrInvalidRequest)
		return
	}

	product, err := h.catalog.AddProduct(c.Request.Context(), req.Name, req.Price.String(), req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateProductResponse{
		ID:      product.ID,
		Message: "Product added",
	})
}

// List returns all catalog entries
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price.String(),
			Description: p.Description,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Buy purchases a product on behalf of the authenticated user
func (h *ProductHandler) Buy(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errs.ErrUnauthenticated)
		return
	}

	var req dto.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errs.ErrInvalidRequest)
		return
	}

	_, balance, err := h.engine.BuyProduct(c.Request.Context(), u, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BuyResponse{
		Message: "Product purchased",
		Balance: balance.String(),
	})
}
