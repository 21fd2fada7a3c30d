package dto

import "encoding/json"

// CreateProductRequest is the payload for listing a product in the catalog.
type CreateProductRequest struct {
	Name        string      `json:"name" binding:"required"`
	Price       json.Number `json:"price" binding:"required"`
	Description string      `json:"description" binding:"max=1000"`
}

// CreateProductResponse confirms a listed product.
type CreateProductResponse struct {
	ID      uint64 `json:"id"`
	Message string `json:"message"`
}

// ProductResponse is a single catalog entry.
type ProductResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// BuyRequest is the payload for purchasing a product.
type BuyRequest struct {
	ProductID uint64 `json:"product_id" binding:"required"`
}

// BuyResponse confirms a purchase with the buyer's resulting balance.
type BuyResponse struct {
	Message string `json:"message"`
	Balance string `json:"balance"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
