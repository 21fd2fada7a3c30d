package persistence

import (
	"context"

	"wallet/internal/domain/entity"
)

// ProductRepository defines methods to interact with the product catalog
type ProductRepository interface {
	// Create adds a new product to the catalog
	//
	// Possible errors:
	// - ErrStorageFailure: If the datastore fails
	Create(ctx context.Context, product *entity.Product) error

	// GetByID retrieves a product by ID
	//
	// Possible errors:
	// - ErrUnknownProduct: If no product has the given ID
	// - ErrStorageFailure: If the datastore fails
	GetByID(ctx context.Context, id uint64) (*entity.Product, error)

	// List returns all catalog products in insertion order
	//
	// Possible errors:
	// - ErrStorageFailure: If the datastore fails
	List(ctx context.Context) ([]*entity.Product, error)
}
