package catalog

import (
	"context"
	"strings"

	"wallet/internal/domain/entity"
	errs "wallet/internal/domain/error"
	coreport "wallet/internal/domain/port/core"
	"wallet/internal/domain/port/persistence"
)

// Product name constraints
const (
	MinNameLength        = 2
	MaxNameLength        = 255
	MaxDescriptionLength = 1000
)

// Service manages the product catalog
type Service struct {
	products     persistence.ProductRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new catalog service instance
func NewService(
	products persistence.ProductRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		products:     products,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AddProduct validates and stores a new catalog entry. The price goes
// through the same amount validation as every other monetary input.
func (s *Service) AddProduct(ctx context.Context, name, price, description string) (*entity.Product, error) {
	name = strings.TrimSpace(name)
	if len(name) < MinNameLength || len(name) > MaxNameLength {
		return nil, errs.ErrInvalidRequest
	}
	if len(description) > MaxDescriptionLength {
		return nil, errs.ErrInvalidRequest
	}

	amt, err := entity.ParseAmount(price)
	if err != nil {
		s.logger.Warn("Rejected product price", map[string]any{
			"name":  name,
			"price": price,
			"error": err.Error(),
		})
		return nil, err
	}

	product := &entity.Product{
		Name:        name,
		Price:       amt,
		Description: description,
		CreatedAt:   s.timeProvider.Now(),
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product added", map[string]any{
		"product_id": product.ID,
		"name":       product.Name,
		"price":      product.Price.String(),
	})
	return product, nil
}

// ListProducts returns all catalog entries in insertion order
func (s *Service) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return s.products.List(ctx)
}
