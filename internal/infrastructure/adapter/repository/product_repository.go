package repository

import (
	"context"
	"errors"
	"fmt"

	"wallet/internal/domain/entity"
	errs "wallet/internal/domain/error"
	coreport "wallet/internal/domain/port/core"
	"wallet/internal/infrastructure/adapter/model"

	"gorm.io/gorm"
)

// ProductRepository implements the ProductRepository port using GORM
type ProductRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewProductRepository creates a new ProductRepository instance
func NewProductRepository(db *gorm.DB, logger coreport.Logger) *ProductRepository {
	return &ProductRepository{
		db:     db,
		logger: logger,
	}
}

// productModelToEntity converts a product model to a domain entity
func productModelToEntity(m *model.Product) *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Price:       entity.MoneyFromPaise(m.Price),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// Create adds a new product to the catalog
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := model.Product{
		Name:        product.Name,
		Price:       product.Price.Paise(),
		Description: product.Description,
		CreatedAt:   product.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&productModel)
	if result.Error != nil {
		r.logger.Error("Failed to create product", map[string]any{
			"name":  product.Name,
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStorageFailure, result.Error.Error())
	}

	product.ID = productModel.ID

	r.logger.Info("Product created", map[string]any{
		"product_id": product.ID,
		"name":       product.Name,
		"price":      product.Price.String(),
	})
	return nil
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uint64) (*entity.Product, error) {
	var productModel model.Product
	result := r.db.WithContext(ctx).First(&productModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUnknownProduct
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrStorageFailure, result.Error.Error())
	}
	return productModelToEntity(&productModel), nil
}

// List returns all catalog products in insertion order
func (r *ProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productModels []model.Product
	result := r.db.WithContext(ctx).Order("id ASC").Find(&productModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrStorageFailure, result.Error.Error())
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, productModelToEntity(&productModels[i]))
	}
	return products, nil
}
