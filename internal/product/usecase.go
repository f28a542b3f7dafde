package product

import (
	"context"

	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, storeID, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, userID, storeID, id string) error

	// RegenerateSKUs recomputes every variant's SKU of a product from current
	// catalog display names and persists them.
	RegenerateSKUs(ctx context.Context, userID, storeID, id string) (*model.Product, error)
}
