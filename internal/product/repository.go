package product

import (
	"context"

	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/product/dto"
)

type Repository interface {
	// CreateFull persists the product and all of its children (images, derived
	// product-option rows, variants with their images and option links) in one
	// transaction. Nothing persists on failure.
	CreateFull(ctx context.Context, p *model.Product) error

	// ReplaceFull updates the base record and, per flag, wholesale-replaces the
	// image set and/or the variant set (with its derived product-option rows).
	// The whole replacement is one transaction.
	ReplaceFull(ctx context.Context, p *model.Product, replaceImages, replaceVariants bool) error

	// DeleteCascade removes the product and every row referencing it, in one
	// transaction.
	DeleteCascade(ctx context.Context, id string) error

	// UpdateVariantSKUs rewrites only the sku column of the given variants.
	UpdateVariantSKUs(ctx context.Context, variants []model.Variant) error

	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
}
