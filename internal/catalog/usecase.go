package catalog

import (
	"context"

	"github.com/avelora/storefront-admin-service/internal/catalog/dto"
	"github.com/avelora/storefront-admin-service/internal/model"
)

type UseCase interface {
	// Snapshot returns the catalog, served from a short-TTL cache when warm.
	Snapshot(ctx context.Context) (*model.CatalogSnapshot, error)

	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	CreateSubcategory(ctx context.Context, input *dto.CreateSubcategoryInput) (*model.Subcategory, error)
	CreateOption(ctx context.Context, input *dto.CreateOptionInput) (*model.Option, error)
	CreateOptionValue(ctx context.Context, input *dto.CreateOptionValueInput) (*model.OptionValue, error)
	CreateBrand(ctx context.Context, input *dto.CreateBrandInput) (*model.Brand, error)

	// SeedCatalog loads a whole hierarchy (categories, brands with links,
	// subcategories with options and values) in one call, keyed by display names.
	SeedCatalog(ctx context.Context, input *dto.SeedCatalogInput) error
}
