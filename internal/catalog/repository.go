package catalog

import (
	"context"

	"github.com/avelora/storefront-admin-service/internal/model"
)

type Repository interface {
	// LoadSnapshot reads the whole reference hierarchy in one pass. Callers treat
	// the result as consistent for the duration of one validation/composition run.
	LoadSnapshot(ctx context.Context) (*model.CatalogSnapshot, error)

	// Catalog administration (bulk seeding and incremental adds).
	CreateCategory(ctx context.Context, c *model.Category) error
	CreateSubcategory(ctx context.Context, s *model.Subcategory) error
	CreateOption(ctx context.Context, o *model.Option) error
	CreateOptionValue(ctx context.Context, v *model.OptionValue) error
	CreateBrand(ctx context.Context, b *model.Brand) error
}
