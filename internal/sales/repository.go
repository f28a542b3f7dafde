package sales

import (
	"context"

	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/sales/dto"
)

type Repository interface {
	// InsertOrder persists an order and its lines in one transaction.
	InsertOrder(ctx context.Context, order *model.Order, lines []model.OrderProduct) error

	OrdersByStore(ctx context.Context, storeID string) ([]model.Order, error)

	// LinesByStore returns every order line of a store joined with product and
	// category display names.
	LinesByStore(ctx context.Context, storeID string) ([]dto.OrderLine, error)

	// ProductNamesByStore lists the store's product names so rankings include
	// products that never sold.
	ProductNamesByStore(ctx context.Context, storeID string) ([]string, error)
}
