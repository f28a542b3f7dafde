package sales

import (
	"context"

	"github.com/avelora/storefront-admin-service/internal/sales/dto"
)

type UseCase interface {
	// Dashboard reduces the store's order history into the revenue/sales summary.
	Dashboard(ctx context.Context, storeID string) (*dto.DashboardData, error)

	// RecordOrder ingests one order event (from the order service's topic).
	RecordOrder(ctx context.Context, input *dto.RecordOrderInput) error
}
