package usecase

import (
	"context"
	"time"

	"github.com/avelora/storefront-admin-service/internal/apperr"
	"github.com/avelora/storefront-admin-service/internal/catalog"
	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/sales"
	"github.com/avelora/storefront-admin-service/internal/sales/dto"
	"github.com/avelora/storefront-admin-service/pkg/logger"
	"github.com/google/uuid"
)

type salesUseCase struct {
	repo      sales.Repository
	catalogUC catalog.UseCase
	logger    logger.ZapLogger
	now       func() time.Time
}

func NewSalesUseCase(repo sales.Repository, catalogUC catalog.UseCase, log logger.ZapLogger) sales.UseCase {
	return &salesUseCase{
		repo:      repo,
		catalogUC: catalogUC,
		logger:    log,
		now:       time.Now,
	}
}

func (uc *salesUseCase) Dashboard(ctx context.Context, storeID string) (*dto.DashboardData, error) {
	if storeID == "" {
		return nil, apperr.Validation("storeId", "store is required")
	}

	orders, err := uc.repo.OrdersByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	lines, err := uc.repo.LinesByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	productNames, err := uc.repo.ProductNamesByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	snap, err := uc.catalogUC.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	categoryNames := make([]string, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		categoryNames = append(categoryNames, c.Name)
	}

	return aggregate(uc.now(), orders, lines, categoryNames, productNames), nil
}

func (uc *salesUseCase) RecordOrder(ctx context.Context, input *dto.RecordOrderInput) error {
	if input.OrderID == "" || input.StoreID == "" {
		return apperr.Validation("order", "order id and store id are required")
	}

	order := &model.Order{
		ID:        input.OrderID,
		StoreID:   input.StoreID,
		UserID:    input.UserID,
		Total:     input.Total,
		Status:    input.Status,
		CreatedAt: uc.now(),
	}

	lines := make([]model.OrderProduct, 0, len(input.Items))
	for _, item := range input.Items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		lines = append(lines, model.OrderProduct{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  qty,
		})
	}

	return uc.repo.InsertOrder(ctx, order, lines)
}
