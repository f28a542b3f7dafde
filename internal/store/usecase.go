package store

import (
	"context"

	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/store/dto"
)

type UseCase interface {
	CreateStore(ctx context.Context, input *dto.CreateStoreInput) (*model.Store, error)
	UpdateStore(ctx context.Context, input *dto.UpdateStoreInput) (*model.Store, error)
	DeleteStore(ctx context.Context, userID, storeID string) error

	// RequireOwnership is the "caller owns store S" capability consumed by product
	// authoring. ErrOwnership when the store exists but belongs to someone else,
	// ErrNotFound when it does not exist.
	RequireOwnership(ctx context.Context, userID, storeID string) error
}
