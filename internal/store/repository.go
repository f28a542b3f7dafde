package store

import (
	"context"

	"github.com/avelora/storefront-admin-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, s *model.Store) error
	FindByID(ctx context.Context, id string) (*model.Store, error)
	FindByIDAndUser(ctx context.Context, id, userID string) (*model.Store, error)
	Update(ctx context.Context, s *model.Store) error
	Delete(ctx context.Context, id string) error
}
