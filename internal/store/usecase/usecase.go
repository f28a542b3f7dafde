package usecase

import (
	"context"
	"time"

	"github.com/avelora/storefront-admin-service/internal/apperr"
	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/store"
	"github.com/avelora/storefront-admin-service/internal/store/dto"
	"github.com/avelora/storefront-admin-service/pkg/logger"
	"github.com/google/uuid"
)

type storeUseCase struct {
	repo   store.Repository
	logger logger.ZapLogger
}

func NewStoreUseCase(repo store.Repository, log logger.ZapLogger) store.UseCase {
	return &storeUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *storeUseCase) CreateStore(ctx context.Context, input *dto.CreateStoreInput) (*model.Store, error) {
	if input.UserID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	if input.Name == "" {
		return nil, apperr.Validation("name", "name is required")
	}

	now := time.Now()
	s := &model.Store{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: input.UserID,
		Name:   input.Name,
	}
	if input.Address != "" {
		s.Address = &input.Address
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *storeUseCase) UpdateStore(ctx context.Context, input *dto.UpdateStoreInput) (*model.Store, error) {
	if input.Name == "" {
		return nil, apperr.Validation("name", "name is required")
	}

	s, err := uc.findOwned(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	s.Name = input.Name
	if input.Address != "" {
		s.Address = &input.Address
	}
	s.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *storeUseCase) DeleteStore(ctx context.Context, userID, storeID string) error {
	if _, err := uc.findOwned(ctx, userID, storeID); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, storeID)
}

func (uc *storeUseCase) RequireOwnership(ctx context.Context, userID, storeID string) error {
	_, err := uc.findOwned(ctx, userID, storeID)
	return err
}

func (uc *storeUseCase) findOwned(ctx context.Context, userID, storeID string) (*model.Store, error) {
	if userID == "" {
		return nil, apperr.ErrUnauthenticated
	}

	s, err := uc.repo.FindByIDAndUser(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}

	// Distinguish "not yours" from "does not exist".
	other, err := uc.repo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if other == nil {
		return nil, apperr.ErrNotFound
	}
	return nil, apperr.ErrOwnership
}
