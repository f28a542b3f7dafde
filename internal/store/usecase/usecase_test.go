package usecase

import (
	"context"
	"testing"

	"github.com/avelora/storefront-admin-service/internal/apperr"
	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/store/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...zap.Field) {}
func (nopLogger) Info(string, ...zap.Field)  {}
func (nopLogger) Warn(string, ...zap.Field)  {}
func (nopLogger) Error(string, ...zap.Field) {}
func (nopLogger) Fatal(string, ...zap.Field) {}
func (nopLogger) Sync() error                { return nil }

type fakeStoreRepo struct {
	stores  map[string]*model.Store
	deleted []string
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: map[string]*model.Store{}}
}

func (f *fakeStoreRepo) Create(_ context.Context, s *model.Store) error {
	f.stores[s.ID] = s
	return nil
}

func (f *fakeStoreRepo) FindByID(_ context.Context, id string) (*model.Store, error) {
	return f.stores[id], nil
}

func (f *fakeStoreRepo) FindByIDAndUser(_ context.Context, id, userID string) (*model.Store, error) {
	s := f.stores[id]
	if s == nil || s.UserID != userID {
		return nil, nil
	}
	return s, nil
}

func (f *fakeStoreRepo) Update(_ context.Context, s *model.Store) error {
	f.stores[s.ID] = s
	return nil
}

func (f *fakeStoreRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.stores, id)
	return nil
}

func seedStore(repo *fakeStoreRepo) *model.Store {
	s := &model.Store{
		BaseModel: model.BaseModel{ID: "store-1"},
		UserID:    "user-1",
		Name:      "My Store",
	}
	repo.stores[s.ID] = s
	return s
}

func TestCreateStore(t *testing.T) {
	repo := newFakeStoreRepo()
	uc := NewStoreUseCase(repo, nopLogger{})

	t.Run("creates with generated identity", func(t *testing.T) {
		s, err := uc.CreateStore(context.Background(), &dto.CreateStoreInput{
			UserID:  "user-1",
			Name:    "My Store",
			Address: "1 Main St",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, s.ID)
		require.NotNil(t, s.Address)
		assert.Equal(t, "1 Main St", *s.Address)
	})

	t.Run("requires caller identity", func(t *testing.T) {
		_, err := uc.CreateStore(context.Background(), &dto.CreateStoreInput{Name: "X"})
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := uc.CreateStore(context.Background(), &dto.CreateStoreInput{UserID: "user-1"})
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestRequireOwnership(t *testing.T) {
	repo := newFakeStoreRepo()
	seedStore(repo)
	uc := NewStoreUseCase(repo, nopLogger{})

	t.Run("owner passes", func(t *testing.T) {
		assert.NoError(t, uc.RequireOwnership(context.Background(), "user-1", "store-1"))
	})

	t.Run("someone else's store is forbidden", func(t *testing.T) {
		err := uc.RequireOwnership(context.Background(), "user-2", "store-1")
		assert.ErrorIs(t, err, apperr.ErrOwnership)
	})

	t.Run("missing store is not found", func(t *testing.T) {
		err := uc.RequireOwnership(context.Background(), "user-1", "store-missing")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("anonymous caller is unauthenticated", func(t *testing.T) {
		err := uc.RequireOwnership(context.Background(), "", "store-1")
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})
}

func TestUpdateStore(t *testing.T) {
	repo := newFakeStoreRepo()
	seedStore(repo)
	uc := NewStoreUseCase(repo, nopLogger{})

	s, err := uc.UpdateStore(context.Background(), &dto.UpdateStoreInput{
		ID:     "store-1",
		UserID: "user-1",
		Name:   "Renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", s.Name)

	_, err = uc.UpdateStore(context.Background(), &dto.UpdateStoreInput{
		ID:     "store-1",
		UserID: "user-2",
		Name:   "Hijack",
	})
	assert.ErrorIs(t, err, apperr.ErrOwnership)
}

func TestDeleteStore(t *testing.T) {
	repo := newFakeStoreRepo()
	seedStore(repo)
	uc := NewStoreUseCase(repo, nopLogger{})

	require.NoError(t, uc.DeleteStore(context.Background(), "user-1", "store-1"))
	assert.Equal(t, []string{"store-1"}, repo.deleted)

	err := uc.DeleteStore(context.Background(), "user-1", "store-1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
