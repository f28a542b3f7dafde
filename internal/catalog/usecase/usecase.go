package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avelora/storefront-admin-service/internal/apperr"
	"github.com/avelora/storefront-admin-service/internal/catalog"
	"github.com/avelora/storefront-admin-service/internal/catalog/dto"
	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/sku"
	"github.com/avelora/storefront-admin-service/pkg/cache"
	"github.com/avelora/storefront-admin-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	snapshotCacheKey = "catalog:snapshot"
	snapshotCacheTTL = 60 * time.Second
)

type catalogUseCase struct {
	repo   catalog.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewCatalogUseCase(repo catalog.Repository, cache *cache.RedisClient, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *catalogUseCase) Snapshot(ctx context.Context) (*model.CatalogSnapshot, error) {
	if uc.cache != nil {
		if val, err := uc.cache.Get(ctx, snapshotCacheKey); err == nil {
			var snap model.CatalogSnapshot
			if err := json.Unmarshal([]byte(val), &snap); err == nil {
				return &snap, nil
			}
		}
	}

	snap, err := uc.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(snap); err == nil {
			if err := uc.cache.Set(ctx, snapshotCacheKey, data, snapshotCacheTTL); err != nil {
				uc.logger.Warn("failed to cache catalog snapshot", zap.Error(err))
			}
		}
	}

	return snap, nil
}

func (uc *catalogUseCase) invalidateSnapshot(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Del(ctx, snapshotCacheKey); err != nil {
		uc.logger.Warn("failed to invalidate catalog snapshot cache", zap.Error(err))
	}
}

func (uc *catalogUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if input.Name == "" {
		return nil, apperr.Validation("name", "name is required")
	}

	c := &model.Category{
		BaseModel: newBase(),
		Name:      input.Name,
		Slug:      sku.Slugify(input.Name),
	}
	if err := uc.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	uc.invalidateSnapshot(ctx)
	return c, nil
}

func (uc *catalogUseCase) CreateSubcategory(ctx context.Context, input *dto.CreateSubcategoryInput) (*model.Subcategory, error) {
	if input.Name == "" {
		return nil, apperr.Validation("name", "name is required")
	}
	if input.CategoryID == "" {
		return nil, apperr.Validation("categoryId", "category is required")
	}

	s := &model.Subcategory{
		BaseModel:  newBase(),
		CategoryID: input.CategoryID,
		Name:       input.Name,
	}
	if err := uc.repo.CreateSubcategory(ctx, s); err != nil {
		return nil, err
	}
	uc.invalidateSnapshot(ctx)
	return s, nil
}

func (uc *catalogUseCase) CreateOption(ctx context.Context, input *dto.CreateOptionInput) (*model.Option, error) {
	if input.Name == "" {
		return nil, apperr.Validation("name", "name is required")
	}
	if input.SubcategoryID == "" {
		return nil, apperr.Validation("subcategoryId", "subcategory is required")
	}

	o := &model.Option{
		BaseModel:     newBase(),
		SubcategoryID: input.SubcategoryID,
		Name:          input.Name,
	}
	if err := uc.repo.CreateOption(ctx, o); err != nil {
		return nil, err
	}
	uc.invalidateSnapshot(ctx)
	return o, nil
}

func (uc *catalogUseCase) CreateOptionValue(ctx context.Context, input *dto.CreateOptionValueInput) (*model.OptionValue, error) {
	if input.Value == "" {
		return nil, apperr.Validation("value", "value is required")
	}
	if input.OptionID == "" {
		return nil, apperr.Validation("optionId", "option is required")
	}

	v := &model.OptionValue{
		BaseModel: newBase(),
		OptionID:  input.OptionID,
		Value:     input.Value,
	}
	if err := uc.repo.CreateOptionValue(ctx, v); err != nil {
		return nil, err
	}
	uc.invalidateSnapshot(ctx)
	return v, nil
}

func (uc *catalogUseCase) CreateBrand(ctx context.Context, input *dto.CreateBrandInput) (*model.Brand, error) {
	if input.Name == "" {
		return nil, apperr.Validation("name", "name is required")
	}

	b := &model.Brand{
		BaseModel:   newBase(),
		Name:        input.Name,
		Slug:        sku.Slugify(input.Name),
		CategoryIDs: input.CategoryIDs,
	}
	if err := uc.repo.CreateBrand(ctx, b); err != nil {
		return nil, err
	}
	uc.invalidateSnapshot(ctx)
	return b, nil
}

func (uc *catalogUseCase) SeedCatalog(ctx context.Context, input *dto.SeedCatalogInput) error {
	if len(input.Categories) == 0 {
		return apperr.Validation("categories", "at least one category is required")
	}

	categoryIDs := make(map[string]string, len(input.Categories))
	for _, c := range input.Categories {
		if c.Name == "" {
			return apperr.Validation("categories", "category name is required")
		}
		row := &model.Category{
			BaseModel: newBase(),
			Name:      c.Name,
			Slug:      sku.Slugify(c.Name),
		}
		if err := uc.repo.CreateCategory(ctx, row); err != nil {
			return err
		}
		categoryIDs[c.Name] = row.ID
	}

	for _, b := range input.Brands {
		if b.Name == "" {
			return apperr.Validation("brands", "brand name is required")
		}
		row := &model.Brand{
			BaseModel: newBase(),
			Name:      b.Name,
			Slug:      sku.Slugify(b.Name),
		}
		for _, name := range b.Categories {
			id, ok := categoryIDs[name]
			if !ok {
				return apperr.Validation("brands", "unknown category "+name)
			}
			row.CategoryIDs = append(row.CategoryIDs, id)
		}
		if err := uc.repo.CreateBrand(ctx, row); err != nil {
			return err
		}
	}

	for _, s := range input.Subcategories {
		categoryID, ok := categoryIDs[s.Category]
		if !ok {
			return apperr.Validation("subcategories", "unknown category "+s.Category)
		}
		sub := &model.Subcategory{
			BaseModel:  newBase(),
			CategoryID: categoryID,
			Name:       s.Name,
		}
		if err := uc.repo.CreateSubcategory(ctx, sub); err != nil {
			return err
		}

		for _, o := range s.Options {
			opt := &model.Option{
				BaseModel:     newBase(),
				SubcategoryID: sub.ID,
				Name:          o.Name,
			}
			if err := uc.repo.CreateOption(ctx, opt); err != nil {
				return err
			}
			for _, v := range o.Values {
				val := &model.OptionValue{
					BaseModel: newBase(),
					OptionID:  opt.ID,
					Value:     v,
				}
				if err := uc.repo.CreateOptionValue(ctx, val); err != nil {
					return err
				}
			}
		}
	}

	uc.invalidateSnapshot(ctx)
	return nil
}

func newBase() model.BaseModel {
	now := time.Now()
	return model.BaseModel{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
