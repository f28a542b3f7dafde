package usecase

import (
	"context"
	"time"

	"github.com/avelora/storefront-admin-service/internal/apperr"
	"github.com/avelora/storefront-admin-service/internal/catalog"
	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/product"
	"github.com/avelora/storefront-admin-service/internal/product/dto"
	"github.com/avelora/storefront-admin-service/internal/sku"
	"github.com/avelora/storefront-admin-service/internal/store"
	"github.com/avelora/storefront-admin-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo          product.Repository
	catalogUC     catalog.UseCase
	storeUC       store.UseCase
	lenientUpdate bool
	logger        logger.ZapLogger
}

// NewProductUseCase wires the orchestrator. lenientUpdate gates the
// skip-invalid-option-value policy on updates; creation is always strict.
func NewProductUseCase(repo product.Repository, catalogUC catalog.UseCase, storeUC store.UseCase, lenientUpdate bool, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:          repo,
		catalogUC:     catalogUC,
		storeUC:       storeUC,
		lenientUpdate: lenientUpdate,
		logger:        log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if input.UserID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	if input.Name == "" {
		return nil, apperr.Validation("name", "name is required")
	}
	if input.Description == "" {
		return nil, apperr.Validation("description", "description is required")
	}
	if input.Price <= 0 {
		return nil, apperr.Validation("price", "valid price is required")
	}
	if input.CategoryID == "" {
		return nil, apperr.Validation("categoryId", "category is required")
	}
	if input.SubcategoryID == "" {
		return nil, apperr.Validation("subcategoryId", "subcategory is required")
	}
	if input.BrandID == "" {
		return nil, apperr.Validation("brandId", "brand is required")
	}
	if len(input.Images) == 0 {
		return nil, apperr.Validation("images", "at least one image is required")
	}
	if len(input.Variants) == 0 {
		return nil, apperr.ErrEmptyVariantSet
	}
	if input.StoreID == "" {
		return nil, apperr.Validation("storeId", "store is required")
	}

	if err := uc.storeUC.RequireOwnership(ctx, input.UserID, input.StoreID); err != nil {
		return nil, err
	}

	snap, err := uc.catalogUC.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	sub := snap.SubcategoryByID(input.SubcategoryID)
	if sub == nil {
		return nil, apperr.Validation("subcategoryId", "unknown subcategory")
	}
	if !snap.BrandLinkedTo(input.BrandID, sub.CategoryID) {
		return nil, apperr.ErrInvalidBrandCategoryLink
	}

	// Creation is strict: any invalid option-value pair rejects the submission.
	composed, err := composeVariants(snap, input.SubcategoryID, input.Variants, false)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &model.Product{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		StoreID:       input.StoreID,
		SubcategoryID: input.SubcategoryID,
		BrandID:       input.BrandID,
		Name:          input.Name,
		Slug:          sku.Slugify(input.Name),
		Description:   input.Description,
		Price:         input.Price,
		IsFeatured:    input.IsFeatured,
		Status:        model.NormalizeStatus(input.Status),
	}
	if input.DiscountType != "" {
		dt := model.DiscountType(input.DiscountType)
		p.DiscountType = &dt
		p.DiscountValue = input.DiscountValue
	}
	uc.attachChildren(p, input.Images, composed, now)

	if err := uc.repo.CreateFull(ctx, p); err != nil {
		uc.logger.Error("product creation transaction failed",
			zap.String("store_id", input.StoreID), zap.Error(err))
		return nil, apperr.Persistence(err)
	}

	return p, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.findOwned(ctx, input.UserID, input.StoreID, input.ProductID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		p.Name = *input.Name
		p.Slug = sku.Slugify(*input.Name)
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, apperr.Validation("price", "valid price is required")
		}
		p.Price = *input.Price
	}
	if input.SubcategoryID != nil {
		p.SubcategoryID = *input.SubcategoryID
	}
	if input.BrandID != nil {
		p.BrandID = *input.BrandID
	}
	if input.IsFeatured != nil {
		p.IsFeatured = *input.IsFeatured
	}
	if input.Status != nil {
		p.Status = model.NormalizeStatus(*input.Status)
	}
	if input.DiscountType != nil {
		if *input.DiscountType == "" {
			p.DiscountType = nil
			p.DiscountValue = nil
		} else {
			dt := model.DiscountType(*input.DiscountType)
			p.DiscountType = &dt
			p.DiscountValue = input.DiscountValue
		}
	}
	now := time.Now()
	p.UpdatedAt = now

	replaceImages := input.Images != nil
	replaceVariants := input.Variants != nil

	if replaceImages {
		p.Images = buildImages(input.Images, &p.ID, nil)
	}

	if replaceVariants {
		snap, err := uc.catalogUC.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		if snap.SubcategoryByID(p.SubcategoryID) == nil {
			return nil, apperr.Validation("subcategoryId", "unknown subcategory")
		}

		composed, err := composeVariants(snap, p.SubcategoryID, input.Variants, uc.lenientUpdate)
		if err != nil {
			return nil, err
		}
		for _, s := range composed.Skipped {
			uc.logger.Warn("skipping invalid option value on update",
				zap.String("product_id", p.ID),
				zap.Int("variant_index", s.VariantIndex),
				zap.String("option_id", s.OptionID),
				zap.String("option_value_id", s.OptionValueID))
		}
		uc.attachChildren(p, nil, composed, now)
	}

	if err := uc.repo.ReplaceFull(ctx, p, replaceImages, replaceVariants); err != nil {
		uc.logger.Error("product update transaction failed",
			zap.String("product_id", p.ID), zap.Error(err))
		return nil, apperr.Persistence(err)
	}

	return uc.repo.FindByID(ctx, p.ID)
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, userID, storeID, id string) error {
	if _, err := uc.findOwned(ctx, userID, storeID, id); err != nil {
		return err
	}

	if err := uc.repo.DeleteCascade(ctx, id); err != nil {
		uc.logger.Error("product delete transaction failed",
			zap.String("product_id", id), zap.Error(err))
		return apperr.Persistence(err)
	}
	return nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, storeID, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.StoreID != storeID {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) RegenerateSKUs(ctx context.Context, userID, storeID, id string) (*model.Product, error) {
	p, err := uc.findOwned(ctx, userID, storeID, id)
	if err != nil {
		return nil, err
	}

	snap, err := uc.catalogUC.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	categoryName := ""
	if sub := snap.SubcategoryByID(p.SubcategoryID); sub != nil {
		if cat := snap.CategoryByID(sub.CategoryID); cat != nil {
			categoryName = cat.Name
		}
	}
	brandName := ""
	if b := snap.BrandByID(p.BrandID); b != nil {
		brandName = b.Name
	}

	for i := range p.Variants {
		values := make([]string, 0, len(p.Variants[i].Options))
		for _, vo := range p.Variants[i].Options {
			if val := snap.OptionValueByID(vo.OptionValueID); val != nil {
				values = append(values, val.Value)
			}
		}
		code := sku.Generate(p.Name, categoryName, brandName, values)
		p.Variants[i].SKU = &code
	}

	if err := uc.repo.UpdateVariantSKUs(ctx, p.Variants); err != nil {
		return nil, apperr.Persistence(err)
	}
	return p, nil
}

// findOwned enforces store ownership and product existence within that store.
func (uc *productUseCase) findOwned(ctx context.Context, userID, storeID, id string) (*model.Product, error) {
	if err := uc.storeUC.RequireOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}

	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.StoreID != storeID {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

// attachChildren materializes the composed variant set (and, on create, the
// product-level image list) as persistence-ready child rows with fresh ids.
func (uc *productUseCase) attachChildren(p *model.Product, images []dto.ImageInput, composed *composition, now time.Time) {
	if images != nil {
		p.Images = buildImages(images, &p.ID, nil)
	}
	p.OptionIDs = composed.OptionIDs

	p.Variants = make([]model.Variant, 0, len(composed.Variants))
	for _, v := range composed.Variants {
		variant := model.Variant{
			BaseModel: model.BaseModel{
				ID:        uuid.New().String(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			ProductID: p.ID,
			Price:     v.Price,
			Stock:     v.Stock,
		}
		if v.SKU != "" {
			s := v.SKU
			variant.SKU = &s
		}
		variant.Images = buildImages(v.Images, nil, &variant.ID)
		for _, a := range v.Options {
			variant.Options = append(variant.Options, model.VariantOption{
				ID:            uuid.New().String(),
				VariantID:     variant.ID,
				OptionID:      a.OptionID,
				OptionValueID: a.OptionValueID,
			})
		}
		p.Variants = append(p.Variants, variant)
	}
}

func buildImages(inputs []dto.ImageInput, productID, variantID *string) []model.Image {
	out := make([]model.Image, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, model.Image{
			ID:        uuid.New().String(),
			URL:       in.URL,
			ProductID: productID,
			VariantID: variantID,
		})
	}
	return out
}
