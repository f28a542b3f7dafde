package usecase

import (
	"context"
	"testing"

	"github.com/avelora/storefront-admin-service/internal/apperr"
	catalogdto "github.com/avelora/storefront-admin-service/internal/catalog/dto"
	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/product/dto"
	storedto "github.com/avelora/storefront-admin-service/internal/store/dto"
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

type fakeCatalogUC struct {
	snap *model.CatalogSnapshot
	err  error
}

func (f *fakeCatalogUC) Snapshot(context.Context) (*model.CatalogSnapshot, error) {
	return f.snap, f.err
}
func (f *fakeCatalogUC) CreateCategory(context.Context, *catalogdto.CreateCategoryInput) (*model.Category, error) {
	return nil, nil
}
func (f *fakeCatalogUC) CreateSubcategory(context.Context, *catalogdto.CreateSubcategoryInput) (*model.Subcategory, error) {
	return nil, nil
}
func (f *fakeCatalogUC) CreateOption(context.Context, *catalogdto.CreateOptionInput) (*model.Option, error) {
	return nil, nil
}
func (f *fakeCatalogUC) CreateOptionValue(context.Context, *catalogdto.CreateOptionValueInput) (*model.OptionValue, error) {
	return nil, nil
}
func (f *fakeCatalogUC) CreateBrand(context.Context, *catalogdto.CreateBrandInput) (*model.Brand, error) {
	return nil, nil
}
func (f *fakeCatalogUC) SeedCatalog(context.Context, *catalogdto.SeedCatalogInput) error {
	return nil
}

type fakeStoreUC struct {
	ownershipErr error
}

func (f *fakeStoreUC) CreateStore(context.Context, *storedto.CreateStoreInput) (*model.Store, error) {
	return nil, nil
}
func (f *fakeStoreUC) UpdateStore(context.Context, *storedto.UpdateStoreInput) (*model.Store, error) {
	return nil, nil
}
func (f *fakeStoreUC) DeleteStore(context.Context, string, string) error { return nil }
func (f *fakeStoreUC) RequireOwnership(context.Context, string, string) error {
	return f.ownershipErr
}

type fakeRepo struct {
	products map[string]*model.Product

	created          *model.Product
	createErr        error
	replaced         *model.Product
	replacedImages   bool
	replacedVariants bool
	deleted          []string
	skuUpdates       []model.Variant
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: map[string]*model.Product{}}
}

func (f *fakeRepo) CreateFull(_ context.Context, p *model.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = p
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) ReplaceFull(_ context.Context, p *model.Product, replaceImages, replaceVariants bool) error {
	f.replaced = p
	f.replacedImages = replaceImages
	f.replacedVariants = replaceVariants
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) DeleteCascade(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.products, id)
	return nil
}

func (f *fakeRepo) UpdateVariantSKUs(_ context.Context, variants []model.Variant) error {
	f.skuUpdates = variants
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	return f.products[id], nil
}

func (f *fakeRepo) FindAll(_ context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		if filters == nil || filters.StoreID == "" || p.StoreID == filters.StoreID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func validCreateInput() *dto.CreateProductInput {
	return &dto.CreateProductInput{
		UserID:        "user-1",
		StoreID:       "store-1",
		Name:          "Classic Tee",
		Description:   "A classic tee",
		Price:         19.99,
		CategoryID:    "cat-clothing",
		SubcategoryID: "sub-tshirts",
		BrandID:       "brand-nike",
		Images:        []dto.ImageInput{{URL: "https://img/1.png"}},
		Variants: []dto.VariantInput{
			{Price: 19.99, Stock: 5, Options: []dto.OptionAssignment{
				assignment("opt-color", "val-red"),
				assignment("opt-size", "val-s"),
			}},
		},
	}
}

func newTestUC(repo *fakeRepo, lenient bool) *productUseCase {
	return &productUseCase{
		repo:          repo,
		catalogUC:     &fakeCatalogUC{snap: testSnapshot()},
		storeUC:       &fakeStoreUC{},
		lenientUpdate: lenient,
		logger:        nopLogger{},
	}
}

func seedProduct(repo *fakeRepo) *model.Product {
	p := &model.Product{
		BaseModel:     model.BaseModel{ID: "prod-1"},
		StoreID:       "store-1",
		SubcategoryID: "sub-tshirts",
		BrandID:       "brand-nike",
		Name:          "Classic Tee",
		Slug:          "classic-tee",
		Description:   "A classic tee",
		Price:         19.99,
		Status:        model.StatusDraft,
		Variants: []model.Variant{
			{
				BaseModel: model.BaseModel{ID: "var-old"},
				ProductID: "prod-1",
				Price:     19.99,
				Stock:     5,
				Options: []model.VariantOption{
					{ID: "vo-1", VariantID: "var-old", OptionID: "opt-color", OptionValueID: "val-red"},
					{ID: "vo-2", VariantID: "var-old", OptionID: "opt-size", OptionValueID: "val-s"},
				},
			},
		},
	}
	repo.products[p.ID] = p
	return p
}

func TestCreateProduct(t *testing.T) {
	t.Run("persists a fully composed product", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newTestUC(repo, false)

		p, err := uc.CreateProduct(context.Background(), validCreateInput())
		require.NoError(t, err)
		require.NotNil(t, repo.created)

		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "classic-tee", p.Slug)
		assert.Equal(t, model.StatusDraft, p.Status)
		assert.Equal(t, []string{"opt-color", "opt-size"}, p.OptionIDs)
		require.Len(t, p.Variants, 1)
		require.Len(t, p.Variants[0].Options, 2)
		assert.Equal(t, "val-red", p.Variants[0].Options[0].OptionValueID)
		assert.Equal(t, p.Variants[0].ID, p.Variants[0].Options[0].VariantID)
		require.Len(t, p.Images, 1)
		require.NotNil(t, p.Images[0].ProductID)
		assert.Equal(t, p.ID, *p.Images[0].ProductID)
	})

	t.Run("rejects missing fields before touching the repository", func(t *testing.T) {
		mutations := map[string]func(*dto.CreateProductInput){
			"name":        func(in *dto.CreateProductInput) { in.Name = "" },
			"description": func(in *dto.CreateProductInput) { in.Description = "" },
			"price":       func(in *dto.CreateProductInput) { in.Price = 0 },
			"category":    func(in *dto.CreateProductInput) { in.CategoryID = "" },
			"subcategory": func(in *dto.CreateProductInput) { in.SubcategoryID = "" },
			"brand":       func(in *dto.CreateProductInput) { in.BrandID = "" },
			"images":      func(in *dto.CreateProductInput) { in.Images = nil },
			"store":       func(in *dto.CreateProductInput) { in.StoreID = "" },
		}
		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				repo := newFakeRepo()
				uc := newTestUC(repo, false)
				in := validCreateInput()
				mutate(in)

				_, err := uc.CreateProduct(context.Background(), in)
				require.Error(t, err)
				assert.True(t, apperr.IsValidation(err))
				assert.Nil(t, repo.created)
			})
		}
	})

	t.Run("rejects empty variant set", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newTestUC(repo, false)
		in := validCreateInput()
		in.Variants = nil

		_, err := uc.CreateProduct(context.Background(), in)
		assert.ErrorIs(t, err, apperr.ErrEmptyVariantSet)
	})

	t.Run("rejects missing caller identity", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newTestUC(repo, false)
		in := validCreateInput()
		in.UserID = ""

		_, err := uc.CreateProduct(context.Background(), in)
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})

	t.Run("rejects brand not linked to the category", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newTestUC(repo, false)
		in := validCreateInput()
		in.SubcategoryID = "sub-sneakers" // Nike is linked to clothing only
		in.Variants = []dto.VariantInput{
			{Price: 10, Stock: 1, Options: []dto.OptionAssignment{
				assignment("opt-material", "val-leather"),
			}},
		}

		_, err := uc.CreateProduct(context.Background(), in)
		assert.ErrorIs(t, err, apperr.ErrInvalidBrandCategoryLink)
	})

	t.Run("invalid option value never reaches persistence", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newTestUC(repo, true) // lenient flag applies to updates only
		in := validCreateInput()
		in.Variants[0].Options[0].OptionValueID = "val-s"

		_, err := uc.CreateProduct(context.Background(), in)
		assert.ErrorIs(t, err, apperr.ErrOptionValueMismatch)
		assert.Nil(t, repo.created)
	})

	t.Run("propagates ownership failure", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newTestUC(repo, false)
		uc.storeUC = &fakeStoreUC{ownershipErr: apperr.ErrOwnership}

		_, err := uc.CreateProduct(context.Background(), validCreateInput())
		assert.ErrorIs(t, err, apperr.ErrOwnership)
		assert.Nil(t, repo.created)
	})

	t.Run("wraps repository failure as persistence error", func(t *testing.T) {
		repo := newFakeRepo()
		repo.createErr = assert.AnError
		uc := newTestUC(repo, false)

		_, err := uc.CreateProduct(context.Background(), validCreateInput())
		assert.ErrorIs(t, err, apperr.ErrPersistence)
	})
}

func TestUpdateProduct(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("merges scalar fields and re-derives the slug", func(t *testing.T) {
		repo := newFakeRepo()
		seedProduct(repo)
		uc := newTestUC(repo, true)

		p, err := uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
			ProductID: "prod-1",
			UserID:    "user-1",
			StoreID:   "store-1",
			Name:      strPtr("Premium Tee"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Premium Tee", p.Name)
		assert.Equal(t, "premium-tee", p.Slug)
		assert.False(t, repo.replacedImages)
		assert.False(t, repo.replacedVariants)
	})

	t.Run("replaces the variant set with fresh identities", func(t *testing.T) {
		repo := newFakeRepo()
		seedProduct(repo)
		uc := newTestUC(repo, true)

		p, err := uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
			ProductID: "prod-1",
			UserID:    "user-1",
			StoreID:   "store-1",
			Variants: []dto.VariantInput{
				{Price: 24.99, Stock: 2, Options: []dto.OptionAssignment{
					assignment("opt-color", "val-blue"),
					assignment("opt-size", "val-m"),
				}},
			},
		})
		require.NoError(t, err)
		assert.True(t, repo.replacedVariants)
		require.Len(t, p.Variants, 1)
		assert.NotEqual(t, "var-old", p.Variants[0].ID)
		assert.Equal(t, "val-blue", p.Variants[0].Options[0].OptionValueID)
	})

	t.Run("lenient policy drops invalid pairs instead of failing", func(t *testing.T) {
		repo := newFakeRepo()
		seedProduct(repo)
		uc := newTestUC(repo, true)

		p, err := uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
			ProductID: "prod-1",
			UserID:    "user-1",
			StoreID:   "store-1",
			Variants: []dto.VariantInput{
				{Price: 24.99, Stock: 2, Options: []dto.OptionAssignment{
					assignment("opt-color", "val-blue"),
					assignment("opt-size", "val-blue"), // invalid pairing
				}},
			},
		})
		require.NoError(t, err)
		require.Len(t, p.Variants, 1)
		require.Len(t, p.Variants[0].Options, 1)
		assert.Equal(t, "opt-color", p.Variants[0].Options[0].OptionID)
	})

	t.Run("strict policy fails the same submission", func(t *testing.T) {
		repo := newFakeRepo()
		seedProduct(repo)
		uc := newTestUC(repo, false)

		_, err := uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
			ProductID: "prod-1",
			UserID:    "user-1",
			StoreID:   "store-1",
			Variants: []dto.VariantInput{
				{Price: 24.99, Stock: 2, Options: []dto.OptionAssignment{
					assignment("opt-size", "val-blue"),
				}},
			},
		})
		assert.ErrorIs(t, err, apperr.ErrOptionValueMismatch)
		assert.Nil(t, repo.replaced)
	})

	t.Run("product in another store reads as not found", func(t *testing.T) {
		repo := newFakeRepo()
		seedProduct(repo)
		uc := newTestUC(repo, true)

		_, err := uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
			ProductID: "prod-1",
			UserID:    "user-1",
			StoreID:   "store-other",
			Name:      strPtr("X"),
		})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("clearing the discount type clears the value", func(t *testing.T) {
		repo := newFakeRepo()
		p := seedProduct(repo)
		dt := model.DiscountPercentage
		dv := 10.0
		p.DiscountType = &dt
		p.DiscountValue = &dv
		uc := newTestUC(repo, true)

		empty := ""
		updated, err := uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
			ProductID:    "prod-1",
			UserID:       "user-1",
			StoreID:      "store-1",
			DiscountType: &empty,
		})
		require.NoError(t, err)
		assert.Nil(t, updated.DiscountType)
		assert.Nil(t, updated.DiscountValue)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("cascades through the repository", func(t *testing.T) {
		repo := newFakeRepo()
		seedProduct(repo)
		uc := newTestUC(repo, true)

		err := uc.DeleteProduct(context.Background(), "user-1", "store-1", "prod-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"prod-1"}, repo.deleted)
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newTestUC(repo, true)

		err := uc.DeleteProduct(context.Background(), "user-1", "store-1", "prod-missing")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Empty(t, repo.deleted)
	})
}

func TestGetProduct(t *testing.T) {
	repo := newFakeRepo()
	seedProduct(repo)
	uc := newTestUC(repo, true)

	p, err := uc.GetProduct(context.Background(), "store-1", "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "prod-1", p.ID)

	_, err = uc.GetProduct(context.Background(), "store-other", "prod-1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRegenerateSKUs(t *testing.T) {
	repo := newFakeRepo()
	seedProduct(repo)
	uc := newTestUC(repo, true)

	p, err := uc.RegenerateSKUs(context.Background(), "user-1", "store-1", "prod-1")
	require.NoError(t, err)
	require.Len(t, p.Variants, 1)
	require.NotNil(t, p.Variants[0].SKU)
	assert.Equal(t, "CLA-CLO-NIK-RED-S", *p.Variants[0].SKU)
	require.Len(t, repo.skuUpdates, 1)
}
