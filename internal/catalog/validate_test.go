package catalog

import (
	"testing"

	"github.com/avelora/storefront-admin-service/internal/apperr"
	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotFixture() *model.CatalogSnapshot {
	return &model.CatalogSnapshot{
		Subcategories: []model.Subcategory{
			{BaseModel: model.BaseModel{ID: "sub-tshirts"}, CategoryID: "cat-men", Name: "T-Shirts"},
			{BaseModel: model.BaseModel{ID: "sub-phones"}, CategoryID: "cat-elec", Name: "Phones"},
		},
		Options: []model.Option{
			{BaseModel: model.BaseModel{ID: "opt-color"}, SubcategoryID: "sub-tshirts", Name: "Color"},
			{BaseModel: model.BaseModel{ID: "opt-size"}, SubcategoryID: "sub-tshirts", Name: "Size"},
			{BaseModel: model.BaseModel{ID: "opt-storage"}, SubcategoryID: "sub-phones", Name: "Storage"},
		},
	}
}

func TestValidateOptionKeys(t *testing.T) {
	snap := snapshotFixture()

	t.Run("accepts options of the subcategory", func(t *testing.T) {
		opts, err := ValidateOptionKeys(snap, "sub-tshirts", []string{"opt-color", "opt-size"})
		require.NoError(t, err)
		assert.Len(t, opts, 2)
	})

	t.Run("accepts empty candidate set", func(t *testing.T) {
		opts, err := ValidateOptionKeys(snap, "sub-tshirts", nil)
		require.NoError(t, err)
		assert.Empty(t, opts)
	})

	t.Run("deduplicates candidates", func(t *testing.T) {
		opts, err := ValidateOptionKeys(snap, "sub-tshirts", []string{"opt-color", "opt-color"})
		require.NoError(t, err)
		assert.Len(t, opts, 1)
	})

	t.Run("rejects option of another subcategory", func(t *testing.T) {
		_, err := ValidateOptionKeys(snap, "sub-tshirts", []string{"opt-color", "opt-storage"})
		assert.ErrorIs(t, err, apperr.ErrInvalidOptionSet)
	})

	t.Run("rejects unknown id", func(t *testing.T) {
		_, err := ValidateOptionKeys(snap, "sub-tshirts", []string{"opt-material"})
		assert.ErrorIs(t, err, apperr.ErrInvalidOptionSet)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := ValidateOptionKeys(snap, "sub-tshirts", []string{""})
		assert.ErrorIs(t, err, apperr.ErrInvalidOptionSet)
	})

	t.Run("all or nothing", func(t *testing.T) {
		_, err := ValidateOptionKeys(snap, "sub-tshirts", []string{"opt-color", "bogus"})
		assert.ErrorIs(t, err, apperr.ErrInvalidOptionSet)
	})
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, Dedupe(nil))
}
