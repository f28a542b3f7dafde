package repository

import (
	"context"

	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

type brandCategoryRow struct {
	BrandID    string `db:"brand_id"`
	CategoryID string `db:"category_id"`
}

func (r *PGRepository) LoadSnapshot(ctx context.Context) (*model.CatalogSnapshot, error) {
	snap := &model.CatalogSnapshot{}

	if err := r.DB.SelectContext(ctx, &snap.Categories, `SELECT * FROM categories ORDER BY name`); err != nil {
		return nil, err
	}
	if err := r.DB.SelectContext(ctx, &snap.Subcategories, `SELECT * FROM subcategories ORDER BY name`); err != nil {
		return nil, err
	}
	if err := r.DB.SelectContext(ctx, &snap.Options, `SELECT * FROM options ORDER BY name`); err != nil {
		return nil, err
	}
	if err := r.DB.SelectContext(ctx, &snap.OptionValues, `SELECT * FROM option_values ORDER BY value`); err != nil {
		return nil, err
	}
	if err := r.DB.SelectContext(ctx, &snap.Brands, `SELECT * FROM brands ORDER BY name`); err != nil {
		return nil, err
	}

	var links []brandCategoryRow
	if err := r.DB.SelectContext(ctx, &links, `SELECT brand_id, category_id FROM brand_categories`); err != nil {
		return nil, err
	}
	byBrand := make(map[string][]string, len(snap.Brands))
	for _, l := range links {
		byBrand[l.BrandID] = append(byBrand[l.BrandID], l.CategoryID)
	}
	for i := range snap.Brands {
		snap.Brands[i].CategoryIDs = byBrand[snap.Brands[i].ID]
	}

	return snap, nil
}

func (r *PGRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, name, slug, created_at, updated_at)
        VALUES (:id, :name, :slug, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) CreateSubcategory(ctx context.Context, s *model.Subcategory) error {
	query := `
        INSERT INTO subcategories (id, category_id, name, created_at, updated_at)
        VALUES (:id, :category_id, :name, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) CreateOption(ctx context.Context, o *model.Option) error {
	query := `
        INSERT INTO options (id, subcategory_id, name, created_at, updated_at)
        VALUES (:id, :subcategory_id, :name, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, o)
	return err
}

func (r *PGRepository) CreateOptionValue(ctx context.Context, v *model.OptionValue) error {
	query := `
        INSERT INTO option_values (id, option_id, value, created_at, updated_at)
        VALUES (:id, :option_id, :value, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, v)
	return err
}

func (r *PGRepository) CreateBrand(ctx context.Context, b *model.Brand) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO brands (id, name, slug, created_at, updated_at)
        VALUES (:id, :name, :slug, :created_at, :updated_at)
    `
	if _, err := tx.NamedExecContext(ctx, query, b); err != nil {
		return err
	}

	for _, categoryID := range b.CategoryIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO brand_categories (brand_id, category_id) VALUES ($1, $2)`,
			b.ID, categoryID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
