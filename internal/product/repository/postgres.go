package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateFull(ctx context.Context, p *model.Product) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO products (
            id, store_id, subcategory_id, brand_id, name, slug, description,
            price, is_featured, status, discount_type, discount_value,
            created_at, updated_at
        )
        VALUES (
            :id, :store_id, :subcategory_id, :brand_id, :name, :slug, :description,
            :price, :is_featured, :status, :discount_type, :discount_value,
            :created_at, :updated_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
		return err
	}

	if err := insertChildren(ctx, tx, p); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepository) ReplaceFull(ctx context.Context, p *model.Product, replaceImages, replaceVariants bool) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        UPDATE products
        SET subcategory_id = :subcategory_id,
            brand_id = :brand_id,
            name = :name,
            slug = :slug,
            description = :description,
            price = :price,
            is_featured = :is_featured,
            status = :status,
            discount_type = :discount_type,
            discount_value = :discount_value,
            updated_at = :updated_at
        WHERE id = :id
    `
	if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
		return err
	}

	if replaceImages {
		if _, err := tx.ExecContext(ctx, `DELETE FROM images WHERE product_id = $1`, p.ID); err != nil {
			return err
		}
		if err := insertImages(ctx, tx, p.Images); err != nil {
			return err
		}
	}

	if replaceVariants {
		if err := deleteVariantTree(ctx, tx, p.ID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM product_options WHERE product_id = $1`, p.ID); err != nil {
			return err
		}
		if err := insertOptionLinks(ctx, tx, p.ID, p.OptionIDs); err != nil {
			return err
		}
		if err := insertVariants(ctx, tx, p.Variants); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PGRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM images WHERE product_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM product_options WHERE product_id = $1`, id); err != nil {
		return err
	}
	if err := deleteVariantTree(ctx, tx, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

func (r *PGRepository) UpdateVariantSKUs(ctx context.Context, variants []model.Variant) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, v := range variants {
		_, err := tx.ExecContext(ctx, `UPDATE variants SET sku = $1, updated_at = NOW() WHERE id = $2`, v.SKU, v.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	products := []model.Product{p}
	if err := r.loadChildren(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	var products []model.Product
	err := r.DB.SelectContext(ctx, &products,
		`SELECT * FROM products WHERE store_id = $1 ORDER BY created_at DESC`, f.StoreID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return products, nil
	}

	if err := r.loadChildren(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// loadChildren hydrates images, derived option ids and the full variant trees for
// a batch of products.
func (r *PGRepository) loadChildren(ctx context.Context, products []model.Product) error {
	productIDs := make([]string, len(products))
	index := make(map[string]*model.Product, len(products))
	for i := range products {
		productIDs[i] = products[i].ID
		index[products[i].ID] = &products[i]
	}

	// Product-level images.
	var images []model.Image
	if err := r.selectIn(ctx, &images,
		`SELECT * FROM images WHERE product_id IN (?)`, productIDs); err != nil {
		return err
	}
	for _, img := range images {
		p := index[*img.ProductID]
		p.Images = append(p.Images, img)
	}

	// Derived option links.
	var links []struct {
		ProductID string `db:"product_id"`
		OptionID  string `db:"option_id"`
	}
	if err := r.selectIn(ctx, &links,
		`SELECT product_id, option_id FROM product_options WHERE product_id IN (?)`, productIDs); err != nil {
		return err
	}
	for _, l := range links {
		p := index[l.ProductID]
		p.OptionIDs = append(p.OptionIDs, l.OptionID)
	}

	// Variants.
	var variants []model.Variant
	if err := r.selectIn(ctx, &variants,
		`SELECT * FROM variants WHERE product_id IN (?) ORDER BY created_at, id`, productIDs); err != nil {
		return err
	}
	if len(variants) == 0 {
		return nil
	}

	variantIDs := make([]string, len(variants))
	variantIndex := make(map[string]*model.Variant, len(variants))
	for i := range variants {
		variantIDs[i] = variants[i].ID
		variantIndex[variants[i].ID] = &variants[i]
	}

	// Option-value links, in submission order. option_id is denormalized from
	// option_values so callers can round-trip the optionId->optionValueId pairs.
	var variantOptions []model.VariantOption
	if err := r.selectIn(ctx, &variantOptions, `
        SELECT vo.id, vo.variant_id, vo.option_value_id, ov.option_id
        FROM variant_options vo
        JOIN option_values ov ON ov.id = vo.option_value_id
        WHERE vo.variant_id IN (?)
        ORDER BY vo.position`, variantIDs); err != nil {
		return err
	}
	for _, vo := range variantOptions {
		v := variantIndex[vo.VariantID]
		v.Options = append(v.Options, vo)
	}

	var variantImages []model.Image
	if err := r.selectIn(ctx, &variantImages,
		`SELECT * FROM images WHERE variant_id IN (?)`, variantIDs); err != nil {
		return err
	}
	for _, img := range variantImages {
		v := variantIndex[*img.VariantID]
		v.Images = append(v.Images, img)
	}

	for _, v := range variants {
		p := index[v.ProductID]
		p.Variants = append(p.Variants, v)
	}

	return nil
}

func (r *PGRepository) selectIn(ctx context.Context, dest interface{}, query string, ids []string) error {
	q, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	return r.DB.SelectContext(ctx, dest, r.DB.Rebind(q), args...)
}

func insertChildren(ctx context.Context, tx *sqlx.Tx, p *model.Product) error {
	if err := insertImages(ctx, tx, p.Images); err != nil {
		return err
	}
	if err := insertOptionLinks(ctx, tx, p.ID, p.OptionIDs); err != nil {
		return err
	}
	return insertVariants(ctx, tx, p.Variants)
}

func insertImages(ctx context.Context, tx *sqlx.Tx, images []model.Image) error {
	for _, img := range images {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO images (id, url, product_id, variant_id) VALUES ($1, $2, $3, $4)`,
			img.ID, img.URL, img.ProductID, img.VariantID)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertOptionLinks(ctx context.Context, tx *sqlx.Tx, productID string, optionIDs []string) error {
	for _, optionID := range optionIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO product_options (product_id, option_id) VALUES ($1, $2)`,
			productID, optionID)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertVariants(ctx context.Context, tx *sqlx.Tx, variants []model.Variant) error {
	for _, v := range variants {
		query := `
            INSERT INTO variants (id, product_id, price, stock, sku, created_at, updated_at)
            VALUES (:id, :product_id, :price, :stock, :sku, :created_at, :updated_at)
        `
		if _, err := tx.NamedExecContext(ctx, query, v); err != nil {
			return err
		}
		if err := insertImages(ctx, tx, v.Images); err != nil {
			return err
		}
		// position preserves submission order; SKU regeneration depends on it.
		for pos, vo := range v.Options {
			_, err := tx.ExecContext(ctx, `
                INSERT INTO variant_options (id, variant_id, option_value_id, position)
                VALUES ($1, $2, $3, $4)`,
				vo.ID, vo.VariantID, vo.OptionValueID, pos)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// deleteVariantTree removes a product's variants together with their option links
// and images.
func deleteVariantTree(ctx context.Context, tx *sqlx.Tx, productID string) error {
	queries := []string{
		`DELETE FROM variant_options WHERE variant_id IN (SELECT id FROM variants WHERE product_id = $1)`,
		`DELETE FROM images WHERE variant_id IN (SELECT id FROM variants WHERE product_id = $1)`,
		`DELETE FROM variants WHERE product_id = $1`,
	}
	for _, q := range queries {
		if _, err := tx.ExecContext(ctx, q, productID); err != nil {
			return err
		}
	}
	return nil
}
