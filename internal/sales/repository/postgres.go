package repository

import (
	"context"

	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/sales/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) InsertOrder(ctx context.Context, order *model.Order, lines []model.OrderProduct) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO orders (id, store_id, user_id, total, status, created_at)
        VALUES (:id, :store_id, :user_id, :total, :status, :created_at)
    `
	if _, err := tx.NamedExecContext(ctx, query, order); err != nil {
		return err
	}

	for _, line := range lines {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO order_products (id, order_id, product_id, quantity)
            VALUES ($1, $2, $3, $4)`,
			line.ID, line.OrderID, line.ProductID, line.Quantity)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PGRepository) OrdersByStore(ctx context.Context, storeID string) ([]model.Order, error) {
	var orders []model.Order
	err := r.DB.SelectContext(ctx, &orders,
		`SELECT * FROM orders WHERE store_id = $1 ORDER BY created_at DESC`, storeID)
	return orders, err
}

func (r *PGRepository) LinesByStore(ctx context.Context, storeID string) ([]dto.OrderLine, error) {
	var lines []dto.OrderLine
	err := r.DB.SelectContext(ctx, &lines, `
        SELECT op.product_id, p.name AS product_name, c.name AS category_name
        FROM order_products op
        JOIN orders o ON o.id = op.order_id
        JOIN products p ON p.id = op.product_id
        JOIN subcategories sc ON sc.id = p.subcategory_id
        JOIN categories c ON c.id = sc.category_id
        WHERE o.store_id = $1`, storeID)
	return lines, err
}

func (r *PGRepository) ProductNamesByStore(ctx context.Context, storeID string) ([]string, error) {
	var names []string
	err := r.DB.SelectContext(ctx, &names,
		`SELECT name FROM products WHERE store_id = $1`, storeID)
	return names, err
}
