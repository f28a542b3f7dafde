package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Store) error {
	query := `
        INSERT INTO stores (id, user_id, name, address, created_at, updated_at)
        VALUES (:id, :user_id, :name, :address, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Store, error) {
	var store model.Store
	query := `SELECT * FROM stores WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &store, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *PGRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*model.Store, error) {
	var store model.Store
	query := `SELECT * FROM stores WHERE id = $1 AND user_id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &store, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *PGRepository) Update(ctx context.Context, s *model.Store) error {
	query := `
        UPDATE stores
        SET name = :name,
            address = :address,
            updated_at = :updated_at
        WHERE id = :id AND user_id = :user_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM stores WHERE id = $1", id)
	return err
}
