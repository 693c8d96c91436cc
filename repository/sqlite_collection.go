package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/sohbet/database"
	"github.com/akinalp/sohbet/models"
	"github.com/akinalp/sohbet/pkg"
)

// sqliteCollectionRepo, CollectionRepository interface'inin SQLite implementasyonu.
type sqliteCollectionRepo struct {
	db database.TxQuerier
}

// NewSQLiteCollectionRepo, constructor.
func NewSQLiteCollectionRepo(db database.TxQuerier) CollectionRepository {
	return &sqliteCollectionRepo{db: db}
}

func (r *sqliteCollectionRepo) Create(ctx context.Context, collection *models.Collection) error {
	query := `
		INSERT INTO collections (id, owner_id, name)
		VALUES (lower(hex(randomblob(8))), ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		collection.OwnerID,
		collection.Name,
	).Scan(&collection.ID, &collection.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return nil
}

func (r *sqliteCollectionRepo) GetByID(ctx context.Context, id string) (*models.Collection, error) {
	query := `
		SELECT id, owner_id, name, created_at
		FROM collections WHERE id = ?`

	collection := &models.Collection{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&collection.ID, &collection.OwnerID, &collection.Name, &collection.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get collection by id: %w", err)
	}

	return collection, nil
}

func (r *sqliteCollectionRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Collection, error) {
	query := `
		SELECT id, owner_id, name, created_at
		FROM collections WHERE owner_id = ?
		ORDER BY name COLLATE NOCASE`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	collections := []models.Collection{}
	for rows.Next() {
		var c models.Collection
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan collection row: %w", err)
		}
		collections = append(collections, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collection rows: %w", err)
	}

	return collections, nil
}

func (r *sqliteCollectionRepo) UpdateName(ctx context.Context, id string, name string) error {
	query := `UPDATE collections SET name = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, name, id)
	if err != nil {
		return fmt.Errorf("failed to update collection: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteCollectionRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}
