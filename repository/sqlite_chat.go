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

// sqliteChatRepo, ChatRepository interface'inin SQLite implementasyonu.
type sqliteChatRepo struct {
	db database.TxQuerier
}

// NewSQLiteChatRepo, constructor — interface döner.
func NewSQLiteChatRepo(db database.TxQuerier) ChatRepository {
	return &sqliteChatRepo{db: db}
}

func (r *sqliteChatRepo) Create(ctx context.Context, chat *models.Chat) error {
	query := `
		INSERT INTO chats (id, owner_id, title, collection_id)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		chat.OwnerID,
		chat.Title,
		chat.CollectionID,
	).Scan(&chat.ID, &chat.CreatedAt, &chat.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}

	return nil
}

func (r *sqliteChatRepo) GetByID(ctx context.Context, id string) (*models.Chat, error) {
	query := `
		SELECT id, owner_id, title, collection_id, created_at, updated_at
		FROM chats WHERE id = ?`

	chat := &models.Chat{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&chat.ID, &chat.OwnerID, &chat.Title, &chat.CollectionID,
		&chat.CreatedAt, &chat.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat by id: %w", err)
	}

	return chat, nil
}

// ListByOwner, limit+1 satır çekerek hasMore'u tek sorguda hesaplar:
// limit'ten fazla satır geldiyse bir sonraki sayfa vardır, fazlalık kırpılır.
// Ayrı bir COUNT(*) sorgusuna gerek kalmaz.
func (r *sqliteChatRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) (*models.ChatPage, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, owner_id, title, collection_id, created_at, updated_at
		FROM chats
		WHERE owner_id = ?
		ORDER BY updated_at DESC, id DESC
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, ownerID, limit+1, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	defer rows.Close() // Önemli: rows'u kapatmayı ASLA unutma — aksi halde bağlantı sızar (leak)

	chats := []models.Chat{}
	for rows.Next() {
		var c models.Chat
		if err := rows.Scan(
			&c.ID, &c.OwnerID, &c.Title, &c.CollectionID,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan chat row: %w", err)
		}
		chats = append(chats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat rows: %w", err)
	}

	hasMore := len(chats) > limit
	if hasMore {
		chats = chats[:limit]
	}

	return &models.ChatPage{Chats: chats, HasMore: hasMore}, nil
}

func (r *sqliteChatRepo) UpdateTitle(ctx context.Context, id string, title *string) error {
	query := `UPDATE chats SET title = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, title, id)
	if err != nil {
		return fmt.Errorf("failed to update chat title: %w", err)
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

func (r *sqliteChatRepo) UpdateCollection(ctx context.Context, id string, collectionID *string) error {
	// Koleksiyona taşımak updated_at'i BOZMAZ — organizasyon değişikliği
	// "aktivite" sayılmaz, sohbet liste sırasında zıplamamalı.
	query := `UPDATE chats SET collection_id = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, collectionID, id)
	if err != nil {
		return fmt.Errorf("failed to update chat collection: %w", err)
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

func (r *sqliteChatRepo) Touch(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE chats SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to touch chat: %w", err)
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

func (r *sqliteChatRepo) Delete(ctx context.Context, id string) error {
	// FK cascade: sohbetin mesajları da silinir.
	result, err := r.db.ExecContext(ctx, `DELETE FROM chats WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete chat: %w", err)
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

func (r *sqliteChatRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chats`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count chats: %w", err)
	}
	return count, nil
}
