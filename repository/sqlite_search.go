package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/akinalp/sohbet/database"
	"github.com/akinalp/sohbet/models"
)

// candidateCap, ön filtre sorgularının üst satır sınırı.
//
// Skorlama uygulama katmanında olduğu için store aday KÜMESİ döner, sayfa
// değil. Sınırsız bir LIKE taraması patolojik durumlarda (on binlerce eşleşme)
// belleği şişirir — bu tavan en güncel N adayı alır. Tavanın üstünde kalan
// eski eşleşmeler kaybolabilir; kabul edilmiş bir trade-off.
const candidateCap = 500

// sqliteSearchRepo, SearchRepository interface'inin SQLite implementasyonu.
//
// FTS index YOKTUR — ön filtre LOWER(...) LIKE '%q%' ile çalışır.
// Başlıklar için expression index (idx_chats_title_lower) vardır ama
// infix LIKE index kullanamaz; kabul edilen ölçek tek kullanıcının
// kendi sohbetleri olduğu için tam tarama yeterlidir.
type sqliteSearchRepo struct {
	db database.TxQuerier
}

// NewSQLiteSearchRepo, constructor — interface döner.
func NewSQLiteSearchRepo(db database.TxQuerier) SearchRepository {
	return &sqliteSearchRepo{db: db}
}

// likePattern, kullanıcı girdisini güvenli bir LIKE kalıbına çevirir.
// % ve _ LIKE wildcard'larıdır — escape edilmezse kullanıcı bunlarla
// filtreyi genişletebilir. ESCAPE '\' ile birlikte kullanılır.
func likePattern(query string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(query))
	return "%" + escaped + "%"
}

func (r *sqliteSearchRepo) FindChatsByTitle(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT id, owner_id, title, collection_id, created_at, updated_at
		FROM chats
		WHERE owner_id = ? AND title IS NOT NULL AND lower(title) LIKE ? ESCAPE '\'`)
	args := []any{filters.OwnerID, likePattern(query)}

	appendChatFilters(&sb, &args, filters)

	sb.WriteString(` ORDER BY updated_at DESC, id DESC LIMIT ?`)
	args = append(args, candidateCap)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search chats by title: %w", err)
	}
	defer rows.Close()

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

	return chats, nil
}

func (r *sqliteSearchRepo) ListChatsForFuzzy(ctx context.Context, filters models.SearchFilters) ([]models.Chat, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT id, owner_id, title, collection_id, created_at, updated_at
		FROM chats
		WHERE owner_id = ?`)
	args := []any{filters.OwnerID}

	appendChatFilters(&sb, &args, filters)

	sb.WriteString(` ORDER BY updated_at DESC, id DESC LIMIT ?`)
	args = append(args, candidateCap)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats for fuzzy matching: %w", err)
	}
	defer rows.Close()

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

	return chats, nil
}

func (r *sqliteSearchRepo) FindMessagesByContent(ctx context.Context, query string, filters models.SearchFilters) ([]MessageHit, error) {
	// system mesajları prompt altyapısına aittir ve aranamaz —
	// eleme SQL'de yapılır ki aday havuzuna bile girmesinler.
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT m.id, m.chat_id, m.role, m.content, m.created_at,
		       c.title, c.collection_id
		FROM messages m
		JOIN chats c ON c.id = m.chat_id
		WHERE c.owner_id = ?
		  AND m.role IN ('user', 'assistant')
		  AND lower(m.content) LIKE ? ESCAPE '\'`)
	args := []any{filters.OwnerID, likePattern(query)}

	if filters.CollectionID != nil {
		sb.WriteString(` AND c.collection_id = ?`)
		args = append(args, *filters.CollectionID)
	}
	if filters.DateFrom != nil {
		sb.WriteString(` AND m.created_at >= ?`)
		args = append(args, *filters.DateFrom)
	}
	if filters.DateTo != nil {
		sb.WriteString(` AND m.created_at <= ?`)
		args = append(args, *filters.DateTo)
	}

	sb.WriteString(` ORDER BY m.created_at DESC, m.id DESC LIMIT ?`)
	args = append(args, candidateCap)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search messages by content: %w", err)
	}
	defer rows.Close()

	hits := []MessageHit{}
	for rows.Next() {
		var h MessageHit
		if err := rows.Scan(
			&h.Message.ID, &h.Message.ChatID, &h.Message.Role,
			&h.Message.Content, &h.Message.CreatedAt,
			&h.ChatTitle, &h.ChatCollectionID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan message hit row: %w", err)
		}
		hits = append(hits, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message hit rows: %w", err)
	}

	return hits, nil
}

func (r *sqliteSearchRepo) SuggestTitles(ctx context.Context, query string, ownerID string, limit int) ([]string, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	// limit*2 satır çekilir: service tekilleştirme yapınca elimizde
	// yine de limit kadar farklı başlık kalsın diye pay bırakılır.
	sqlQuery := `
		SELECT title
		FROM chats
		WHERE owner_id = ? AND title IS NOT NULL AND lower(title) LIKE ? ESCAPE '\'
		ORDER BY updated_at DESC, id DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, sqlQuery, ownerID, likePattern(query), limit*2)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest titles: %w", err)
	}
	defer rows.Close()

	titles := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan title row: %w", err)
		}
		titles = append(titles, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating title rows: %w", err)
	}

	return titles, nil
}

// appendChatFilters, koleksiyon ve tarih aralığı filtrelerini sorguya ekler.
// FindChatsByTitle ve ListChatsForFuzzy aynı filtre setini paylaşır.
func appendChatFilters(sb *strings.Builder, args *[]any, filters models.SearchFilters) {
	if filters.CollectionID != nil {
		sb.WriteString(` AND collection_id = ?`)
		*args = append(*args, *filters.CollectionID)
	}
	if filters.DateFrom != nil {
		sb.WriteString(` AND created_at >= ?`)
		*args = append(*args, *filters.DateFrom)
	}
	if filters.DateTo != nil {
		sb.WriteString(` AND created_at <= ?`)
		*args = append(*args, *filters.DateTo)
	}
}
