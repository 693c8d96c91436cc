package repository

import (
	"context"

	"github.com/akinalp/sohbet/models"
)

// ChatRepository, sohbet (konuşma) veritabanı işlemleri için interface.
type ChatRepository interface {
	Create(ctx context.Context, chat *models.Chat) error
	GetByID(ctx context.Context, id string) (*models.Chat, error)
	// ListByOwner, kullanıcının sohbetlerini en son güncellenen önce döner.
	// limit+1 hilesiyle hasMore hesaplanır — bkz. sqlite implementasyonu.
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) (*models.ChatPage, error)
	// UpdateTitle, başlığı değiştirir. nil → başlık kaldırılır (NULL).
	UpdateTitle(ctx context.Context, id string, title *string) error
	// UpdateCollection, sohbeti bir koleksiyona taşır. nil → koleksiyondan çıkarır.
	UpdateCollection(ctx context.Context, id string, collectionID *string) error
	// Touch, updated_at'i şimdiye çeker. Her yeni mesajda çağrılır —
	// recency sıralaması "son aktivite" anlamına gelsin diye.
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
