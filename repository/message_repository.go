package repository

import (
	"context"

	"github.com/akinalp/sohbet/models"
)

// MessageRepository, sohbet mesajları için interface.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id string) (*models.Message, error)
	// ListByChat, bir sohbetin mesajlarını kronolojik sırayla (eski → yeni) döner.
	ListByChat(ctx context.Context, chatID string, limit, offset int) (*models.MessagePage, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
