package services

import (
	"context"
	"fmt"

	"github.com/akinalp/sohbet/models"
	"github.com/akinalp/sohbet/pkg"
	"github.com/akinalp/sohbet/pkg/ratelimit"
	"github.com/akinalp/sohbet/repository"
	"github.com/akinalp/sohbet/ws"
)

// MessageService, sohbet mesajları iş mantığı interface'i.
type MessageService interface {
	// Create, sohbete yeni mesaj ekler ve sohbetin updated_at'ini günceller.
	Create(ctx context.Context, callerID, chatID string, req *models.CreateMessageRequest) (*models.Message, error)
	List(ctx context.Context, callerID, chatID string, limit, offset int) (*models.MessagePage, error)
	Delete(ctx context.Context, callerID, chatID, messageID string) error
}

type messageService struct {
	messageRepo repository.MessageRepository
	chatRepo    repository.ChatRepository
	limiter     *ratelimit.MessageRateLimiter
	hub         ws.EventPublisher
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	chatRepo repository.ChatRepository,
	limiter *ratelimit.MessageRateLimiter,
	hub ws.EventPublisher,
) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		chatRepo:    chatRepo,
		limiter:     limiter,
		hub:         hub,
	}
}

func (s *messageService) Create(ctx context.Context, callerID, chatID string, req *models.CreateMessageRequest) (*models.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if _, err := s.getOwnedChat(ctx, callerID, chatID); err != nil {
		return nil, err
	}

	// Spam koruması — assistant/system mesajları da aynı kotadan düşer,
	// çünkü hepsi aynı client'tan HTTP ile gelir.
	if !s.limiter.Allow(callerID) {
		retryAfter := s.limiter.CooldownSeconds(callerID)
		return nil, fmt.Errorf("%w: too many messages, retry in %ds", pkg.ErrBadRequest, retryAfter)
	}

	message := &models.Message{
		ChatID:  chatID,
		Role:    req.Role,
		Content: req.Content,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	// Yeni mesaj = aktivite → sohbet recency sıralamasında öne geçer.
	if err := s.chatRepo.Touch(ctx, chatID); err != nil {
		return nil, fmt.Errorf("failed to touch chat: %w", err)
	}

	s.hub.BroadcastToUser(callerID, ws.Event{
		Op:   ws.OpMessageCreate,
		Data: message,
	})

	return message, nil
}

func (s *messageService) List(ctx context.Context, callerID, chatID string, limit, offset int) (*models.MessagePage, error) {
	if _, err := s.getOwnedChat(ctx, callerID, chatID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListByChat(ctx, chatID, limit, offset)
}

func (s *messageService) Delete(ctx context.Context, callerID, chatID, messageID string) error {
	if _, err := s.getOwnedChat(ctx, callerID, chatID); err != nil {
		return err
	}

	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if message.ChatID != chatID {
		return fmt.Errorf("%w: message does not belong to this chat", pkg.ErrBadRequest)
	}

	if err := s.messageRepo.Delete(ctx, messageID); err != nil {
		return err
	}

	s.hub.BroadcastToUser(callerID, ws.Event{
		Op:   ws.OpMessageDelete,
		Data: map[string]string{"id": messageID, "chat_id": chatID},
	})

	return nil
}

func (s *messageService) getOwnedChat(ctx context.Context, callerID, chatID string) (*models.Chat, error) {
	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat.OwnerID != callerID {
		return nil, fmt.Errorf("%w: chat belongs to another user", pkg.ErrForbidden)
	}
	return chat, nil
}
