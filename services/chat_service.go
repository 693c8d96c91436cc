package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akinalp/sohbet/models"
	"github.com/akinalp/sohbet/pkg"
	"github.com/akinalp/sohbet/repository"
	"github.com/akinalp/sohbet/ws"
)

// ChatService, sohbet iş mantığı interface'i.
//
// Sahiplik kuralı: her operasyon callerID alır ve sohbetin sahibi olmayan
// çağrılar pkg.ErrForbidden ile reddedilir. Sahiplik kontrolü handler'da
// DEĞİL burada yapılır — service başka bir yerden çağrılsa da kural bozulmaz.
type ChatService interface {
	Create(ctx context.Context, ownerID string, req *models.CreateChatRequest) (*models.Chat, error)
	GetByID(ctx context.Context, callerID, chatID string) (*models.Chat, error)
	List(ctx context.Context, ownerID string, limit, offset int) (*models.ChatPage, error)
	Update(ctx context.Context, callerID, chatID string, req *models.UpdateChatRequest) (*models.Chat, error)
	Delete(ctx context.Context, callerID, chatID string) error
}

type chatService struct {
	chatRepo       repository.ChatRepository
	collectionRepo repository.CollectionRepository
	hub            ws.EventPublisher
}

func NewChatService(
	chatRepo repository.ChatRepository,
	collectionRepo repository.CollectionRepository,
	hub ws.EventPublisher,
) ChatService {
	return &chatService{
		chatRepo:       chatRepo,
		collectionRepo: collectionRepo,
		hub:            hub,
	}
}

func (s *chatService) Create(ctx context.Context, ownerID string, req *models.CreateChatRequest) (*models.Chat, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	var title *string
	if req.Title != "" {
		title = &req.Title
	}

	if req.CollectionID != nil {
		if err := s.checkCollection(ctx, ownerID, *req.CollectionID); err != nil {
			return nil, err
		}
	}

	chat := &models.Chat{
		OwnerID:      ownerID,
		Title:        title,
		CollectionID: req.CollectionID,
	}

	if err := s.chatRepo.Create(ctx, chat); err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}

	s.hub.BroadcastToUser(ownerID, ws.Event{
		Op:   ws.OpChatCreate,
		Data: chat,
	})

	return chat, nil
}

func (s *chatService) GetByID(ctx context.Context, callerID, chatID string) (*models.Chat, error) {
	return s.getOwned(ctx, callerID, chatID)
}

func (s *chatService) List(ctx context.Context, ownerID string, limit, offset int) (*models.ChatPage, error) {
	return s.chatRepo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *chatService) Update(ctx context.Context, callerID, chatID string, req *models.UpdateChatRequest) (*models.Chat, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	chat, err := s.getOwned(ctx, callerID, chatID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		// Boş string → başlığı temizle (NULL), dolu string → yeni başlık.
		var title *string
		if *req.Title != "" {
			title = req.Title
		}
		if err := s.chatRepo.UpdateTitle(ctx, chatID, title); err != nil {
			return nil, err
		}
	}

	if req.SetCollection {
		if req.Collection != nil {
			if err := s.checkCollection(ctx, callerID, *req.Collection); err != nil {
				return nil, err
			}
		}
		if err := s.chatRepo.UpdateCollection(ctx, chatID, req.Collection); err != nil {
			return nil, err
		}
	}

	// Güncel halini tekrar oku — updated_at DB tarafında değişti.
	chat, err = s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	s.hub.BroadcastToUser(callerID, ws.Event{
		Op:   ws.OpChatUpdate,
		Data: chat,
	})

	return chat, nil
}

func (s *chatService) Delete(ctx context.Context, callerID, chatID string) error {
	if _, err := s.getOwned(ctx, callerID, chatID); err != nil {
		return err
	}

	if err := s.chatRepo.Delete(ctx, chatID); err != nil {
		return err
	}

	s.hub.BroadcastToUser(callerID, ws.Event{
		Op:   ws.OpChatDelete,
		Data: map[string]string{"id": chatID},
	})

	return nil
}

// getOwned, sohbeti getirir ve sahiplik kontrolü yapar.
func (s *chatService) getOwned(ctx context.Context, callerID, chatID string) (*models.Chat, error) {
	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat.OwnerID != callerID {
		return nil, fmt.Errorf("%w: chat belongs to another user", pkg.ErrForbidden)
	}
	return chat, nil
}

// checkCollection, hedef koleksiyonun var olduğunu ve caller'a ait olduğunu doğrular.
func (s *chatService) checkCollection(ctx context.Context, callerID, collectionID string) error {
	collection, err := s.collectionRepo.GetByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return fmt.Errorf("%w: collection not found", pkg.ErrBadRequest)
		}
		return err
	}
	if collection.OwnerID != callerID {
		return fmt.Errorf("%w: collection belongs to another user", pkg.ErrForbidden)
	}
	return nil
}
