package services

import (
	"context"
	"fmt"

	"github.com/akinalp/sohbet/models"
	"github.com/akinalp/sohbet/pkg"
	"github.com/akinalp/sohbet/repository"
	"github.com/akinalp/sohbet/ws"
)

// CollectionService, koleksiyon (sohbet klasörü) iş mantığı interface'i.
type CollectionService interface {
	List(ctx context.Context, ownerID string) ([]models.Collection, error)
	Create(ctx context.Context, ownerID string, req *models.CreateCollectionRequest) (*models.Collection, error)
	Update(ctx context.Context, callerID, id string, req *models.UpdateCollectionRequest) (*models.Collection, error)
	Delete(ctx context.Context, callerID, id string) error
}

type collectionService struct {
	collectionRepo repository.CollectionRepository
	hub            ws.EventPublisher
}

func NewCollectionService(
	collectionRepo repository.CollectionRepository,
	hub ws.EventPublisher,
) CollectionService {
	return &collectionService{
		collectionRepo: collectionRepo,
		hub:            hub,
	}
}

func (s *collectionService) List(ctx context.Context, ownerID string) ([]models.Collection, error) {
	return s.collectionRepo.ListByOwner(ctx, ownerID)
}

func (s *collectionService) Create(ctx context.Context, ownerID string, req *models.CreateCollectionRequest) (*models.Collection, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	collection := &models.Collection{
		OwnerID: ownerID,
		Name:    req.Name,
	}

	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	s.hub.BroadcastToUser(ownerID, ws.Event{
		Op:   ws.OpCollectionCreate,
		Data: collection,
	})

	return collection, nil
}

func (s *collectionService) Update(ctx context.Context, callerID, id string, req *models.UpdateCollectionRequest) (*models.Collection, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	collection, err := s.getOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if err := s.collectionRepo.UpdateName(ctx, id, req.Name); err != nil {
		return nil, err
	}
	collection.Name = req.Name

	s.hub.BroadcastToUser(callerID, ws.Event{
		Op:   ws.OpCollectionUpdate,
		Data: collection,
	})

	return collection, nil
}

func (s *collectionService) Delete(ctx context.Context, callerID, id string) error {
	if _, err := s.getOwned(ctx, callerID, id); err != nil {
		return err
	}

	// İçindeki sohbetler silinmez — FK ON DELETE SET NULL ile koleksiyonsuz kalır.
	if err := s.collectionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.BroadcastToUser(callerID, ws.Event{
		Op:   ws.OpCollectionDelete,
		Data: map[string]string{"id": id},
	})

	return nil
}

func (s *collectionService) getOwned(ctx context.Context, callerID, id string) (*models.Collection, error) {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collection.OwnerID != callerID {
		return nil, fmt.Errorf("%w: collection belongs to another user", pkg.ErrForbidden)
	}
	return collection, nil
}
