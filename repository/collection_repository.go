package repository

import (
	"context"

	"github.com/akinalp/sohbet/models"
)

// CollectionRepository, sohbet koleksiyonları (klasörler) için interface.
type CollectionRepository interface {
	Create(ctx context.Context, collection *models.Collection) error
	GetByID(ctx context.Context, id string) (*models.Collection, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Collection, error)
	UpdateName(ctx context.Context, id string, name string) error
	// Delete, koleksiyonu siler. İçindeki sohbetler SİLİNMEZ —
	// FK ON DELETE SET NULL ile koleksiyonsuz kalırlar.
	Delete(ctx context.Context, id string) error
}
