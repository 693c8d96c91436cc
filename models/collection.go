package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Collection, sohbetleri gruplamak için kullanılan klasör yapısıdır.
// DB'deki "collections" tablosunun Go karşılığı.
//
// Sohbet silinmeden koleksiyon silinirse chats.collection_id
// NULL'a düşer (ON DELETE SET NULL) — sohbetler kaybolmaz.
type Collection struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCollectionRequest, yeni koleksiyon oluşturma isteği.
type CreateCollectionRequest struct {
	Name string `json:"name"`
}

// Validate, CreateCollectionRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateCollectionRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	nameLen := utf8.RuneCountInString(r.Name)
	if nameLen < 1 {
		return fmt.Errorf("collection name is required")
	}
	if nameLen > 100 {
		return fmt.Errorf("collection name must be at most 100 characters")
	}
	return nil
}

// UpdateCollectionRequest, koleksiyon yeniden adlandırma isteği.
type UpdateCollectionRequest struct {
	Name string `json:"name"`
}

// Validate, UpdateCollectionRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateCollectionRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	nameLen := utf8.RuneCountInString(r.Name)
	if nameLen < 1 {
		return fmt.Errorf("collection name is required")
	}
	if nameLen > 100 {
		return fmt.Errorf("collection name must be at most 100 characters")
	}
	return nil
}
