package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Chat, bir kullanıcının AI asistan ile yaptığı sohbet thread'ini temsil eder.
// DB'deki "chats" tablosunun Go karşılığı.
//
// Title nullable'dır — yeni açılan sohbetin henüz başlığı yoktur
// (frontend ilk mesajdan sonra başlık üretip PATCH eder).
// Başlıksız sohbetler arama sonuçlarında "Untitled Chat" olarak görünür
// ama DB'de NULL kalır.
//
// CollectionID opsiyonel — sohbet bir koleksiyona (klasöre) taşınabilir.
type Chat struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Title        *string   `json:"title"`
	CollectionID *string   `json:"collection_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"` // Rename veya yeni mesajda güncellenir
}

// UntitledChatTitle, başlıksız sohbetlerin arama/öneri katmanındaki görünen adı.
const UntitledChatTitle = "Untitled Chat"

// DisplayTitle, sohbetin görünen başlığını döner.
// Title NULL veya boşsa "Untitled Chat" döner.
func (c *Chat) DisplayTitle() string {
	if c.Title == nil || strings.TrimSpace(*c.Title) == "" {
		return UntitledChatTitle
	}
	return *c.Title
}

// CreateChatRequest, yeni sohbet oluşturma isteği.
// Title ve CollectionID opsiyonel.
type CreateChatRequest struct {
	Title        string  `json:"title"`
	CollectionID *string `json:"collection_id,omitempty"`
}

// Validate, CreateChatRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateChatRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if utf8.RuneCountInString(r.Title) > 200 {
		return fmt.Errorf("title must be at most 200 characters")
	}
	return nil
}

// UpdateChatRequest, sohbet güncelleme isteği (rename ve/veya koleksiyon taşıma).
//
// Pointer alanlar "gönderilmedi" ile "null gönderildi"yi ayırt eder:
//   - Title nil → başlığa dokunma; boş string → başlığı temizle (NULL yap)
//   - CollectionID alanı JSON'da hiç yoksa dokunulmaz; null ise koleksiyondan çıkar
type UpdateChatRequest struct {
	Title      *string `json:"title,omitempty"`
	Collection *string `json:"collection_id,omitempty"`

	// SetCollection, collection_id alanının request body'de bulunup bulunmadığı.
	// json.Decoder "alan yok" ile "alan null" durumlarını ayırt edemez —
	// handler body'yi bir kez de raw map olarak parse edip bunu set eder.
	SetCollection bool `json:"-"`
}

// Validate, UpdateChatRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateChatRequest) Validate() error {
	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		if utf8.RuneCountInString(trimmed) > 200 {
			return fmt.Errorf("title must be at most 200 characters")
		}
		*r.Title = trimmed
	}
	return nil
}

// ChatPage, sohbet listesi için offset tabanlı pagination sonucu.
type ChatPage struct {
	Chats   []Chat `json:"chats"`
	HasMore bool   `json:"has_more"`
}
