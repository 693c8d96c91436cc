package repository

import (
	"context"

	"github.com/akinalp/sohbet/models"
)

// MessageHit, mesaj araması ön filtresinden dönen bir aday satır.
// Mesajın yanında ait olduğu sohbetin başlığı ve koleksiyonu da taşınır —
// service katmanı sonuç metadata'sını ek sorgu yapmadan doldurabilsin diye.
type MessageHit struct {
	Message          models.Message
	ChatTitle        *string
	ChatCollectionID *string
}

// SearchRepository, arama motorunun store katmanı.
//
// SINIR ÇİZGİSİ: Bu katman SADECE filtreler — substring ön filtresi,
// sahiplik, koleksiyon ve tarih aralığı. Skorlama, sıralama ve limit
// uygulaması tamamen service katmanındadır (pkg/relevance + SearchService).
// SQL içinde CASE'li skor hesabı YAPILMAZ; böylece skorlama mantığı
// tek bir yerde yaşar ve DB olmadan test edilir.
type SearchRepository interface {
	// FindChatsByTitle, başlığı sorguyu (case-insensitive) içeren sohbetleri döner.
	// Başlıksız (NULL title) sohbetler substring filtresinden hiçbir zaman geçemez.
	FindChatsByTitle(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error)

	// ListChatsForFuzzy, filtrelere uyan TÜM sohbetleri döner (substring şartı yok).
	// Fuzzy fallback'in aday havuzudur — başlıksız sohbetler de dahildir,
	// eleme service katmanında yapılır.
	ListChatsForFuzzy(ctx context.Context, filters models.SearchFilters) ([]models.Chat, error)

	// FindMessagesByContent, içeriği sorguyu (case-insensitive) içeren mesajları döner.
	// System rolündeki mesajlar SORGUDA elenir — arama yüzeyine hiç çıkmazlar.
	FindMessagesByContent(ctx context.Context, query string, filters models.SearchFilters) ([]MessageHit, error)

	// SuggestTitles, sorguyu içeren sohbet başlıklarını en son aktiviteye göre döner.
	// Tekilleştirme service katmanında yapılır; limit burada kaba bir üst sınırdır.
	SuggestTitles(ctx context.Context, query string, ownerID string, limit int) ([]string, error)
}
