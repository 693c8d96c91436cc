// Package models — Arama (search) domain modelleri.
//
// Arama sonuçları request ömürlüdür: hiçbir SearchResult DB'ye yazılmaz,
// her sorguda yeniden hesaplanır. Kalıcı index yoktur — store sadece
// substring ön filtresi yapar, skorlama service katmanındadır.
package models

import "time"

// SearchType, aramanın hangi entity'leri kapsadığını belirtir.
type SearchType string

const (
	SearchTypeAll      SearchType = "all"
	SearchTypeChats    SearchType = "chats"
	SearchTypeMessages SearchType = "messages"
)

// Valid, arama tipinin bilinen değerlerden biri olup olmadığını kontrol eder.
func (t SearchType) Valid() bool {
	switch t {
	case SearchTypeAll, SearchTypeChats, SearchTypeMessages:
		return true
	}
	return false
}

// SearchResultKind, tek bir sonucun türü (sohbet mi mesaj mı).
type SearchResultKind string

const (
	ResultKindChat    SearchResultKind = "chat"
	ResultKindMessage SearchResultKind = "message"
)

// SearchFilters, arama sorgusunun opsiyonel filtreleri.
//
// Eski tasarımda filtreler loosely-typed map olarak katmanlar arası
// taşınıyordu — burada tek bir explicit struct olarak tanımlanır ve
// boundary'de (handler) bir kez valide edilir.
type SearchFilters struct {
	OwnerID      string     // Zorunlu — arama her zaman tek kullanıcının verisi üzerinde
	CollectionID *string    // Opsiyonel — sohbetleri koleksiyonla sınırla
	DateFrom     *time.Time // Opsiyonel — bu tarihten sonra oluşturulanlar
	DateTo       *time.Time // Opsiyonel — bu tarihten önce oluşturulanlar
}

// SearchResultMeta, sonuç türüne göre dolan ek bilgiler.
// Boş alanlar JSON'a yazılmaz (omitempty).
type SearchResultMeta struct {
	ParentChatID    string `json:"parent_chat_id,omitempty"`    // Mesaj sonuçlarında
	ParentChatTitle string `json:"parent_chat_title,omitempty"` // Mesaj sonuçlarında
	AuthorRole      string `json:"author_role,omitempty"`       // Mesaj sonuçlarında (user/assistant)
	CollectionID    string `json:"collection_id,omitempty"`     // Sohbet sonuçlarında (varsa)
}

// SearchResult, tek bir arama sonucu.
//
// Score 0..100 aralığındadır, yüksek = daha alakalı.
// Sonuç listesi HER ZAMAN score azalan sırada döner; eşit skorlar
// recency ile kırılır (UpdatedAt yoksa CreatedAt, en yeni önce).
// Bu tie-break deterministiktir — aynı veri aynı sıralamayı üretir.
type SearchResult struct {
	ID        string           `json:"id"`
	Kind      SearchResultKind `json:"kind"`
	Title     string           `json:"title"`
	Snippet   string           `json:"snippet"`
	TargetURL string           `json:"target_url"`
	Score     float64          `json:"score"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty"`
	Metadata  SearchResultMeta `json:"metadata"`
}

// SortKey, tie-break için kullanılan zaman damgasını döner.
// UpdatedAt varsa o, yoksa CreatedAt.
func (r *SearchResult) SortKey() time.Time {
	if r.UpdatedAt != nil {
		return *r.UpdatedAt
	}
	return r.CreatedAt
}

// SearchResponse, GET /api/search endpoint'inin response formatı.
//
// HasMore bir heuristic'tir: dönen sonuç sayısı istenen limit'e TAM
// eşitse true olur. Kesin toplam sayım yapılmaz — bilinçli bir
// maliyet/doğruluk trade-off'u.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Query   string         `json:"query"`
	Type    SearchType     `json:"type"`
	Total   int            `json:"total"`
	HasMore bool           `json:"has_more"`
}

// SuggestResponse, GET /api/search/suggestions endpoint'inin response formatı.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
	Query       string   `json:"query"`
}
