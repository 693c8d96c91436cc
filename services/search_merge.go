package services

import (
	"sort"

	"github.com/akinalp/sohbet/models"
	"github.com/akinalp/sohbet/pkg/relevance"
	"github.com/akinalp/sohbet/repository"
)

// Bu dosya, arama sonuçlarının inşası, birleştirilmesi ve sıralanmasıyla
// ilgili saf yardımcıları toplar — hepsi DB'siz test edilebilir.

// chatResult, bir sohbeti SearchResult'a çevirir ve başlık bandı skorunu atar.
func (s *searchService) chatResult(chat *models.Chat, query string) models.SearchResult {
	updatedAt := chat.UpdatedAt

	meta := models.SearchResultMeta{}
	if chat.CollectionID != nil {
		meta.CollectionID = *chat.CollectionID
	}

	return models.SearchResult{
		ID:        chat.ID,
		Kind:      models.ResultKindChat,
		Title:     chat.DisplayTitle(),
		Snippet:   "",
		TargetURL: "/chat/" + chat.ID,
		Score:     relevance.Score(chat.DisplayTitle(), query),
		CreatedAt: chat.CreatedAt,
		UpdatedAt: &updatedAt,
		Metadata:  meta,
	}
}

// messageResult, bir mesaj hit'ini SearchResult'a çevirir.
// Başlık `Message in "<sohbet başlığı>"` formatındadır, snippet kırpılır
// ve skor gövde bandı ölçeğinden (+10) gelir.
func (s *searchService) messageResult(hit *repository.MessageHit, query string) models.SearchResult {
	chatTitle := models.UntitledChatTitle
	if hit.ChatTitle != nil && *hit.ChatTitle != "" {
		chatTitle = *hit.ChatTitle
	}

	return models.SearchResult{
		ID:        hit.Message.ID,
		Kind:      models.ResultKindMessage,
		Title:     `Message in "` + chatTitle + `"`,
		Snippet:   snippet(hit.Message.Content, s.snippetLen),
		TargetURL: "/chat/" + hit.Message.ChatID + "?messageId=" + hit.Message.ID,
		Score:     relevance.ScoreBody(hit.Message.Content, query),
		CreatedAt: hit.Message.CreatedAt,
		Metadata: models.SearchResultMeta{
			ParentChatID:    hit.Message.ChatID,
			ParentChatTitle: chatTitle,
			AuthorRole:      string(hit.Message.Role),
		},
	}
}

// snippet, mesaj içeriğini maxLen karaktere kırpar.
// Kırpma rune bazlıdır (UTF-8 güvenli); kırpıldıysa sonuna "..." eklenir —
// yani kırpılmış snippet maxLen+3 karakterdir.
func snippet(content string, maxLen int) string {
	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}
	return string(runes[:maxLen]) + "..."
}

// mergeResults, iki sonuç dilimini tek listede toplar.
// Çakışma olamaz — sohbet ve mesaj ID'leri ayrı tablolardan gelir.
func mergeResults(a, b []models.SearchResult) []models.SearchResult {
	merged := make([]models.SearchResult, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return merged
}

// sortResults, sonuçları yerinde sıralar: skor azalan, eşitlikte recency
// azalan (UpdatedAt yoksa CreatedAt), o da eşitse ID — tam determinizm.
func sortResults(results []models.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		ti, tj := results[i].SortKey(), results[j].SortKey()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return results[i].ID < results[j].ID
	})
}

// paginate, sıralanmış listeden offset/limit penceresini keser.
// Pencere liste dışındaysa boş dilim döner, nil değil.
func paginate(results []models.SearchResult, limit, offset int) []models.SearchResult {
	if offset >= len(results) {
		return []models.SearchResult{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}
