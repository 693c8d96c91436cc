package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/akinalp/sohbet/models"
	"github.com/akinalp/sohbet/pkg"
	"github.com/akinalp/sohbet/pkg/relevance"
	"github.com/akinalp/sohbet/repository"
)

// SearchService, arama motoru iş mantığı interface'i.
//
// Katman sınırı: store (SearchRepository) sadece substring ön filtresi yapar;
// skorlama (pkg/relevance), fuzzy fallback, birleştirme, sıralama ve
// sayfalama burada yaşar. Bkz. pkg/relevance paket dokümantasyonu.
type SearchService interface {
	// Search, verilen tipte arama yapar (all/chats/messages).
	// Boş veya sadece whitespace sorgu, store'a HİÇ gitmeden boş sonuç döner.
	Search(ctx context.Context, query string, searchType models.SearchType, filters models.SearchFilters, limit, offset int) (*models.SearchResponse, error)

	// Suggest, yazarken-öner (typeahead) için sohbet başlığı önerileri döner.
	// 2 karakterden kısa sorgular boş liste döner — tek harf önerisi gürültüdür.
	// Öneriler case-insensitive tekilleştirilir, ilk görülen yazım korunur:
	// "Meeting Notes" ve "meeting notes" başlıklı iki sohbet tek öneri olur.
	Suggest(ctx context.Context, query string, ownerID string, limit int) (*models.SuggestResponse, error)
}

// suggestMinQueryLen, öneri servisinin çalışması için gereken minimum sorgu uzunluğu.
const suggestMinQueryLen = 2

type searchService struct {
	searchRepo    repository.SearchRepository
	fuzzyFloor    float64
	fuzzyDiscount float64
	snippetLen    int
}

// NewSearchService, constructor.
// fuzzyFloor/fuzzyDiscount/snippetLen config'den gelir — bkz. config.SearchConfig.
func NewSearchService(searchRepo repository.SearchRepository, fuzzyFloor, fuzzyDiscount float64, snippetLen int) SearchService {
	return &searchService{
		searchRepo:    searchRepo,
		fuzzyFloor:    fuzzyFloor,
		fuzzyDiscount: fuzzyDiscount,
		snippetLen:    snippetLen,
	}
}

func (s *searchService) Search(ctx context.Context, query string, searchType models.SearchType, filters models.SearchFilters, limit, offset int) (*models.SearchResponse, error) {
	if !searchType.Valid() {
		return nil, fmt.Errorf("%w: unknown search type %q", pkg.ErrBadRequest, searchType)
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query = strings.TrimSpace(query)
	if query == "" {
		// Boş sorgu hata DEĞİLDİR — boş sonuç kümesidir. Store'a gidilmez.
		return &models.SearchResponse{
			Results: []models.SearchResult{},
			Query:   query,
			Type:    searchType,
		}, nil
	}

	var results []models.SearchResult
	var err error

	switch searchType {
	case models.SearchTypeChats:
		results, err = s.searchChats(ctx, query, filters, limit, offset)
	case models.SearchTypeMessages:
		results, err = s.searchMessages(ctx, query, filters, limit, offset)
	case models.SearchTypeAll:
		results, err = s.searchAll(ctx, query, filters, limit)
	}
	if err != nil {
		return nil, err
	}

	return &models.SearchResponse{
		Results: results,
		Query:   query,
		Type:    searchType,
		Total:   len(results),
		// Sonuç sayısı limit'e TAM eşitse muhtemelen devamı vardır.
		// Kesin toplam sayım yapılmaz — bilinçli bir maliyet trade-off'u.
		HasMore: len(results) == limit,
	}, nil
}

// searchChats, sohbet başlıklarında arama yapar.
//
// İki aşamalı:
// 1. Substring ön filtresi (store) → band skorlaması (relevance.Score).
// 2. Sonuç sayısı limit'in altındaysa fuzzy fallback: filtreye uyan TÜM
//    sohbetler edit-distance ile taranır, substring aşamasında zaten
//    bulunanlar atlanır. Fuzzy-only sonuçların skoru
//    similarity × 100 × discount'tur — substring eşleşmeleri her zaman üstte
//    kalsın diye indirimli.
//
// Substring aşaması tek başına limit'i dolduruyorsa fuzzy HİÇ çalışmaz —
// en pahalı adım ancak gerektiğinde ödenir.
func (s *searchService) searchChats(ctx context.Context, query string, filters models.SearchFilters, limit, offset int) ([]models.SearchResult, error) {
	chats, err := s.searchRepo.FindChatsByTitle(ctx, query, filters)
	if err != nil {
		return nil, fmt.Errorf("%w: chat search failed: %v", pkg.ErrUnavailable, err)
	}

	results := make([]models.SearchResult, 0, len(chats))
	seen := make(map[string]bool, len(chats))
	for i := range chats {
		results = append(results, s.chatResult(&chats[i], query))
		seen[chats[i].ID] = true
	}

	if len(results) < limit {
		fuzzyResults, err := s.fuzzyChats(ctx, query, filters, seen)
		if err != nil {
			return nil, err
		}
		results = append(results, fuzzyResults...)
	}

	sortResults(results)
	return paginate(results, limit, offset), nil
}

// fuzzyChats, substring bulamayan sorgular için edit-distance fallback'i.
// seen: substring aşamasında zaten eklenen sohbet ID'leri — mükerrer önlenir.
func (s *searchService) fuzzyChats(ctx context.Context, query string, filters models.SearchFilters, seen map[string]bool) ([]models.SearchResult, error) {
	chats, err := s.searchRepo.ListChatsForFuzzy(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("%w: chat search failed: %v", pkg.ErrUnavailable, err)
	}

	byID := make(map[string]*models.Chat, len(chats))
	candidates := make([]relevance.Candidate, 0, len(chats))
	for i := range chats {
		c := &chats[i]
		if seen[c.ID] {
			continue
		}
		byID[c.ID] = c
		candidates = append(candidates, relevance.Candidate{ID: c.ID, Label: c.DisplayTitle()})
	}

	matches := relevance.FuzzyMatch(candidates, query, s.fuzzyFloor)

	results := make([]models.SearchResult, 0, len(matches))
	for _, m := range matches {
		chat := byID[m.ID]
		r := s.chatResult(chat, query)
		// Fuzzy-only skor: benzerlik 0..1 → 0..100 ölçeği, discount ile
		// substring bantlarının altına çekilir.
		r.Score = m.Similarity * 100 * s.fuzzyDiscount
		results = append(results, r)
	}

	return results, nil
}

// searchMessages, mesaj içeriklerinde arama yapar.
// Fuzzy fallback YOKTUR — mesaj gövdeleri uzundur, edit-distance benzerliği
// uzun metinlerde anlamsızlaşır. Substring bulamadıysa sonuç yoktur.
func (s *searchService) searchMessages(ctx context.Context, query string, filters models.SearchFilters, limit, offset int) ([]models.SearchResult, error) {
	hits, err := s.searchRepo.FindMessagesByContent(ctx, query, filters)
	if err != nil {
		return nil, fmt.Errorf("%w: message search failed: %v", pkg.ErrUnavailable, err)
	}

	results := make([]models.SearchResult, 0, len(hits))
	for i := range hits {
		results = append(results, s.messageResult(&hits[i], query))
	}

	sortResults(results)
	return paginate(results, limit, offset), nil
}

// searchAll, sohbet ve mesaj aramasını paralel çalıştırıp birleştirir.
//
// errgroup fail-fast'tir: alt aramalardan biri hata verirse context iptal
// olur ve diğeri de durur — yarım sonuç dönülmez.
//
// Her alt arama ceil(limit/2) sonuçla ve offset=0 ile çalışır: birleşik
// listede iki tür de temsil edilsin diye bütçe bölüşülür. "all" modunda
// offset parametresi anlamsızdır ve yok sayılır — birleşik sıralama iki
// bağımsız alt sıralamadan türediği için stabil bir offset penceresi tanımlanamaz.
func (s *searchService) searchAll(ctx context.Context, query string, filters models.SearchFilters, limit int) ([]models.SearchResult, error) {
	subLimit := (limit + 1) / 2

	var chatResults, messageResults []models.SearchResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		chatResults, err = s.searchChats(gctx, query, filters, subLimit, 0)
		return err
	})
	g.Go(func() error {
		var err error
		messageResults, err = s.searchMessages(gctx, query, filters, subLimit, 0)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := mergeResults(chatResults, messageResults)
	sortResults(merged)
	return paginate(merged, limit, 0), nil
}

func (s *searchService) Suggest(ctx context.Context, query string, ownerID string, limit int) (*models.SuggestResponse, error) {
	if limit <= 0 || limit > 20 {
		limit = 5
	}

	query = strings.TrimSpace(query)
	if len([]rune(query)) < suggestMinQueryLen {
		return &models.SuggestResponse{Suggestions: []string{}, Query: query}, nil
	}

	titles, err := s.searchRepo.SuggestTitles(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: suggestions failed: %v", pkg.ErrUnavailable, err)
	}

	// Aynı başlıklı birden fazla sohbet tek öneri olur — sıra korunarak
	// (case-insensitive) tekilleştirilir, ilk görülen kazanır.
	suggestions := make([]string, 0, limit)
	seen := make(map[string]bool, len(titles))
	for _, t := range titles {
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		suggestions = append(suggestions, t)
		if len(suggestions) == limit {
			break
		}
	}

	return &models.SuggestResponse{Suggestions: suggestions, Query: query}, nil
}
