package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/sohbet/models"
	"github.com/akinalp/sohbet/pkg"
	"github.com/akinalp/sohbet/pkg/relevance"
	"github.com/akinalp/sohbet/repository"
)

// fakeSearchRepo, SearchRepository'nin fonksiyon alanlı test double'ı.
// Set edilmeyen bir metod çağrılırsa test faille — beklenmeyen store
// erişimi sessizce geçmesin diye.
type fakeSearchRepo struct {
	t *testing.T

	findChatsByTitle      func(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error)
	listChatsForFuzzy     func(ctx context.Context, filters models.SearchFilters) ([]models.Chat, error)
	findMessagesByContent func(ctx context.Context, query string, filters models.SearchFilters) ([]repository.MessageHit, error)
	suggestTitles         func(ctx context.Context, query string, ownerID string, limit int) ([]string, error)
}

func (f *fakeSearchRepo) FindChatsByTitle(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error) {
	if f.findChatsByTitle == nil {
		f.t.Fatal("unexpected FindChatsByTitle call")
	}
	return f.findChatsByTitle(ctx, query, filters)
}

func (f *fakeSearchRepo) ListChatsForFuzzy(ctx context.Context, filters models.SearchFilters) ([]models.Chat, error) {
	if f.listChatsForFuzzy == nil {
		f.t.Fatal("unexpected ListChatsForFuzzy call")
	}
	return f.listChatsForFuzzy(ctx, filters)
}

func (f *fakeSearchRepo) FindMessagesByContent(ctx context.Context, query string, filters models.SearchFilters) ([]repository.MessageHit, error) {
	if f.findMessagesByContent == nil {
		f.t.Fatal("unexpected FindMessagesByContent call")
	}
	return f.findMessagesByContent(ctx, query, filters)
}

func (f *fakeSearchRepo) SuggestTitles(ctx context.Context, query string, ownerID string, limit int) ([]string, error) {
	if f.suggestTitles == nil {
		f.t.Fatal("unexpected SuggestTitles call")
	}
	return f.suggestTitles(ctx, query, ownerID, limit)
}

func newTestSearchService(repo repository.SearchRepository) SearchService {
	return NewSearchService(repo, 0.4, 0.8, 200)
}

func strPtr(s string) *string { return &s }

func testChat(id, title string, updatedAt time.Time) models.Chat {
	return models.Chat{
		ID:        id,
		OwnerID:   "owner-1",
		Title:     strPtr(title),
		CreatedAt: updatedAt.Add(-time.Hour),
		UpdatedAt: updatedAt,
	}
}

var testFilters = models.SearchFilters{OwnerID: "owner-1"}

// ─── Search: genel davranış ───

func TestSearch_InvalidTypeRejected(t *testing.T) {
	svc := newTestSearchService(&fakeSearchRepo{t: t})

	_, err := svc.Search(context.Background(), "query", models.SearchType("bogus"), testFilters, 20, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

// Boş sorgu hata değildir ve store'a HİÇ dokunmaz — fake'in hiçbir
// fonksiyon alanı set edilmediği için yanlışlıkla erişim testi faillerdi.
func TestSearch_EmptyQuerySkipsStore(t *testing.T) {
	svc := newTestSearchService(&fakeSearchRepo{t: t})

	for _, q := range []string{"", "   ", "\t\n"} {
		resp, err := svc.Search(context.Background(), q, models.SearchTypeAll, testFilters, 20, 0)

		require.NoError(t, err)
		assert.Empty(t, resp.Results)
		assert.False(t, resp.HasMore)
	}
}

func TestSearch_StoreFailureWrapsUnavailable(t *testing.T) {
	repo := &fakeSearchRepo{
		t: t,
		findChatsByTitle: func(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error) {
			return nil, errors.New("disk exploded")
		},
	}
	svc := newTestSearchService(repo)

	_, err := svc.Search(context.Background(), "notes", models.SearchTypeChats, testFilters, 20, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrUnavailable)
}

// ─── Search: sohbet araması ve band skorlaması ───

func TestSearchChats_BandOrdering(t *testing.T) {
	now := time.Now()
	repo := &fakeSearchRepo{
		t: t,
		findChatsByTitle: func(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error) {
			return []models.Chat{
				testChat("c-contains", "my alpha notes", now),
				testChat("c-equal", "alpha", now),
				testChat("c-suffix", "project alpha", now),
				testChat("c-prefix", "alpha notes", now),
			}, nil
		},
		listChatsForFuzzy: func(ctx context.Context, filters models.SearchFilters) ([]models.Chat, error) {
			return nil, nil
		},
	}
	svc := newTestSearchService(repo)

	resp, err := svc.Search(context.Background(), "alpha", models.SearchTypeChats, testFilters, 20, 0)

	require.NoError(t, err)
	require.Len(t, resp.Results, 4)
	assert.Equal(t, "c-equal", resp.Results[0].ID)
	assert.Equal(t, "c-prefix", resp.Results[1].ID)
	assert.Equal(t, "c-suffix", resp.Results[2].ID)
	assert.Equal(t, "c-contains", resp.Results[3].ID)
	assert.Equal(t, relevance.BandEqual, resp.Results[0].Score)
	assert.Equal(t, relevance.BandContains, resp.Results[3].Score)
}

// Substring aşaması limit'i dolduruyorsa fuzzy fallback hiç çalışmamalı —
// listChatsForFuzzy set edilmedi, çağrılsaydı test faillerdi.
func TestSearchChats_FuzzySkippedWhenPrimaryFillsLimit(t *testing.T) {
	now := time.Now()
	repo := &fakeSearchRepo{
		t: t,
		findChatsByTitle: func(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error) {
			return []models.Chat{
				testChat("c1", "alpha one", now),
				testChat("c2", "alpha two", now.Add(-time.Minute)),
			}, nil
		},
	}
	svc := newTestSearchService(repo)

	resp, err := svc.Search(context.Background(), "alpha", models.SearchTypeChats, testFilters, 2, 0)

	require.NoError(t, err)
	assert.Len(t, resp.Results, 2)
	assert.True(t, resp.HasMore)
}

func TestSearchChats_FuzzyFallbackScoresDiscounted(t *testing.T) {
	now := time.Now()
	repo := &fakeSearchRepo{
		t: t,
		findChatsByTitle: func(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error) {
			return nil, nil // substring hiçbir şey bulamadı
		},
		listChatsForFuzzy: func(ctx context.Context, filters models.SearchFilters) ([]models.Chat, error) {
			return []models.Chat{
				testChat("c-typo", "meeting notes", now),
				testChat("c-unrelated", "zzzzzzzz", now),
			}, nil
		},
	}
	svc := newTestSearchService(repo)

	// "meetng" — tek harf eksik, edit-distance yakalar
	resp, err := svc.Search(context.Background(), "meetng notes", models.SearchTypeChats, testFilters, 20, 0)

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "c-typo", resp.Results[0].ID)
	// Fuzzy-only skor: similarity × 100 × 0.8 — substring bantlarının altında kalmalı
	assert.Less(t, resp.Results[0].Score, relevance.BandEqual)
	assert.Greater(t, resp.Results[0].Score, 0.0)
}

// Substring aşamasında bulunan sohbet fuzzy havuzunda da görünse bile
// sonuçta bir kez yer alır.
func TestSearchChats_FuzzyDeduplicatesPrimaryHits(t *testing.T) {
	now := time.Now()
	primary := testChat("c1", "alpha notes", now)
	repo := &fakeSearchRepo{
		t: t,
		findChatsByTitle: func(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error) {
			return []models.Chat{primary}, nil
		},
		listChatsForFuzzy: func(ctx context.Context, filters models.SearchFilters) ([]models.Chat, error) {
			return []models.Chat{primary, testChat("c2", "alpha notas", now)}, nil
		},
	}
	svc := newTestSearchService(repo)

	resp, err := svc.Search(context.Background(), "alpha notes", models.SearchTypeChats, testFilters, 20, 0)

	require.NoError(t, err)
	ids := make(map[string]int)
	for _, r := range resp.Results {
		ids[r.ID]++
	}
	assert.Equal(t, 1, ids["c1"])
}

func TestSearchChats_UntitledChatGetsPlaceholderTitle(t *testing.T) {
	now := time.Now()
	repo := &fakeSearchRepo{
		t: t,
		findChatsByTitle: func(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error) {
			return nil, nil
		},
		listChatsForFuzzy: func(ctx context.Context, filters models.SearchFilters) ([]models.Chat, error) {
			untitled := models.Chat{ID: "c1", OwnerID: "owner-1", CreatedAt: now, UpdatedAt: now}
			return []models.Chat{untitled}, nil
		},
	}
	svc := newTestSearchService(repo)

	resp, err := svc.Search(context.Background(), "untitled chat", models.SearchTypeChats, testFilters, 20, 0)

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, models.UntitledChatTitle, resp.Results[0].Title)
}

// ─── Search: mesaj araması ───

func TestSearchMessages_BuildsResultWithMetadata(t *testing.T) {
	now := time.Now()
	repo := &fakeSearchRepo{
		t: t,
		findMessagesByContent: func(ctx context.Context, query string, filters models.SearchFilters) ([]repository.MessageHit, error) {
			return []repository.MessageHit{
				{
					Message: models.Message{
						ID:        "m1",
						ChatID:    "c1",
						Role:      models.RoleAssistant,
						Content:   "the deploy failed because of a missing env var",
						CreatedAt: now,
					},
					ChatTitle: strPtr("Deploy debugging"),
				},
			}, nil
		},
	}
	svc := newTestSearchService(repo)

	resp, err := svc.Search(context.Background(), "deploy", models.SearchTypeMessages, testFilters, 20, 0)

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	r := resp.Results[0]
	assert.Equal(t, models.ResultKindMessage, r.Kind)
	assert.Equal(t, `Message in "Deploy debugging"`, r.Title)
	assert.Equal(t, "/chat/c1?messageId=m1", r.TargetURL)
	assert.Equal(t, "c1", r.Metadata.ParentChatID)
	assert.Equal(t, "Deploy debugging", r.Metadata.ParentChatTitle)
	assert.Equal(t, "assistant", r.Metadata.AuthorRole)
	// Gövde bandı: "deploy" içerikte geçiyor ama başta/sonda değil → contains+10
	assert.Equal(t, relevance.BandContains+relevance.BodyBandOffset, r.Score)
}

func TestSearchMessages_UntitledParentChat(t *testing.T) {
	repo := &fakeSearchRepo{
		t: t,
		findMessagesByContent: func(ctx context.Context, query string, filters models.SearchFilters) ([]repository.MessageHit, error) {
			return []repository.MessageHit{
				{Message: models.Message{ID: "m1", ChatID: "c1", Role: models.RoleUser, Content: "hello world"}},
			}, nil
		},
	}
	svc := newTestSearchService(repo)

	resp, err := svc.Search(context.Background(), "hello", models.SearchTypeMessages, testFilters, 20, 0)

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, `Message in "Untitled Chat"`, resp.Results[0].Title)
}

// ─── Search: birleşik mod ───

func TestSearchAll_MergesBothKinds(t *testing.T) {
	now := time.Now()
	repo := &fakeSearchRepo{
		t: t,
		findChatsByTitle: func(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error) {
			return []models.Chat{testChat("c1", "alpha", now)}, nil
		},
		listChatsForFuzzy: func(ctx context.Context, filters models.SearchFilters) ([]models.Chat, error) {
			return nil, nil
		},
		findMessagesByContent: func(ctx context.Context, query string, filters models.SearchFilters) ([]repository.MessageHit, error) {
			return []repository.MessageHit{
				{Message: models.Message{ID: "m1", ChatID: "c1", Role: models.RoleUser, Content: "alpha", CreatedAt: now}},
			}, nil
		},
	}
	svc := newTestSearchService(repo)

	resp, err := svc.Search(context.Background(), "alpha", models.SearchTypeAll, testFilters, 10, 0)

	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	// Mesaj tam eşleşmesi (100+10) başlık tam eşleşmesinin (100) üstünde
	assert.Equal(t, models.ResultKindMessage, resp.Results[0].Kind)
	assert.Equal(t, models.ResultKindChat, resp.Results[1].Kind)
}

// Bol sonuçlu birleşik arama: her alt arama ceil(limit/2) bütçesiyle
// çalışır, birleşik liste limit'e kırpılır. 6 sohbet + 6 mesaj adayından
// limit=10 ile tam 10 sonuç döner — 5 sohbet, 5 mesaj. Her iki tarafın
// en eski adayı (c5, m5) alt arama bütçesinde elenir. Substring aşaması
// alt bütçeyi doldurduğu için fuzzy hiç çalışmamalı — listChatsForFuzzy
// bilerek set edilmedi.
func bigSearchAllRepo(t *testing.T) *fakeSearchRepo {
	t.Helper()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &fakeSearchRepo{
		t: t,
		findChatsByTitle: func(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error) {
			chats := make([]models.Chat, 6)
			for i := range chats {
				// Hepsi prefix bandı (80) — recency tie-break'i belirleyici
				chats[i] = testChat("c"+strconv.Itoa(i), "alpha "+strconv.Itoa(i), now.Add(-time.Duration(i)*time.Minute))
			}
			return chats, nil
		},
		findMessagesByContent: func(ctx context.Context, query string, filters models.SearchFilters) ([]repository.MessageHit, error) {
			hits := make([]repository.MessageHit, 6)
			for i := range hits {
				// Hepsi contains+gövde bandı (50) — sohbet bantlarının altında
				hits[i] = repository.MessageHit{
					Message: models.Message{
						ID:        "m" + strconv.Itoa(i),
						ChatID:    "c0",
						Role:      models.RoleUser,
						Content:   "note alpha " + strconv.Itoa(i),
						CreatedAt: now.Add(-time.Duration(i) * time.Minute),
					},
				}
			}
			return hits, nil
		},
	}
}

func TestSearchAll_SplitsBudgetAndTruncatesToLimit(t *testing.T) {
	svc := newTestSearchService(bigSearchAllRepo(t))

	resp, err := svc.Search(context.Background(), "alpha", models.SearchTypeAll, testFilters, 10, 0)

	require.NoError(t, err)
	require.Len(t, resp.Results, 10)
	assert.True(t, resp.HasMore)

	// Skor asla artmaz — birleşik liste skor azalan sıralı
	for i := 1; i < len(resp.Results); i++ {
		assert.GreaterOrEqual(t, resp.Results[i-1].Score, resp.Results[i].Score)
	}

	// Kompozisyon: 5 sohbet + 5 mesaj; c5 ve m5 alt bütçede elendi
	assert.Equal(t,
		[]string{"c0", "c1", "c2", "c3", "c4", "m0", "m1", "m2", "m3", "m4"},
		resultIDs(resp.Results))

	kinds := make(map[models.SearchResultKind]int)
	for _, r := range resp.Results {
		kinds[r.Kind]++
	}
	assert.Equal(t, 5, kinds[models.ResultKindChat])
	assert.Equal(t, 5, kinds[models.ResultKindMessage])
}

// Birleşik modda offset yok sayılır — aynı sorgu farklı offset'lerle
// aynı sonucu döner. Sayfalama sadece chats/messages tiplerinde anlamlıdır.
func TestSearchAll_OffsetIgnored(t *testing.T) {
	svc := newTestSearchService(bigSearchAllRepo(t))

	base, err := svc.Search(context.Background(), "alpha", models.SearchTypeAll, testFilters, 10, 0)
	require.NoError(t, err)
	shifted, err := svc.Search(context.Background(), "alpha", models.SearchTypeAll, testFilters, 10, 3)
	require.NoError(t, err)

	assert.Equal(t, resultIDs(base.Results), resultIDs(shifted.Results))
}

func TestSearchAll_SubSearchFailurePropagates(t *testing.T) {
	repo := &fakeSearchRepo{
		t: t,
		findChatsByTitle: func(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error) {
			return nil, nil
		},
		listChatsForFuzzy: func(ctx context.Context, filters models.SearchFilters) ([]models.Chat, error) {
			return nil, nil
		},
		findMessagesByContent: func(ctx context.Context, query string, filters models.SearchFilters) ([]repository.MessageHit, error) {
			return nil, errors.New("timeout")
		},
	}
	svc := newTestSearchService(repo)

	_, err := svc.Search(context.Background(), "alpha", models.SearchTypeAll, testFilters, 10, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrUnavailable)
}

// ─── Search: sayfalama ve determinizm ───

func TestSearch_PaginationWindow(t *testing.T) {
	now := time.Now()
	repo := &fakeSearchRepo{
		t: t,
		findChatsByTitle: func(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error) {
			chats := make([]models.Chat, 5)
			for i := range chats {
				// Hepsi prefix bandında, recency ile sıralanır
				chats[i] = testChat("c"+strconv.Itoa(i), "alpha "+strconv.Itoa(i), now.Add(-time.Duration(i)*time.Minute))
			}
			return chats, nil
		},
		listChatsForFuzzy: func(ctx context.Context, filters models.SearchFilters) ([]models.Chat, error) {
			return nil, nil
		},
	}
	svc := newTestSearchService(repo)

	page1, err := svc.Search(context.Background(), "alpha", models.SearchTypeChats, testFilters, 2, 0)
	require.NoError(t, err)
	page2, err := svc.Search(context.Background(), "alpha", models.SearchTypeChats, testFilters, 2, 2)
	require.NoError(t, err)
	tail, err := svc.Search(context.Background(), "alpha", models.SearchTypeChats, testFilters, 2, 4)
	require.NoError(t, err)
	beyond, err := svc.Search(context.Background(), "alpha", models.SearchTypeChats, testFilters, 2, 99)
	require.NoError(t, err)

	assert.Equal(t, []string{"c0", "c1"}, resultIDs(page1.Results))
	assert.Equal(t, []string{"c2", "c3"}, resultIDs(page2.Results))
	assert.Equal(t, []string{"c4"}, resultIDs(tail.Results))
	assert.Empty(t, beyond.Results)
	assert.True(t, page1.HasMore)
	assert.False(t, tail.HasMore)
}

// Skor ve zaman damgası eşitse ID sıralama anahtarıdır — aynı input
// her çağrıda aynı sırayı üretmeli.
func TestSearch_DeterministicTieBreak(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeSearchRepo{
		t: t,
		findChatsByTitle: func(ctx context.Context, query string, filters models.SearchFilters) ([]models.Chat, error) {
			return []models.Chat{
				testChat("c-b", "alpha x", now),
				testChat("c-a", "alpha y", now),
			}, nil
		},
		listChatsForFuzzy: func(ctx context.Context, filters models.SearchFilters) ([]models.Chat, error) {
			return nil, nil
		},
	}
	svc := newTestSearchService(repo)

	for i := 0; i < 3; i++ {
		resp, err := svc.Search(context.Background(), "alpha", models.SearchTypeChats, testFilters, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"c-a", "c-b"}, resultIDs(resp.Results))
	}
}

func resultIDs(results []models.SearchResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}

// ─── Suggest ───

func TestSuggest_ShortQueryReturnsEmpty(t *testing.T) {
	svc := newTestSearchService(&fakeSearchRepo{t: t})

	for _, q := range []string{"", "a", " a "} {
		resp, err := svc.Suggest(context.Background(), q, "owner-1", 5)
		require.NoError(t, err)
		assert.Empty(t, resp.Suggestions)
	}
}

func TestSuggest_DeduplicatesCaseInsensitive(t *testing.T) {
	repo := &fakeSearchRepo{
		t: t,
		suggestTitles: func(ctx context.Context, query string, ownerID string, limit int) ([]string, error) {
			return []string{"Meeting Notes", "meeting notes", "Meeting prep", "MEETING NOTES"}, nil
		},
	}
	svc := newTestSearchService(repo)

	resp, err := svc.Suggest(context.Background(), "meet", "owner-1", 5)

	require.NoError(t, err)
	// İlk görülen yazım korunur, sonraki varyantlar elenir
	assert.Equal(t, []string{"Meeting Notes", "Meeting prep"}, resp.Suggestions)
}

func TestSuggest_LimitAppliedAfterDedupe(t *testing.T) {
	repo := &fakeSearchRepo{
		t: t,
		suggestTitles: func(ctx context.Context, query string, ownerID string, limit int) ([]string, error) {
			return []string{"aa", "aa", "ab", "ac", "ad"}, nil
		},
	}
	svc := newTestSearchService(repo)

	resp, err := svc.Suggest(context.Background(), "a-query", "owner-1", 3)

	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "ab", "ac"}, resp.Suggestions)
}

func TestSuggest_StoreFailureWrapsUnavailable(t *testing.T) {
	repo := &fakeSearchRepo{
		t: t,
		suggestTitles: func(ctx context.Context, query string, ownerID string, limit int) ([]string, error) {
			return nil, errors.New("locked")
		},
	}
	svc := newTestSearchService(repo)

	_, err := svc.Suggest(context.Background(), "meet", "owner-1", 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrUnavailable)
}
