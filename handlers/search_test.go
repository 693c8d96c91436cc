package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/sohbet/models"
	"github.com/akinalp/sohbet/pkg"
)

// fakeSearchService, handler testleri için SearchService double'ı.
// Yapılan çağrının parametrelerini yakalar ki boundary parse'ının
// service'e doğru ulaştığı doğrulanabilsin.
type fakeSearchService struct {
	gotQuery   string
	gotType    models.SearchType
	gotFilters models.SearchFilters
	gotLimit   int
	gotOffset  int

	searchCalled  bool
	suggestCalled bool
}

func (f *fakeSearchService) Search(ctx context.Context, query string, searchType models.SearchType, filters models.SearchFilters, limit, offset int) (*models.SearchResponse, error) {
	f.searchCalled = true
	f.gotQuery, f.gotType, f.gotFilters, f.gotLimit, f.gotOffset = query, searchType, filters, limit, offset
	return &models.SearchResponse{Results: []models.SearchResult{}, Query: query, Type: searchType}, nil
}

func (f *fakeSearchService) Suggest(ctx context.Context, query string, ownerID string, limit int) (*models.SuggestResponse, error) {
	f.suggestCalled = true
	f.gotQuery, f.gotLimit = query, limit
	f.gotFilters = models.SearchFilters{OwnerID: ownerID}
	return &models.SuggestResponse{Suggestions: []string{}, Query: query}, nil
}

func searchRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	user := &models.User{ID: "user-1", Username: "ayse"}
	return req.WithContext(context.WithValue(req.Context(), UserContextKey, user))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) pkg.APIResponse {
	t.Helper()
	var resp pkg.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestSearchHandler_MissingQueryRejected(t *testing.T) {
	svc := &fakeSearchService{}
	h := NewSearchHandler(svc)
	rec := httptest.NewRecorder()

	h.Search(rec, searchRequest(t, "/api/search"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Fields, "q")
	assert.False(t, svc.searchCalled)
}

// Birden fazla geçersiz parametre tek yanıtta toplanır — client her
// hatayı ayrı request'le keşfetmek zorunda kalmaz.
func TestSearchHandler_CollectsAllFieldErrors(t *testing.T) {
	svc := &fakeSearchService{}
	h := NewSearchHandler(svc)
	rec := httptest.NewRecorder()

	h.Search(rec, searchRequest(t, "/api/search?type=bogus&limit=500&offset=-1&dateFrom=yesterday"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Contains(t, resp.Fields, "q")
	assert.Contains(t, resp.Fields, "type")
	assert.Contains(t, resp.Fields, "limit")
	assert.Contains(t, resp.Fields, "offset")
	assert.Contains(t, resp.Fields, "dateFrom")
	assert.False(t, svc.searchCalled)
}

func TestSearchHandler_DefaultsApplied(t *testing.T) {
	svc := &fakeSearchService{}
	h := NewSearchHandler(svc)
	rec := httptest.NewRecorder()

	h.Search(rec, searchRequest(t, "/api/search?q=alpha"))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, svc.searchCalled)
	assert.Equal(t, "alpha", svc.gotQuery)
	assert.Equal(t, models.SearchTypeAll, svc.gotType)
	assert.Equal(t, 20, svc.gotLimit)
	assert.Equal(t, 0, svc.gotOffset)
	// Filtreler her zaman authenticated kullanıcıya sabitlenir
	assert.Equal(t, "user-1", svc.gotFilters.OwnerID)
	assert.Nil(t, svc.gotFilters.CollectionID)
}

func TestSearchHandler_FiltersParsed(t *testing.T) {
	svc := &fakeSearchService{}
	h := NewSearchHandler(svc)
	rec := httptest.NewRecorder()

	target := "/api/search?q=alpha&type=messages&limit=50&offset=10" +
		"&collectionId=col-9&dateFrom=2026-01-01T00:00:00Z&dateTo=2026-02-01T00:00:00Z"
	h.Search(rec, searchRequest(t, target))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, svc.searchCalled)
	assert.Equal(t, models.SearchTypeMessages, svc.gotType)
	assert.Equal(t, 50, svc.gotLimit)
	assert.Equal(t, 10, svc.gotOffset)
	require.NotNil(t, svc.gotFilters.CollectionID)
	assert.Equal(t, "col-9", *svc.gotFilters.CollectionID)
	require.NotNil(t, svc.gotFilters.DateFrom)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), svc.gotFilters.DateFrom.UTC())
	require.NotNil(t, svc.gotFilters.DateTo)
}

func TestSearchHandler_UnauthenticatedContext(t *testing.T) {
	h := NewSearchHandler(&fakeSearchService{})
	rec := httptest.NewRecorder()

	// Context'e user konmadı — middleware atlanmış gibi
	h.Search(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=x", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSuggestHandler_Defaults(t *testing.T) {
	svc := &fakeSearchService{}
	h := NewSearchHandler(svc)
	rec := httptest.NewRecorder()

	h.Suggest(rec, searchRequest(t, "/api/search/suggestions?q=me"))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, svc.suggestCalled)
	assert.Equal(t, "me", svc.gotQuery)
	assert.Equal(t, 5, svc.gotLimit)
	assert.Equal(t, "user-1", svc.gotFilters.OwnerID)
}

// q zorunlu değildir — typeahead input'un boş hali 400 değil, boş
// öneri listesidir. Boş sorgu service'e kadar iner; kısa-sorgu kuralı
// orada uygulanır.
func TestSuggestHandler_EmptyQueryAllowed(t *testing.T) {
	svc := &fakeSearchService{}
	h := NewSearchHandler(svc)
	rec := httptest.NewRecorder()

	h.Suggest(rec, searchRequest(t, "/api/search/suggestions"))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, svc.suggestCalled)
	assert.Equal(t, "", svc.gotQuery)
}

func TestSuggestHandler_LimitOutOfRangeRejected(t *testing.T) {
	svc := &fakeSearchService{}
	h := NewSearchHandler(svc)
	rec := httptest.NewRecorder()

	h.Suggest(rec, searchRequest(t, "/api/search/suggestions?q=me&limit=100"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Contains(t, resp.Fields, "limit")
	assert.False(t, svc.suggestCalled)
}
