package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/akinalp/sohbet/models"
	"github.com/akinalp/sohbet/pkg"
	"github.com/akinalp/sohbet/services"
)

// SearchHandler, arama endpoint'lerini yöneten struct.
type SearchHandler struct {
	searchService services.SearchService
}

// NewSearchHandler, constructor.
func NewSearchHandler(searchService services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search godoc
// GET /api/search?q=...&type=all|chats|messages&limit=20&offset=0
//               &collectionId=...&dateFrom=RFC3339&dateTo=RFC3339
//
// Query parametreleri burada, boundary'de bir kez valide edilir.
// Hatalar tek tek toplanır ve 400 yanıtında alan bazlı döner —
// client tek request'te tüm hataları görür.
//
// offset sadece chats/messages tiplerinde sayfalama yapar; type=all'da
// kabul edilir ama yok sayılır — birleşik sıralama iki bağımsız alt
// sıralamadan türediği için stabil bir offset penceresi yoktur.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	q := r.URL.Query()
	ve := pkg.NewValidationError()

	query := q.Get("q")
	if query == "" {
		ve.Add("q", "query parameter is required")
	}

	searchType := models.SearchTypeAll
	if v := q.Get("type"); v != "" {
		searchType = models.SearchType(v)
		if !searchType.Valid() {
			ve.Add("type", "must be one of: all, chats, messages")
		}
	}

	limit := 20
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			ve.Add("limit", "must be an integer between 1 and 100")
		} else {
			limit = n
		}
	}

	offset := 0
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			ve.Add("offset", "must be a non-negative integer")
		} else {
			offset = n
		}
	}

	filters := models.SearchFilters{OwnerID: user.ID}

	if v := q.Get("collectionId"); v != "" {
		filters.CollectionID = &v
	}

	if v := q.Get("dateFrom"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			ve.Add("dateFrom", "must be an RFC3339 timestamp")
		} else {
			filters.DateFrom = &t
		}
	}

	if v := q.Get("dateTo"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			ve.Add("dateTo", "must be an RFC3339 timestamp")
		} else {
			filters.DateTo = &t
		}
	}

	if ve.HasErrors() {
		pkg.Error(w, ve)
		return
	}

	response, err := h.searchService.Search(r.Context(), query, searchType, filters, limit, offset)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, response)
}

// Suggest godoc
// GET /api/search/suggestions?q=...&limit=5
//
// Yazarken öneri (typeahead) — sohbet başlıklarından prefix eşleşmeleri.
// q zorunlu DEĞİLDİR: boş veya kısa sorgular (< 2 karakter) boş liste
// döner, hata değil. Typeahead input'u her tuşta istek atar — ilk
// tuştan önceki boş hali 400 ile cezalandırmak client'ı karmaşıklaştırır.
func (h *SearchHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	q := r.URL.Query()
	ve := pkg.NewValidationError()

	query := q.Get("q")

	limit := 5
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 20 {
			ve.Add("limit", "must be an integer between 1 and 20")
		} else {
			limit = n
		}
	}

	if ve.HasErrors() {
		pkg.Error(w, ve)
		return
	}

	response, err := h.searchService.Suggest(r.Context(), query, user.ID, limit)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, response)
}
