package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/akinalp/sohbet/models"
	"github.com/akinalp/sohbet/pkg"
	"github.com/akinalp/sohbet/services"
)

// ChatHandler, sohbet endpoint'lerini yöneten struct.
type ChatHandler struct {
	chatService services.ChatService
}

// NewChatHandler, constructor.
func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Create godoc
// POST /api/chats
// Body: { "title": "...", "collection_id": "..." } — ikisi de opsiyonel.
func (h *ChatHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req models.CreateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	chat, err := h.chatService.Create(r.Context(), user.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, chat)
}

// List godoc
// GET /api/chats?limit=20&offset=0
// Kullanıcının kendi sohbetleri, en son güncellenen önce.
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	limit, offset := parsePagination(r, 20)

	page, err := h.chatService.List(r.Context(), user.ID, limit, offset)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, page)
}

// Get godoc
// GET /api/chats/{chatId}
func (h *ChatHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	// Go 1.22+ method+path pattern'lerinde path parametresi r.PathValue ile okunur.
	chatID := r.PathValue("chatId")

	chat, err := h.chatService.GetByID(r.Context(), user.ID, chatID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, chat)
}

// Update godoc
// PATCH /api/chats/{chatId}
// Body: { "title": "...", "collection_id": "..." } — partial update.
//
// "collection_id gönderilmedi" ile "collection_id: null gönderildi" farklı
// anlamlara gelir (dokunma / koleksiyondan çıkar). json.Decoder bu ikisini
// ayırt edemediği için body bir kez de raw map olarak parse edilir.
func (h *ChatHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	chatID := r.PathValue("chatId")

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var req models.UpdateChatRequest
	if titleRaw, exists := raw["title"]; exists {
		if err := json.Unmarshal(titleRaw, &req.Title); err != nil || req.Title == nil {
			pkg.ErrorWithMessage(w, http.StatusBadRequest, "title must be a string")
			return
		}
	}
	if collRaw, exists := raw["collection_id"]; exists {
		req.SetCollection = true
		if err := json.Unmarshal(collRaw, &req.Collection); err != nil {
			pkg.ErrorWithMessage(w, http.StatusBadRequest, "collection_id must be a string or null")
			return
		}
	}

	chat, err := h.chatService.Update(r.Context(), user.ID, chatID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, chat)
}

// Delete godoc
// DELETE /api/chats/{chatId}
// Sohbetle birlikte tüm mesajları da silinir (FK cascade).
func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	chatID := r.PathValue("chatId")

	if err := h.chatService.Delete(r.Context(), user.ID, chatID); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "chat deleted"})
}

// parsePagination, limit/offset query parametrelerini okur.
// Geçersiz veya eksik değerlerde default'a düşer — hata dönmez.
func parsePagination(r *http.Request, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
