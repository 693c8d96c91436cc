// StatsHandler, public (auth gerektirmeyen) istatistik endpoint'lerini yönetir.
// Landing page'de gösterilmek üzere tasarlandı.
package handlers

import (
	"net/http"

	"github.com/akinalp/sohbet/pkg"
	"github.com/akinalp/sohbet/repository"
)

// StatsResponse, public istatistik endpoint'inin response formatı.
type StatsResponse struct {
	TotalUsers    int `json:"total_users"`
	TotalChats    int `json:"total_chats"`
	TotalMessages int `json:"total_messages"`
}

// StatsHandler, istatistik endpoint'lerini yöneten handler.
// Dependency olarak sadece repository'leri alır — Count() metodları zaten mevcut.
type StatsHandler struct {
	userRepo    repository.UserRepository
	chatRepo    repository.ChatRepository
	messageRepo repository.MessageRepository
}

// NewStatsHandler, constructor. main.go'da wire-up edilir.
func NewStatsHandler(userRepo repository.UserRepository, chatRepo repository.ChatRepository, messageRepo repository.MessageRepository) *StatsHandler {
	return &StatsHandler{
		userRepo:    userRepo,
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
	}
}

// GetPublicStats, toplam kullanıcı/sohbet/mesaj sayılarını döner.
// Auth gerekmez — landing page'den çağrılır.
//
// GET /api/stats
// Response: { "success": true, "data": { "total_users": 42, ... } }
func (h *StatsHandler) GetPublicStats(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.Count(r.Context())
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusInternalServerError, "failed to get stats")
		return
	}

	chats, err := h.chatRepo.Count(r.Context())
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusInternalServerError, "failed to get stats")
		return
	}

	messages, err := h.messageRepo.Count(r.Context())
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusInternalServerError, "failed to get stats")
		return
	}

	pkg.JSON(w, http.StatusOK, StatsResponse{
		TotalUsers:    users,
		TotalChats:    chats,
		TotalMessages: messages,
	})
}
