// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// auth helper'ı JWT doğrulama middleware'ını handler'a sarar.
package main

import (
	"net/http"

	"github.com/akinalp/sohbet/middleware"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
//
// Route sıralama kuralı: Literal path'ler parametrik path'lerden ÖNCE tanımlanmalı.
// Örnek: "/api/search/suggestions" → "/api/search" ile çakışmaz ama
// "/api/chats/{chatId}" öncesinde literal bir path olsaydı sıralama önemli olurdu.
func initRoutes(mux *http.ServeMux, h *Handlers, authMw *middleware.AuthMiddleware) {
	// auth: JWT token doğrulaması gerektiren endpoint'ler için helper.
	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(http.HandlerFunc(handler))
	}

	// Auth — public endpoint'ler (token gerekmez)
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	mux.HandleFunc("POST /api/auth/forgot-password", h.Auth.ForgotPassword)
	mux.HandleFunc("POST /api/auth/reset-password", h.Auth.ResetPassword)

	// User
	mux.Handle("GET /api/users/me", auth(h.Auth.Me))
	mux.Handle("POST /api/users/me/password", auth(h.Auth.ChangePassword))

	// Chats
	mux.Handle("GET /api/chats", auth(h.Chat.List))
	mux.Handle("POST /api/chats", auth(h.Chat.Create))
	mux.Handle("GET /api/chats/{chatId}", auth(h.Chat.Get))
	mux.Handle("PATCH /api/chats/{chatId}", auth(h.Chat.Update))
	mux.Handle("DELETE /api/chats/{chatId}", auth(h.Chat.Delete))

	// Messages — chat-scoped
	mux.Handle("GET /api/chats/{chatId}/messages", auth(h.Message.List))
	mux.Handle("POST /api/chats/{chatId}/messages", auth(h.Message.Create))
	mux.Handle("DELETE /api/chats/{chatId}/messages/{messageId}", auth(h.Message.Delete))

	// Collections
	mux.Handle("GET /api/collections", auth(h.Collection.List))
	mux.Handle("POST /api/collections", auth(h.Collection.Create))
	mux.Handle("PATCH /api/collections/{collectionId}", auth(h.Collection.Update))
	mux.Handle("DELETE /api/collections/{collectionId}", auth(h.Collection.Delete))

	// Search
	mux.Handle("GET /api/search", auth(h.Search.Search))
	mux.Handle("GET /api/search/suggestions", auth(h.Search.Suggest))

	// Stats — public
	mux.HandleFunc("GET /api/stats", h.Stats.GetPublicStats)

	// WebSocket — token query parameter ile authenticate edilir
	mux.HandleFunc("GET /ws", h.WS.HandleConnection)
}
