// Package main — Handler katmanı başlatma.
//
// initHandlers, tüm HTTP handler'larını oluşturur.
// Her handler, ihtiyaç duyduğu service interface'lerini constructor'dan alır.
// Handler'lar "thin" dir — sadece HTTP parse + service call + response write.
package main

import (
	"github.com/akinalp/sohbet/handlers"
	"github.com/akinalp/sohbet/ws"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Chat       *handlers.ChatHandler
	Collection *handlers.CollectionHandler
	Message    *handlers.MessageHandler
	Search     *handlers.SearchHandler
	Stats      *handlers.StatsHandler
	WS         *ws.Handler
}

// initHandlers, tüm handler'ları service ve rate limiter dependency'leri ile oluşturur.
func initHandlers(svcs *Services, repos *Repositories, limiters *RateLimiters, hub *ws.Hub) *Handlers {
	return &Handlers{
		Auth:       handlers.NewAuthHandler(svcs.Auth, limiters.Login),
		Chat:       handlers.NewChatHandler(svcs.Chat),
		Collection: handlers.NewCollectionHandler(svcs.Collection),
		Message:    handlers.NewMessageHandler(svcs.Message),
		Search:     handlers.NewSearchHandler(svcs.Search),
		Stats:      handlers.NewStatsHandler(repos.User, repos.Chat, repos.Message),
		WS:         ws.NewHandler(hub, svcs.Auth),
	}
}
