// Package main — Service katmanı başlatma.
//
// initServices, tüm service implementasyonlarını oluşturur.
// Her service, ihtiyaç duyduğu repository interface'lerini ve diğer
// dependency'leri constructor injection ile alır.
package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/akinalp/sohbet/config"
	"github.com/akinalp/sohbet/pkg/email"
	"github.com/akinalp/sohbet/pkg/ratelimit"
	"github.com/akinalp/sohbet/services"
	"github.com/akinalp/sohbet/ws"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth       services.AuthService
	Chat       services.ChatService
	Collection services.CollectionService
	Message    services.MessageService
	Search     services.SearchService
}

// RateLimiters, tüm rate limiter instance'larını tutan container.
type RateLimiters struct {
	Login   *ratelimit.LoginRateLimiter
	Message *ratelimit.MessageRateLimiter
}

// initServices, tüm service'leri ve rate limiter'ları oluşturur.
//
// hub, service'ler arası paylaşılan dependency'dir — service'ler hub'a
// doğrudan değil, ws.EventPublisher interface'i üzerinden erişir.
// db, AuthService'in atomik transaction'ları (WithTx) için geçilir.
func initServices(db *sql.DB, repos *Repositories, hub ws.EventPublisher, cfg *config.Config) (*Services, *RateLimiters) {
	// ─── Email service (opsiyonel) ───
	var emailSender email.EmailSender
	if cfg.Email.ResendAPIKey != "" && cfg.Email.FromEmail != "" && cfg.Email.AppURL != "" {
		emailSender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromEmail, cfg.Email.AppURL)
		log.Printf("[main] email service enabled (from=%s)", cfg.Email.FromEmail)
	} else {
		log.Println("[main] email service disabled (RESEND_API_KEY, RESEND_FROM or APP_URL not set)")
	}

	// ─── Rate limiter'lar ───
	// Login: IP başına 2 dakikada 5 deneme — brute-force koruması.
	// Message: kullanıcı başına 5 saniyede 5 mesaj, aşımda 15 saniye cooldown.
	loginLimiter := ratelimit.NewLoginRateLimiter(5, 2*time.Minute)
	messageLimiter := ratelimit.NewMessageRateLimiter(5, 5*time.Second, 15*time.Second)

	authService := services.NewAuthService(
		db, repos.User, repos.Session, repos.ResetToken, emailSender,
		cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry,
	)

	chatService := services.NewChatService(repos.Chat, repos.Collection, hub)
	collectionService := services.NewCollectionService(repos.Collection, hub)
	messageService := services.NewMessageService(repos.Message, repos.Chat, messageLimiter, hub)
	searchService := services.NewSearchService(
		repos.Search, cfg.Search.FuzzyFloor, cfg.Search.FuzzyDiscount, cfg.Search.SnippetLen,
	)

	svcs := &Services{
		Auth:       authService,
		Chat:       chatService,
		Collection: collectionService,
		Message:    messageService,
		Search:     searchService,
	}
	limiters := &RateLimiters{
		Login:   loginLimiter,
		Message: messageLimiter,
	}

	return svcs, limiters
}
