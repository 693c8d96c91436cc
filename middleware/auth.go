// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Middleware Pattern nedir?
// Her HTTP request, handler'a ulaşmadan önce bir veya daha fazla middleware'dan geçer.
// Middleware'lar zincir şeklinde çalışır: Auth → Handler
//
// Go'da middleware bir fonksiyondur:
//   func(next http.Handler) http.Handler
//
// "next" parametresi zincirdeki bir sonraki handler'dır.
// Middleware kendi işini yapar (ör: token doğrula), sonra next'i çağırır.
// Eğer hata varsa next'i çağırmaz → request burada durur.
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/akinalp/sohbet/handlers"
	"github.com/akinalp/sohbet/models"
	"github.com/akinalp/sohbet/pkg"
	"github.com/akinalp/sohbet/pkg/cache"
	"github.com/akinalp/sohbet/repository"
	"github.com/akinalp/sohbet/services"
)

// AuthMiddleware, JWT token doğrulama middleware'ı.
//
// userCache: userID → User kısa ömürlü cache. Her authenticated request'te
// DB'ye gitmemek için kullanıcı 30 saniye bellekte tutulur. TTL kısa —
// silinen kullanıcının token'ı en fazla 30 saniye daha çalışır, kabul edilebilir.
type AuthMiddleware struct {
	authService services.AuthService
	userRepo    repository.UserRepository
	userCache   *cache.TTLCache[string, *models.User]
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		userRepo:    userRepo,
		userCache:   cache.New[string, *models.User](30*time.Second, 5*time.Minute),
	}
}

// Close, cache'in arka plan temizleme goroutine'ini durdurur (graceful shutdown).
func (m *AuthMiddleware) Close() {
	m.userCache.Close()
}

// Require, JWT token zorunlu kılan middleware.
// Token yoksa veya geçersizse → 401 Unauthorized.
//
// HTTP header formatı: Authorization: Bearer <token>
//
// Middleware nasıl çalışır?
// 1. "Authorization" header'ını oku
// 2. "Bearer " prefix'ini kaldır → raw token string
// 3. AuthService.ValidateAccessToken() ile doğrula
// 4. Token geçerliyse → kullanıcıyı cache/DB'den getir → context'e ekle → next
// 5. Geçersizse → 401 döndür, next ÇAĞIRILMAZ
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Header'dan token'ı al
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		// 2. "Bearer " prefix'ini kaldır
		if !strings.HasPrefix(authHeader, "Bearer ") {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "invalid authorization format, use: Bearer <token>")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// 3. Token'ı doğrula
		claims, err := m.authService.ValidateAccessToken(tokenString)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		// 4. Kullanıcıyı getir — önce cache, yoksa DB.
		// Token geçerli ama kullanıcı silinmiş olabilir; DB miss → 401.
		user, ok := m.userCache.Get(claims.UserID)
		if !ok {
			user, err = m.userRepo.GetByID(r.Context(), claims.UserID)
			if err != nil {
				pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found")
				return
			}

			// Password hash'i temizle — context'te taşınmamalı
			user.PasswordHash = ""
			m.userCache.Set(claims.UserID, user)
		}

		// 5. Context'e kullanıcıyı ekle
		// context.WithValue: mevcut context'e key-value ekler.
		// Downstream handler'lar r.Context().Value(UserContextKey) ile erişir.
		ctx := context.WithValue(r.Context(), handlers.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
