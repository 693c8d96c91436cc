// Package repository — PasswordResetRepository interface tanımı.
//
// Şifre sıfırlama token'ları kısa ömürlüdür ve plaintext SAKLANMAZ —
// tabloda sadece SHA256 hash bulunur. Token'ı bilen, hash'leyip arar.
package repository

import (
	"context"

	"github.com/akinalp/sohbet/models"
)

// PasswordResetRepository, password reset token veritabanı işlemleri için interface.
type PasswordResetRepository interface {
	// Create, yeni bir reset token kaydı oluşturur.
	Create(ctx context.Context, token *models.PasswordResetToken) error

	// GetByTokenHash, SHA256 hash'e göre token kaydını bulur.
	// Bulunamazsa pkg.ErrNotFound döner.
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error)

	// DeleteByID, tek bir token kaydını siler (başarılı reset sonrası).
	DeleteByID(ctx context.Context, id string) error

	// DeleteByUserID, bir kullanıcının TÜM reset token'larını siler.
	// Yeni token oluşturmadan önce eskileri temizlemek için.
	DeleteByUserID(ctx context.Context, userID string) error

	// DeleteExpired, süresi dolmuş tüm token'ları temizler.
	// Her reset isteğinde "fırsat temizliği" olarak çağrılır —
	// ayrı bir cron job'a gerek kalmaz.
	DeleteExpired(ctx context.Context) error
}
