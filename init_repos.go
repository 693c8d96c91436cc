// Package main — Repository katmanı başlatma.
//
// initRepositories, tüm repository implementasyonlarını oluşturur.
// Her repository bir SQL.DB bağlantısı alır ve interface döner.
// main.go'daki wire-up'ı modülerleştirmek için bu dosyaya taşındı.
package main

import (
	"database/sql"

	"github.com/akinalp/sohbet/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
//
// Neden struct? Ayrı ayrı repository değişkenleri yerine tek struct kullanmak:
// 1. Fonksiyon imzalarını temiz tutar
// 2. Yeni repository eklendiğinde sadece struct + initRepositories güncellenir
// 3. IDE auto-complete ile kolay erişim (repos.User, repos.Chat, vb.)
type Repositories struct {
	User       repository.UserRepository
	Session    repository.SessionRepository
	ResetToken repository.PasswordResetRepository
	Chat       repository.ChatRepository
	Collection repository.CollectionRepository
	Message    repository.MessageRepository
	Search     repository.SearchRepository
}

// initRepositories, veritabanı bağlantısından tüm repository'leri oluşturur.
//
// Her NewSQLite* fonksiyonu aynı *sql.DB'yi alır — Go'nun sql.DB'si
// thread-safe connection pool'dur, paylaşılması güvenlidir.
func initRepositories(conn *sql.DB) *Repositories {
	return &Repositories{
		User:       repository.NewSQLiteUserRepo(conn),
		Session:    repository.NewSQLiteSessionRepo(conn),
		ResetToken: repository.NewSQLiteResetTokenRepo(conn),
		Chat:       repository.NewSQLiteChatRepo(conn),
		Collection: repository.NewSQLiteCollectionRepo(conn),
		Message:    repository.NewSQLiteMessageRepo(conn),
		Search:     repository.NewSQLiteSearchRepo(conn),
	}
}
