// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Go'da "struct" bir veri yapısıdır — birden fazla field'ı bir arada tutar.
// Config struct'ı tüm ayarları tek bir yerde toplar, böylece
// her yerde ayrı ayrı os.Getenv() çağırmak yerine tek bir Config nesnesi taşırız.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — Single Responsibility: her struct tek bir concern'ü temsil eder.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	Search   SearchConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/sohbet.db)
}

// JWTConfig, JWT token ayarları.
type JWTConfig struct {
	Secret             string // Token imzalama anahtarı — GİZLİ TUTULMALI
	AccessTokenExpiry  int    // Dakika cinsinden (varsayılan: 15)
	RefreshTokenExpiry int    // Gün cinsinden (varsayılan: 7)
}

// EmailConfig, şifre sıfırlama email'leri için Resend ayarları.
// Üç değer de set edilmemişse email servisi devre dışı kalır —
// forgot-password endpoint'i sessizce no-op olur.
type EmailConfig struct {
	ResendAPIKey string
	FromEmail    string
	AppURL       string
}

// SearchConfig, arama motorunun ayarlanabilir sabitleri.
//
// FuzzyFloor ve FuzzyDiscount kaynak davranıştan kesin olarak
// çıkarılamayan değerlerdir — bu yüzden hardcoded invariant değil,
// config'den gelen tunable'lardır.
type SearchConfig struct {
	FuzzyFloor    float64 // Fuzzy eşleşme benzerlik tabanı, 0..1 (varsayılan: 0.4)
	FuzzyDiscount float64 // Fuzzy-only sonuçların skor çarpanı (varsayılan: 0.8)
	SnippetLen    int     // Snippet karakter limiti (varsayılan: 200)
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
//
// Go'da error handling: Go'da exception/try-catch yoktur.
// Fonksiyonlar hata durumunda (value, error) tuple'ı döner.
// Çağıran taraf her zaman error'ı kontrol ETMEK ZORUNDADIR.
func Load() (*Config, error) {
	// .env dosyasını yükle — dosya yoksa hata vermez, sessizce devam eder.
	// Production'da bu dosya olmaz, gerçek env variable'lar kullanılır.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "9090"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	accessExpiry, err := strconv.Atoi(getEnv("JWT_ACCESS_EXPIRY_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY_MINUTES: %w", err)
	}

	refreshExpiry, err := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRY_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_EXPIRY_DAYS: %w", err)
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	fuzzyFloor, err := strconv.ParseFloat(getEnv("SEARCH_FUZZY_FLOOR", "0.4"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_FUZZY_FLOOR: %w", err)
	}
	if fuzzyFloor < 0 || fuzzyFloor > 1 {
		return nil, fmt.Errorf("SEARCH_FUZZY_FLOOR must be between 0 and 1")
	}

	fuzzyDiscount, err := strconv.ParseFloat(getEnv("SEARCH_FUZZY_DISCOUNT", "0.8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_FUZZY_DISCOUNT: %w", err)
	}
	if fuzzyDiscount <= 0 || fuzzyDiscount > 1 {
		return nil, fmt.Errorf("SEARCH_FUZZY_DISCOUNT must be between 0 (exclusive) and 1")
	}

	snippetLen, err := strconv.Atoi(getEnv("SEARCH_SNIPPET_LEN", "200"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_SNIPPET_LEN: %w", err)
	}
	if snippetLen < 1 {
		return nil, fmt.Errorf("SEARCH_SNIPPET_LEN must be positive")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/sohbet.db"),
		},
		JWT: JWTConfig{
			Secret:             jwtSecret,
			AccessTokenExpiry:  accessExpiry,
			RefreshTokenExpiry: refreshExpiry,
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromEmail:    getEnv("RESEND_FROM", ""),
			AppURL:       getEnv("APP_URL", ""),
		},
		Search: SearchConfig{
			FuzzyFloor:    fuzzyFloor,
			FuzzyDiscount: fuzzyDiscount,
			SnippetLen:    snippetLen,
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:9090").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
