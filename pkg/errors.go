// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Go'da error'lar basit değerlerdir (string taşıyan struct'lar).
// errors.New() ile sabit error değişkenleri tanımlarız.
// Böylece error karşılaştırması string yerine referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
//
// Bu, typo'ya açık string karşılaştırmasından çok daha güvenlidir.
package pkg

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain-level error'lar.
// Handler katmanı bu error'ları HTTP status code'larına map'ler.
// Service katmanı bunları döner, handler yakalar.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrUnavailable   = errors.New("store unavailable") // Veri katmanı ulaşılamaz — retry edilebilir (503)
	ErrInternal      = errors.New("internal error")
)

// ValidationError, alan bazlı validation hatalarını taşır.
//
// Arama endpoint'i gibi çok parametreli endpoint'lerde "hangi alan neden
// geçersiz" bilgisi frontend için önemlidir. Tek bir string mesaj yerine
// field → message map'i döneriz; response katmanı bunu JSON'a yazar.
//
// errors.Is(err, ErrBadRequest) true döner — mevcut status mapping'i
// değişmeden 400 üretir.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError, boş bir ValidationError oluşturur.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add, bir alan hatası ekler. Aynı alana ikinci hata eklenirse ilki korunur.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// HasErrors, en az bir alan hatası olup olmadığını döner.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error, error interface'ini karşılar.
// Alan isimleri alfabetik sıralanır — mesaj deterministik olur (test edilebilirlik).
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var parts []string
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation failed — " + strings.Join(parts, "; ")
}

// Is, errors.Is(err, ErrBadRequest) kontrolünü destekler.
// ValidationError her zaman bir bad request'tir.
func (e *ValidationError) Is(target error) bool {
	return target == ErrBadRequest
}
