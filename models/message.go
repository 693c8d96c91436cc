package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MessageRole, mesajın kimden geldiğini belirtir.
// Go'da enum yoktur, bunun yerine typed constant'lar kullanılır.
type MessageRole string

// İzin verilen MessageRole değerleri.
//
// RoleSystem mesajları prompt altyapısına aittir — kullanıcıya
// gösterilmez ve aramaya ASLA dahil edilmez.
const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// Valid, rolün bilinen değerlerden biri olup olmadığını kontrol eder.
func (r MessageRole) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// Message, bir sohbet mesajını temsil eder.
// DB'deki "messages" tablosunun Go karşılığı.
type Message struct {
	ID        string      `json:"id"`
	ChatID    string      `json:"chat_id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}

// MessagePage, offset tabanlı pagination (sayfalama) sonucu.
type MessagePage struct {
	Messages []Message `json:"messages"`
	HasMore  bool      `json:"has_more"` // Sonraki sayfa var mı?
}

// CreateMessageRequest, sohbete yeni mesaj ekleme isteği.
//
// Role boş gelirse "user" varsayılır — frontend kullanıcı mesajlarında
// role göndermez, assistant/system mesajlarını ise açıkça işaretler.
type CreateMessageRequest struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// Validate, CreateMessageRequest'in geçerli olup olmadığını kontrol eder.
// İçerik 1-8000 karakter arası olmalı (AI yanıtları uzun olabilir).
func (r *CreateMessageRequest) Validate() error {
	if r.Role == "" {
		r.Role = RoleUser
	}
	if !r.Role.Valid() {
		return fmt.Errorf("role must be one of: user, assistant, system")
	}

	r.Content = strings.TrimSpace(r.Content)
	contentLen := utf8.RuneCountInString(r.Content)
	if contentLen < 1 {
		return fmt.Errorf("message content is required")
	}
	if contentLen > 8000 {
		return fmt.Errorf("message content must be at most 8000 characters")
	}
	return nil
}
