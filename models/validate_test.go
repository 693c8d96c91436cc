package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr bool
	}{
		{"valid minimal", CreateUserRequest{Username: "ayse", Password: "password123"}, false},
		{"valid with email", CreateUserRequest{Username: "ayse_k", Password: "password123", Email: "ayse@example.com"}, false},
		{"username too short", CreateUserRequest{Username: "ab", Password: "password123"}, true},
		{"username invalid chars", CreateUserRequest{Username: "ayşe!", Password: "password123"}, true},
		{"password too short", CreateUserRequest{Username: "ayse", Password: "short"}, true},
		{"bad email format", CreateUserRequest{Username: "ayse", Password: "password123", Email: "not-an-email"}, true},
		{"display name too long", CreateUserRequest{Username: "ayse", Password: "password123", DisplayName: strings.Repeat("x", 33)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChat_DisplayTitle(t *testing.T) {
	titled := "Weekend plans"
	blank := "   "

	assert.Equal(t, "Weekend plans", (&Chat{Title: &titled}).DisplayTitle())
	assert.Equal(t, UntitledChatTitle, (&Chat{Title: nil}).DisplayTitle())
	assert.Equal(t, UntitledChatTitle, (&Chat{Title: &blank}).DisplayTitle())
}

func TestCreateChatRequest_Validate(t *testing.T) {
	ok := CreateChatRequest{Title: "  hello  "}
	require.NoError(t, ok.Validate())
	assert.Equal(t, "hello", ok.Title) // trim edilir

	empty := CreateChatRequest{}
	assert.NoError(t, empty.Validate()) // başlıksız sohbet geçerli

	long := CreateChatRequest{Title: strings.Repeat("x", 201)}
	assert.Error(t, long.Validate())
}

func TestCreateMessageRequest_Validate(t *testing.T) {
	defaulted := CreateMessageRequest{Content: "hi"}
	require.NoError(t, defaulted.Validate())
	assert.Equal(t, RoleUser, defaulted.Role) // role boşsa "user" varsayılır

	assistant := CreateMessageRequest{Role: RoleAssistant, Content: "hi"}
	assert.NoError(t, assistant.Validate())

	badRole := CreateMessageRequest{Role: "robot", Content: "hi"}
	assert.Error(t, badRole.Validate())

	empty := CreateMessageRequest{Content: "   "}
	assert.Error(t, empty.Validate())

	long := CreateMessageRequest{Content: strings.Repeat("x", 8001)}
	assert.Error(t, long.Validate())
}

func TestCollectionRequests_Validate(t *testing.T) {
	create := CreateCollectionRequest{Name: "  Work  "}
	require.NoError(t, create.Validate())
	assert.Equal(t, "Work", create.Name)

	assert.Error(t, (&CreateCollectionRequest{Name: "   "}).Validate())
	assert.Error(t, (&CreateCollectionRequest{Name: strings.Repeat("x", 101)}).Validate())

	assert.NoError(t, (&UpdateCollectionRequest{Name: "Renamed"}).Validate())
	assert.Error(t, (&UpdateCollectionRequest{Name: ""}).Validate())
}

func TestSearchType_Valid(t *testing.T) {
	assert.True(t, SearchTypeAll.Valid())
	assert.True(t, SearchTypeChats.Valid())
	assert.True(t, SearchTypeMessages.Valid())
	assert.False(t, SearchType("everything").Valid())
	assert.False(t, SearchType("").Valid())
}

func TestSearchResult_SortKey(t *testing.T) {
	created := mustParse(t, "2026-01-01T10:00:00Z")
	updated := mustParse(t, "2026-01-02T10:00:00Z")

	withUpdate := SearchResult{CreatedAt: created, UpdatedAt: &updated}
	assert.Equal(t, updated, withUpdate.SortKey())

	withoutUpdate := SearchResult{CreatedAt: created}
	assert.Equal(t, created, withoutUpdate.SortKey())
}
