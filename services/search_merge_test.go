package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/akinalp/sohbet/models"
)

func TestSnippet_ShortContentUntouched(t *testing.T) {
	assert.Equal(t, "hello", snippet("hello", 200))
}

func TestSnippet_TruncatesWithEllipsis(t *testing.T) {
	content := strings.Repeat("x", 250)
	got := snippet(content, 200)

	assert.Len(t, []rune(got), 203)
	assert.True(t, strings.HasSuffix(got, "..."))
}

// Kırpma byte değil rune bazlı olmalı — multi-byte karakterin ortasından
// kesmek bozuk UTF-8 üretirdi.
func TestSnippet_RuneSafeTruncation(t *testing.T) {
	content := strings.Repeat("ğ", 10)
	got := snippet(content, 5)

	assert.Equal(t, strings.Repeat("ğ", 5)+"...", got)
}

func TestSnippet_ExactBoundaryNotTruncated(t *testing.T) {
	content := strings.Repeat("a", 200)
	assert.Equal(t, content, snippet(content, 200))
}

func TestMergeResults_PreservesAllEntries(t *testing.T) {
	a := []models.SearchResult{{ID: "1"}, {ID: "2"}}
	b := []models.SearchResult{{ID: "3"}}

	merged := mergeResults(a, b)

	assert.Len(t, merged, 3)
}

func TestSortResults_ScoreThenRecencyThenID(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	older := now.Add(-time.Hour)

	results := []models.SearchResult{
		{ID: "d", Score: 40, CreatedAt: older},
		{ID: "b", Score: 80, CreatedAt: older},
		{ID: "c", Score: 80, CreatedAt: older}, // b ile skor ve zaman eşit → ID
		{ID: "a", Score: 80, CreatedAt: now},   // aynı skor, daha yeni → önce
	}

	sortResults(results)

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

// UpdatedAt set edilmişse recency kıyası onun üzerinden yapılır.
func TestSortResults_UpdatedAtBeatsCreatedAt(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	recent := now.Add(time.Hour)

	results := []models.SearchResult{
		{ID: "created-newer", Score: 80, CreatedAt: now},
		{ID: "updated-newer", Score: 80, CreatedAt: now.Add(-24 * time.Hour), UpdatedAt: &recent},
	}

	sortResults(results)

	assert.Equal(t, "updated-newer", results[0].ID)
}

func TestPaginate_WindowBeyondListReturnsEmptyNotNil(t *testing.T) {
	results := []models.SearchResult{{ID: "1"}}

	got := paginate(results, 10, 5)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPaginate_PartialTail(t *testing.T) {
	results := []models.SearchResult{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	got := paginate(results, 2, 2)

	assert.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}
