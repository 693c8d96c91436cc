package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Band skorları spesifik ve sabittir — her band için birebir değer test edilir.
func TestScore_Bands(t *testing.T) {
	tests := []struct {
		name  string
		label string
		query string
		want  float64
	}{
		{"exact equality", "project alpha", "project alpha", BandEqual},
		{"equality is case-insensitive", "Project Alpha", "project alpha", BandEqual},
		{"prefix match", "alpha notes", "alpha", BandPrefix},
		{"suffix match", "project alpha", "alpha", BandSuffix},
		{"contains in the middle", "my alpha notes", "alpha", BandContains},
		{"no containment falls to base band", "beta stuff", "alpha", BandNone},
		{"query casing ignored", "Alpha Notes", "ALPHA", BandPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.label, tt.query))
		})
	}
}

// Prefix bandı suffix'ten önce kontrol edilir: hem başlayıp hem biten
// ("alpha" içinde "alpha" değil ama ör. "abcabc" / "abc") prefix sayılır.
func TestScore_PrefixWinsOverSuffix(t *testing.T) {
	assert.Equal(t, BandPrefix, Score("abcabc", "abc"))
}

func TestScoreBody_ShiftedBands(t *testing.T) {
	assert.Equal(t, BandEqual+BodyBandOffset, ScoreBody("hello", "hello"))
	assert.Equal(t, BandPrefix+BodyBandOffset, ScoreBody("hello world", "hello"))
	assert.Equal(t, BandSuffix+BodyBandOffset, ScoreBody("say hello", "hello"))
	assert.Equal(t, BandContains+BodyBandOffset, ScoreBody("oh hello there", "hello"))
	assert.Equal(t, BandNone+BodyBandOffset, ScoreBody("goodbye", "hello"))
}

// İki ölçek birleşik listede ayırt edilebilir kalmalı:
// gövde bantları başlık bantlarının arasına yerleşir, üstüne binmez.
func TestScales_Interleave(t *testing.T) {
	assert.Greater(t, ScoreBody("x", "x"), Score("x", "x"))
	assert.Greater(t, Score("x", "x"), ScoreBody("xy", "x"))
	assert.Greater(t, ScoreBody("xy", "x"), Score("xy", "x"))
}

func TestFuzzyMatch_ToleratesTypos(t *testing.T) {
	candidates := []Candidate{
		{ID: "1", Label: "meeting notes"},
		{ID: "2", Label: "grocery list"},
	}

	// "meetng" → "meeting" tek harf eksik; benzerlik yüksek kalmalı.
	matches := FuzzyMatch(candidates, "meetng notes", 0.4)
	assert.NotEmpty(t, matches)
	assert.Equal(t, "1", matches[0].ID)
	assert.GreaterOrEqual(t, matches[0].Similarity, 0.8)
}

func TestFuzzyMatch_Transposition(t *testing.T) {
	candidates := []Candidate{{ID: "1", Label: "email"}}

	// Damerau-Levenshtein transpozisyonu tek edit sayar: "emial" yakın kalır.
	matches := FuzzyMatch(candidates, "emial", 0.4)
	assert.Len(t, matches, 1)
	assert.GreaterOrEqual(t, matches[0].Similarity, 0.7)
}

func TestFuzzyMatch_FloorFiltersGarbage(t *testing.T) {
	candidates := []Candidate{
		{ID: "1", Label: "zzzzzzzzzz"},
		{ID: "2", Label: "alpha"},
	}

	matches := FuzzyMatch(candidates, "alpha", 0.4)
	assert.Len(t, matches, 1)
	assert.Equal(t, "2", matches[0].ID)
}

func TestFuzzyMatch_SimilarityDescending(t *testing.T) {
	candidates := []Candidate{
		{ID: "far", Label: "alphabet soup"},
		{ID: "near", Label: "alpha"},
	}

	matches := FuzzyMatch(candidates, "alpha", 0.1)
	if assert.Len(t, matches, 2) {
		assert.Equal(t, "near", matches[0].ID)
		assert.GreaterOrEqual(t, matches[0].Similarity, matches[1].Similarity)
	}
}

func TestFuzzyMatch_EmptyCandidates(t *testing.T) {
	assert.Empty(t, FuzzyMatch(nil, "alpha", 0.4))
}
