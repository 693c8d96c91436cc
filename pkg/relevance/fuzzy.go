package relevance

import (
	"sort"
	"strings"

	edlib "github.com/hbollon/go-edlib"
)

// Candidate, fuzzy eşleştirmeye giren bir aday (id + etiket).
type Candidate struct {
	ID    string
	Label string
}

// Match, floor'u geçen bir fuzzy eşleşme.
// Similarity 0..1 aralığındadır, 1 = birebir aynı.
type Match struct {
	ID         string
	Label      string
	Similarity float64
}

// FuzzyMatch, adayları sorguya göre edit-distance benzerliğiyle skorlar.
//
// Damerau-Levenshtein kullanılır — klasik Levenshtein'dan farkı
// transpozisyonları (harf yer değişimi: "emial" → "email") tek edit sayması.
// Yazım hatası toleransı için arama kutusunda en sık görülen hata tipi budur.
//
// floor altında kalan adaylar elenır; dönen liste benzerlik azalan sıradadır.
// Eşit benzerlikte orijinal aday sırası korunur (stable sort) — determinizm.
//
// edlib.StringsSimilarity bozuk algoritma parametresinde error döner;
// DamerauLevenshtein sabit olduğu için pratikte oluşmaz, oluşursa aday atlanır.
func FuzzyMatch(candidates []Candidate, query string, floor float64) []Match {
	q := strings.ToLower(query)

	var matches []Match
	for _, c := range candidates {
		sim, err := edlib.StringsSimilarity(q, strings.ToLower(c.Label), edlib.DamerauLevenshtein)
		if err != nil {
			continue
		}

		if float64(sim) >= floor {
			matches = append(matches, Match{
				ID:         c.ID,
				Label:      c.Label,
				Similarity: float64(sim),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	return matches
}
