// Package relevance, arama sonuçlarının skorlanmasını sağlayan saf
// (pure) fonksiyonları barındırır.
//
// Tasarım kararı: Skorlama SQL içinde CASE ifadeleriyle DEĞİL, burada
// uygulama katmanında yapılır. Store sadece substring ön filtresi yapar.
// Böylece skorlama mantığı canlı veritabanı olmadan unit test edilebilir.
//
// Band (skor bandı) nedir?
// Sürekli bir skor fonksiyonu yerine ayrık relevance katmanları kullanılır:
// tam eşitlik > prefix > suffix > içerme. Her banda sabit bir skor atanır —
// öngörülebilirlik (aynı girdi her zaman aynı skor) sürekli skordan önemlidir.
package relevance

import "strings"

// Sohbet başlığı skor bantları.
//
// BandNone sıfır DEĞİLDİR: store ön filtresinden geçip de (ör. fuzzy
// fallback ile gelen) substring içermeyen adaylar, birleşik listede
// "hiç eşleşmeyen"den üstte sıralanabilsin diye düşük ama pozitif bir
// taban skor taşır. Bu bir hata durumu değil, dokümante edilmiş bir banddır.
const (
	BandEqual    = 100.0 // Başlık sorguya birebir eşit
	BandPrefix   = 80.0  // Başlık sorguyla başlıyor
	BandSuffix   = 60.0  // Başlık sorguyla bitiyor
	BandContains = 40.0  // Sorgu başlığın ortasında geçiyor
	BandNone     = 30.0  // Substring eşleşmesi yok (fuzzy fallback tabanı)
)

// BodyBandOffset, mesaj gövdesi bantlarının başlık bantlarına göre kaydırma miktarı.
//
// Mesaj gövdesinde eşleşme, başlıkta eşleşmeden bir tık daha spesifik kabul
// edilir (+10). İki ölçek birlikte sıralandığı için ayırt edilebilir kalmalı:
// gövde-equal (110) > başlık-equal (100) > gövde-prefix (90) > başlık-prefix (80) ...
const BodyBandOffset = 10.0

// Score, bir sohbet başlığının sorguya göre band skorunu döner.
//
// Her iki string de lowercase'e çevrilir; sorgunun önceden trim edilmiş
// olması beklenir (service katmanı yapar).
//
// Band sıralaması spesifiktir ve değiştirilmemelidir:
// eşitlik → prefix → suffix → içerme → taban.
func Score(label, query string) float64 {
	l := strings.ToLower(label)
	q := strings.ToLower(query)

	switch {
	case l == q:
		return BandEqual
	case strings.HasPrefix(l, q):
		return BandPrefix
	case strings.HasSuffix(l, q):
		return BandSuffix
	case strings.Contains(l, q):
		return BandContains
	default:
		return BandNone
	}
}

// ScoreBody, bir mesaj gövdesinin sorguya göre band skorunu döner.
// Başlık bantlarının +10 kaydırılmış hali — bkz. BodyBandOffset.
func ScoreBody(content, query string) float64 {
	return Score(content, query) + BodyBandOffset
}
