// Package ws, WebSocket bağlantı yönetimi ve gerçek zamanlı event dağıtımını sağlar.
//
// Mimari:
// - Hub: Tüm bağlantıları yöneten merkezi yapı (Observer pattern)
// - Client: Her WebSocket bağlantısını temsil eder
// - Event: Client-server arası iletilen mesaj formatı
//
// Event akışı:
// 1. Kullanıcı sohbet oluşturur / mesaj ekler → HTTP POST → Service → DB kayıt
// 2. Service, Hub'ın BroadcastToUser metodunu çağırır
// 3. Hub, event'i kullanıcının TÜM açık tab'larına iletir
// 4. Her client'ın WritePump'ı event'i WebSocket'e yazar
// 5. Frontend event'i alır, sidebar'daki sohbet listesini günceller
//
// Bu uygulamada her veri tek kullanıcıya aittir — bu yüzden event'ler
// hiçbir zaman başka kullanıcılara broadcast EDİLMEZ, sadece sahibine gider.
// Amaç aynı kullanıcının birden fazla tab'ını senkron tutmaktır.
package ws

// Event, WebSocket üzerinden iletilen bir mesajı temsil eder.
//
// Op (operation): Event türü — "chat_create", "heartbeat" vb.
// Data: Event'e özgü payload — sohbet objesi, mesaj bilgisi vb.
// Seq (sequence number): Her outbound event'e verilen artan sayı.
//   Frontend eksik event tespit etmek için seq'i takip eder.
//   Örnek: seq 5'ten sonra seq 7 gelirse, 6 kaybolmuş demektir.
type Event struct {
	Op   string `json:"op"`
	Data any    `json:"d,omitempty"`
	Seq  int64  `json:"seq,omitempty"`
}

// Client → Server operasyonları
const (
	OpHeartbeat = "heartbeat" // Client her 30sn'de gönderir — "hâlâ bağlıyım" sinyali
)

// Server → Client operasyonları
const (
	OpReady        = "ready"         // Bağlantı kurulduğunda ilk gönderilen
	OpHeartbeatAck = "heartbeat_ack" // Heartbeat'e yanıt — "seni duydum"

	OpChatCreate = "chat_create" // Yeni sohbet açıldı
	OpChatUpdate = "chat_update" // Sohbet yeniden adlandırıldı / koleksiyona taşındı
	OpChatDelete = "chat_delete" // Sohbet silindi

	OpMessageCreate = "message_create" // Sohbete yeni mesaj eklendi
	OpMessageDelete = "message_delete" // Mesaj silindi

	OpCollectionCreate = "collection_create" // Yeni koleksiyon oluşturuldu
	OpCollectionUpdate = "collection_update" // Koleksiyon yeniden adlandırıldı
	OpCollectionDelete = "collection_delete" // Koleksiyon silindi
)

// ReadyData, bağlantı kurulduğunda client'a gönderilen ilk event'in payload'ı.
// Frontend bu event'ten sonra sohbet/koleksiyon listelerini HTTP ile fetch eder.
type ReadyData struct {
	UserID string `json:"user_id"`
}
