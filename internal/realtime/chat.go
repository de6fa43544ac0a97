package realtime

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// ChatMessage is the support chat wire format. Sender is whatever display
// name the visitor typed; there is no account binding.
type ChatMessage struct {
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatHub returns a hub that rebroadcasts every inbound chat message to
// all connected clients.
func NewChatHub() *Hub {
	h := NewHub()
	h.OnMessage = func(h *Hub, data []byte) {
		var msg ChatMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			zap.L().Warn("Dropping malformed chat message", zap.Error(err))
			return
		}
		if msg.Timestamp.IsZero() {
			msg.Timestamp = time.Now()
		}
		h.Broadcast(msg)
	}
	return h
}
