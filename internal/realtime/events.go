package realtime

import (
	"encoding/json"

	"solotrip/internal/models/db_models"
)

const (
	ActionSendComment = "send_comment"

	EventNewComment = "new_comment"
	EventError      = "error"
)

// Inbound is a frame sent by a browser on a trip socket.
type Inbound struct {
	Action string `json:"action"`
	Text   string `json:"text"`
}

// Outbound is a frame pushed to every socket in a trip room.
type Outbound struct {
	Event   string             `json:"event"`
	Comment *db_models.Comment `json:"comment,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// Message is what travels over the bus: an encoded Outbound addressed to a room.
type Message struct {
	Room string          `json:"room"`
	Data json.RawMessage `json:"data"`
}

func encodeOutbound(o Outbound) []byte {
	raw, _ := json.Marshal(o)
	return raw
}
