package message

import (
	"encoding/json"
)

type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type ChatPayload struct {
	GameID  uint   `json:"game_id"`
	Message string `json:"message"`
}

type PingPayload struct {
	SentAt int64 `json:"sent_at"`
}
