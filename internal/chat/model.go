package chat

import (
	"time"

	"github.com/vertuarena/arena/internal/user"
)

const maxMessageLength = 500

type ChatMessage struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	GameID  uint      `gorm:"index;not null" json:"game_id"`
	UserID  uint      `gorm:"not null" json:"user_id"`
	Message string    `gorm:"size:500;not null" json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

type MessageResponse struct {
	ID      uint         `json:"id"`
	GameID  uint         `json:"game_id"`
	Message string       `json:"message"`
	SentAt  time.Time    `json:"sent_at"`
	User    user.Summary `json:"user"`
}

type SendRequest struct {
	Message string `json:"message"`
}
