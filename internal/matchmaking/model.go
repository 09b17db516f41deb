package matchmaking

import (
	"time"

	"github.com/vertuarena/arena/internal/game"
)

// rankWindow is the widest rank gap matchmaking will pair across.
const rankWindow = 100

type QueueEntry struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	GameType string    `gorm:"not null" json:"game_type"`
	Rank     int       `json:"rank"`
	QueuedAt time.Time `json:"queued_at"`
}

func (QueueEntry) TableName() string {
	return "matchmaking_queue"
}

type JoinRequest struct {
	GameType string `json:"game_type"`
}

const (
	StatusMatched   = "matched"
	StatusQueued    = "queued"
	StatusNotQueued = "not_queued"
)

type QueueStatus struct {
	Status     string             `json:"status"`
	Game       *game.GameResponse `json:"game,omitempty"`
	QueueEntry *QueueEntry        `json:"queue_entry,omitempty"`
}
