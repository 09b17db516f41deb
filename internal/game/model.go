package game

import (
	"time"

	"github.com/vertuarena/arena/internal/user"
)

const GameTypeTicTacToe = "tic-tac-toe"

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// Terminal reports whether the game can no longer be played.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusRejected:
		return true
	case StatusPending, StatusActive:
		return false
	}
	return false
}

type Game struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Player1ID uint       `gorm:"not null" json:"player_1_id"`
	Player2ID uint       `gorm:"not null" json:"player_2_id"`
	GameType  string     `gorm:"not null" json:"game_type"`
	Status    Status     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	State     State      `gorm:"type:jsonb" json:"game_state"`
	WinnerID  *uint      `json:"winner_id"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
}

func (g *Game) IsParticipant(userID uint) bool {
	return g.Player1ID == userID || g.Player2ID == userID
}

func (g *Game) OpponentOf(userID uint) uint {
	if g.Player1ID == userID {
		return g.Player2ID
	}
	return g.Player1ID
}

// GameResponse is the wire shape consumed by the frontend.
type GameResponse struct {
	ID        uint          `json:"id"`
	GameState State         `json:"game_state"`
	WinnerID  *uint         `json:"winner_id"`
	Player1ID uint          `json:"player_1_id"`
	Player2ID uint          `json:"player_2_id"`
	Status    Status        `json:"status"`
	Player1   user.Summary  `json:"player1"`
	Player2   user.Summary  `json:"player2"`
	Winner    *user.Summary `json:"winner"`
}

type MoveRequest struct {
	Position int `json:"position"`
}

type RespondRequest struct {
	Accept bool `json:"accept"`
}

type ChallengeRequest struct {
	OpponentID uint `json:"opponent_id"`
}

type AvailabilityResponse struct {
	IsAvailable bool   `json:"is_available"`
	Message     string `json:"message"`
}
