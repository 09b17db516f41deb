package game

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type Move struct {
	Position  int       `json:"position"`
	Symbol    Cell      `json:"symbol"`
	PlayerID  uint      `json:"player_id"`
	Timestamp time.Time `json:"timestamp"`
}

type RestartRequest struct {
	RequestedBy uint      `json:"requested_by"`
	RequestedAt time.Time `json:"requested_at"`
	Status      string    `json:"status"`
}

type Challenge struct {
	ChallengerID uint   `json:"challenger_id"`
	ChallengedID uint   `json:"challenged_id"`
	Status       string `json:"status"`
}

type Rejection struct {
	RejectedBy uint      `json:"rejected_by"`
	RejectedAt time.Time `json:"rejected_at"`
}

// State is the structured game payload stored as a jsonb column. Rejected
// games carry only the rejection record; everything else keeps a full board.
type State struct {
	Board          Board           `json:"board"`
	CurrentTurn    uint            `json:"current_turn"`
	Players        map[uint]Cell   `json:"players,omitempty"`
	Moves          []Move          `json:"moves,omitempty"`
	LastMove       *Move           `json:"last_move,omitempty"`
	WinningLine    *Line           `json:"winning_line,omitempty"`
	RestartRequest *RestartRequest `json:"restart_request,omitempty"`
	Challenge      *Challenge      `json:"challenge,omitempty"`
	Rejection      *Rejection      `json:"rejection,omitempty"`
}

// NewState is the fresh-board state: player 1 is X and opens the game.
func NewState(player1ID, player2ID uint) State {
	return State{
		Board:       Board{},
		CurrentTurn: player1ID,
		Players: map[uint]Cell{
			player1ID: X,
			player2ID: O,
		},
		Moves: []Move{},
	}
}

// IsZero reports a state that was never initialized with a board, the one
// case MakeMove is allowed to self-heal.
func (s *State) IsZero() bool {
	return s.CurrentTurn == 0 && len(s.Players) == 0 && len(s.Moves) == 0
}

// Validate fails fast on corrupt playable state instead of reinitializing it.
func (s *State) Validate(player1ID, player2ID uint) error {
	for i, c := range s.Board {
		if !c.Valid() {
			return fmt.Errorf("board cell %d holds invalid symbol %q", i, string(c))
		}
	}
	if s.CurrentTurn != player1ID && s.CurrentTurn != player2ID {
		return fmt.Errorf("current_turn %d is not a participant", s.CurrentTurn)
	}
	if len(s.Players) != 2 {
		return errors.New("players mapping is missing")
	}
	for _, id := range []uint{player1ID, player2ID} {
		if sym, ok := s.Players[id]; !ok || sym == Empty {
			return fmt.Errorf("player %d has no symbol assigned", id)
		}
	}
	return nil
}

func (s State) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *State) Scan(value interface{}) error {
	if value == nil {
		*s = State{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported game state column type %T", value)
	}

	if len(data) == 0 {
		*s = State{}
		return nil
	}
	return json.Unmarshal(data, s)
}
