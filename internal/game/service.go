package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/vertuarena/arena/internal/apperrors"
	"github.com/vertuarena/arena/internal/notify"
	"github.com/vertuarena/arena/internal/stats"
	"github.com/vertuarena/arena/internal/user"
)

// StatsApplier records a completed game for both participants inside the
// move's transaction. ClearLastGame releases the per-game duplicate marker
// when a board is reset, since a restarted game reuses its row id.
type StatsApplier interface {
	ApplyGameResult(tx *gorm.DB, r stats.GameResult) error
	ClearLastGame(tx *gorm.DB, gameID uint, playerIDs ...uint) error
}

type GameService struct {
	repo      GameRepository
	users     user.UserRepository
	stats     StatsApplier
	publisher notify.Publisher
	now       func() time.Time
}

func NewGameService(repo GameRepository, users user.UserRepository, statsApplier StatsApplier, publisher notify.Publisher) *GameService {
	return &GameService{
		repo:      repo,
		users:     users,
		stats:     statsApplier,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *GameService) GetGame(gameID, userID uint) (*GameResponse, error) {
	g, err := s.repo.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	if !g.IsParticipant(userID) {
		return nil, apperrors.NewAppError(403, "Unauthorized", errors.New("only players in the game can view it"))
	}
	return s.response(g), nil
}

// MakeMove places the acting player's symbol, then checks win, then draw,
// then flips the turn. The whole read-validate-write sequence holds the game
// row lock so two concurrent moves cannot both pass validation.
func (s *GameService) MakeMove(gameID, userID uint, position int) (*GameResponse, error) {
	g, err := s.repo.MutateGame(gameID, func(tx *gorm.DB, g *Game) error {
		if g.State.IsZero() {
			// Freshly created game that never got a board: heal it once.
			g.State = NewState(g.Player1ID, g.Player2ID)
		}
		if err := g.State.Validate(g.Player1ID, g.Player2ID); err != nil {
			return apperrors.NewAppError(400, "Invalid game state", err)
		}
		if g.Status != StatusActive {
			return apperrors.NewAppError(400, "Game is not active", fmt.Errorf("current game status: %s", g.Status))
		}
		if !g.IsParticipant(userID) {
			return apperrors.NewAppError(403, "You are not part of this game", errors.New("only players in the game can make moves"))
		}
		if position < 0 || position > 8 {
			return apperrors.NewAppError(400, "Invalid position", errors.New("position must be between 0 and 8"))
		}
		if g.State.Board[position] != Empty {
			return apperrors.NewAppError(400, "Position already taken", errors.New("please choose an empty position"))
		}
		if g.State.CurrentTurn != userID {
			return apperrors.NewAppError(403, "Not your turn", errors.New("please wait for your turn"))
		}

		symbol := g.State.Players[userID]
		g.State.Board[position] = symbol
		move := Move{
			Position:  position,
			Symbol:    symbol,
			PlayerID:  userID,
			Timestamp: s.now(),
		}
		g.State.Moves = append(g.State.Moves, move)
		g.State.LastMove = &move

		if winner, line := g.State.Board.Winner(); winner != Empty {
			winnerID := userID
			g.State.WinningLine = line
			g.Status = StatusCompleted
			g.WinnerID = &winnerID
			ended := s.now()
			g.EndedAt = &ended
			s.applyStats(tx, g)
		} else if g.State.Board.Full() {
			g.Status = StatusCompleted
			ended := s.now()
			g.EndedAt = &ended
			s.applyStats(tx, g)
		} else {
			g.State.CurrentTurn = g.OpponentOf(userID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := s.response(g)
	s.publishGame(g, resp)
	return resp, nil
}

// Restart resets an active or completed game to a fresh board on the same
// row. Either participant may do this unilaterally.
func (s *GameService) Restart(gameID, userID uint) (*GameResponse, error) {
	g, err := s.repo.MutateGame(gameID, func(tx *gorm.DB, g *Game) error {
		if !g.IsParticipant(userID) {
			return apperrors.NewAppError(403, "Unauthorized", errors.New("only players in the game can restart it"))
		}
		if g.Status != StatusActive && g.Status != StatusCompleted {
			return apperrors.NewAppError(400, "Game cannot be restarted", fmt.Errorf("current game status: %s", g.Status))
		}
		s.resetBoard(tx, g)
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := s.response(g)
	s.publishGame(g, resp)
	return resp, nil
}

func (s *GameService) RequestRestart(gameID, userID uint) (*GameResponse, error) {
	g, err := s.repo.MutateGame(gameID, func(tx *gorm.DB, g *Game) error {
		if !g.IsParticipant(userID) {
			return apperrors.NewAppError(403, "Unauthorized", errors.New("only players in the game can request a restart"))
		}
		g.State.RestartRequest = &RestartRequest{
			RequestedBy: userID,
			RequestedAt: s.now(),
			Status:      "pending",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := s.response(g)
	s.publishGame(g, resp)
	return resp, nil
}

// RespondToRestart accepts or declines a pending restart request. Declining
// force-completes the game, matching the frontend's expectation that a
// declined rematch ends the session for good.
func (s *GameService) RespondToRestart(gameID, userID uint, accept bool) (*GameResponse, error) {
	g, err := s.repo.MutateGame(gameID, func(tx *gorm.DB, g *Game) error {
		if !g.IsParticipant(userID) {
			return apperrors.NewAppError(403, "Unauthorized", errors.New("only players in the game can respond"))
		}
		req := g.State.RestartRequest
		if req == nil || req.Status != "pending" || req.RequestedBy == userID {
			return apperrors.NewAppError(400, "No pending restart request", nil)
		}

		if accept {
			s.resetBoard(tx, g)
		} else {
			g.State.RestartRequest = nil
			g.Status = StatusCompleted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := s.response(g)
	s.publishGame(g, resp)
	return resp, nil
}

func (s *GameService) resetBoard(tx *gorm.DB, g *Game) {
	g.State = NewState(g.Player1ID, g.Player2ID)
	g.Status = StatusActive
	g.WinnerID = nil
	g.EndedAt = nil
	g.StartedAt = s.now()

	if s.stats == nil {
		return
	}
	// The rematch on this row must be countable again.
	if err := s.stats.ClearLastGame(tx, g.ID, g.Player1ID, g.Player2ID); err != nil {
		log.Println("Error clearing last game marker:", err)
	}
}

func (s *GameService) applyStats(tx *gorm.DB, g *Game) {
	if s.stats == nil {
		return
	}
	result := stats.GameResult{
		GameID:    g.ID,
		Player1ID: g.Player1ID,
		Player2ID: g.Player2ID,
		WinnerID:  g.WinnerID,
	}
	// Best-effort: a stats failure must not take down the committed move.
	if err := s.stats.ApplyGameResult(tx, result); err != nil {
		log.Println("Error updating player stats:", err)
	}
}

func (s *GameService) response(g *Game) *GameResponse {
	resp := &GameResponse{
		ID:        g.ID,
		GameState: g.State,
		WinnerID:  g.WinnerID,
		Player1ID: g.Player1ID,
		Player2ID: g.Player2ID,
		Status:    g.Status,
		Player1:   s.summaryOf(g.Player1ID),
		Player2:   s.summaryOf(g.Player2ID),
	}
	if g.WinnerID != nil {
		winner := s.summaryOf(*g.WinnerID)
		resp.Winner = &winner
	}
	return resp
}

func (s *GameService) summaryOf(userID uint) user.Summary {
	username, err := s.users.GetUserUsername(userID)
	if err != nil {
		log.Println("Error loading username for", userID, ":", err)
	}
	return user.Summary{ID: userID, Username: username}
}

func (s *GameService) publishGame(g *Game, resp *GameResponse) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(notify.Event{
		Channel: fmt.Sprintf("game.%d", g.ID),
		Type:    "GAME_UPDATED",
		Users:   []uint{g.Player1ID, g.Player2ID},
		Payload: resp,
	})
}
