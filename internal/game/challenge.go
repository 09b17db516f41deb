package game

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vertuarena/arena/internal/apperrors"
	"github.com/vertuarena/arena/internal/user"
)

// RequestMatch challenges an available opponent directly, bypassing the
// queue. The game starts pending; the board becomes playable on accept.
func (s *GameService) RequestMatch(challengerID, opponentID uint) (*GameResponse, error) {
	if challengerID == opponentID {
		return nil, apperrors.NewAppError(400, "You cannot challenge yourself", nil)
	}

	opponent, err := s.users.GetUser(opponentID)
	if err != nil {
		return nil, err
	}
	if opponent == nil {
		return nil, apperrors.NewAppError(404, "Player not found", errors.New("the challenged player does not exist"))
	}
	if !opponent.IsAvailable {
		return nil, apperrors.NewAppError(400, "Player is no longer available", nil)
	}

	state := NewState(challengerID, opponentID)
	state.Challenge = &Challenge{
		ChallengerID: challengerID,
		ChallengedID: opponentID,
		Status:       "pending",
	}

	g := &Game{
		Player1ID: challengerID,
		Player2ID: opponentID,
		GameType:  GameTypeTicTacToe,
		Status:    StatusPending,
		State:     state,
		StartedAt: s.now(),
	}
	if err := s.repo.CreateGame(g); err != nil {
		return nil, err
	}

	resp := s.response(g)
	s.publishGame(g, resp)
	return resp, nil
}

// RespondToChallenge lets the challenged player accept or reject a pending
// game. Only player 2 may respond.
func (s *GameService) RespondToChallenge(gameID, responderID uint, accept bool) (*GameResponse, error) {
	g, err := s.repo.MutateGame(gameID, func(tx *gorm.DB, g *Game) error {
		if g.Player2ID != responderID {
			return apperrors.NewAppError(403, "Unauthorized", errors.New("only the challenged player can respond"))
		}
		if g.Status != StatusPending {
			return apperrors.NewAppError(400, "Invalid game state", errors.New("game must be in pending state"))
		}

		if accept {
			g.Status = StatusActive
			g.StartedAt = s.now()
			g.State = NewState(g.Player1ID, g.Player2ID)
		} else {
			g.Status = StatusRejected
			g.State = State{
				Rejection: &Rejection{
					RejectedBy: responderID,
					RejectedAt: s.now(),
				},
			}
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

// CreateMatch instantiates an active game for a matchmaking pairing.
func (s *GameService) CreateMatch(player1ID, player2ID uint, gameType string) (*GameResponse, error) {
	g := &Game{
		Player1ID: player1ID,
		Player2ID: player2ID,
		GameType:  gameType,
		Status:    StatusActive,
		State:     NewState(player1ID, player2ID),
		StartedAt: s.now(),
	}
	if err := s.repo.CreateGame(g); err != nil {
		return nil, err
	}

	resp := s.response(g)
	s.publishGame(g, resp)
	return resp, nil
}

// ToggleAvailability flips the caller's availability flag. Turning
// unavailable cancels any of their games still waiting on a response.
func (s *GameService) ToggleAvailability(userID uint) (*AvailabilityResponse, error) {
	u, err := s.users.ToggleAvailability(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewAppError(404, "user not found", nil)
	}

	if !u.IsAvailable {
		if err := s.repo.DeletePendingFor(userID); err != nil {
			return nil, err
		}
	}

	message := "You are no longer available for games"
	if u.IsAvailable {
		message = "You are now available for games"
	}
	return &AvailabilityResponse{IsAvailable: u.IsAvailable, Message: message}, nil
}

func (s *GameService) AvailablePlayers(userID uint) ([]user.User, error) {
	return s.users.AvailablePlayers(userID)
}

func (s *GameService) PendingChallenges(userID uint) ([]*GameResponse, error) {
	games, err := s.repo.PendingChallengesFor(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*GameResponse, 0, len(games))
	for i := range games {
		responses = append(responses, s.response(&games[i]))
	}
	return responses, nil
}
