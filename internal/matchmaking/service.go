package matchmaking

import (
	"time"

	"github.com/vertuarena/arena/internal/apperrors"
	"github.com/vertuarena/arena/internal/game"
)

// RankProvider snapshots a player's current rank when they queue.
type RankProvider interface {
	RankFor(userID uint) (int, error)
}

// GameCreator instantiates the active game for a successful pairing.
type GameCreator interface {
	CreateMatch(player1ID, player2ID uint, gameType string) (*game.GameResponse, error)
}

type MatchmakingService struct {
	repo  QueueRepository
	ranks RankProvider
	games GameCreator
	now   func() time.Time
}

func NewMatchmakingService(repo QueueRepository, ranks RankProvider, games GameCreator) *MatchmakingService {
	return &MatchmakingService{
		repo:  repo,
		ranks: ranks,
		games: games,
		now:   time.Now,
	}
}

// JoinQueue replaces any standing entry for the user and immediately tries to
// pair them.
func (s *MatchmakingService) JoinQueue(userID uint, gameType string) (*QueueStatus, error) {
	if gameType == "" || len(gameType) > 50 {
		return nil, apperrors.NewAppError(400, "game_type is required", nil)
	}

	if err := s.repo.DeleteEntriesFor(userID); err != nil {
		return nil, err
	}

	rank, err := s.ranks.RankFor(userID)
	if err != nil {
		return nil, err
	}

	entry := &QueueEntry{
		UserID:   userID,
		GameType: gameType,
		Rank:     rank,
		QueuedAt: s.now(),
	}
	if err := s.repo.CreateEntry(entry); err != nil {
		return nil, err
	}

	return s.findMatch(entry)
}

// CheckStatus polls for a match without re-joining.
func (s *MatchmakingService) CheckStatus(userID uint) (*QueueStatus, error) {
	entry, err := s.repo.GetEntry(userID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return &QueueStatus{Status: StatusNotQueued}, nil
	}
	return s.findMatch(entry)
}

func (s *MatchmakingService) LeaveQueue(userID uint) error {
	return s.repo.DeleteEntriesFor(userID)
}

func (s *MatchmakingService) findMatch(entry *QueueEntry) (*QueueStatus, error) {
	opponent, err := s.repo.FindOpponent(entry, rankWindow)
	if err != nil {
		return nil, err
	}
	if opponent == nil {
		return &QueueStatus{Status: StatusQueued, QueueEntry: entry}, nil
	}

	matched, err := s.games.CreateMatch(entry.UserID, opponent.UserID, entry.GameType)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RemoveMatched([]uint{entry.UserID, opponent.UserID}); err != nil {
		return nil, err
	}

	return &QueueStatus{Status: StatusMatched, Game: matched}, nil
}
