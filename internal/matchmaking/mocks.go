package matchmaking

import (
	"github.com/stretchr/testify/mock"

	"github.com/vertuarena/arena/internal/game"
)

type QueueRepositoryMock struct {
	mock.Mock
}

func (m *QueueRepositoryMock) DeleteEntriesFor(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *QueueRepositoryMock) CreateEntry(e *QueueEntry) error {
	args := m.Called(e)
	return args.Error(0)
}

func (m *QueueRepositoryMock) GetEntry(userID uint) (*QueueEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*QueueEntry), args.Error(1)
}

func (m *QueueRepositoryMock) FindOpponent(e *QueueEntry, window int) (*QueueEntry, error) {
	args := m.Called(e, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*QueueEntry), args.Error(1)
}

func (m *QueueRepositoryMock) RemoveMatched(userIDs []uint) error {
	args := m.Called(userIDs)
	return args.Error(0)
}

type RankProviderMock struct {
	mock.Mock
}

func (m *RankProviderMock) RankFor(userID uint) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

type GameCreatorMock struct {
	mock.Mock
}

func (m *GameCreatorMock) CreateMatch(player1ID, player2ID uint, gameType string) (*game.GameResponse, error) {
	args := m.Called(player1ID, player2ID, gameType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.GameResponse), args.Error(1)
}
