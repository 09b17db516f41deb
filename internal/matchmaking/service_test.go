package matchmaking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vertuarena/arena/internal/game"
)

func newTestMatchmakingService() (*MatchmakingService, *QueueRepositoryMock, *RankProviderMock, *GameCreatorMock) {
	repo := &QueueRepositoryMock{}
	ranks := &RankProviderMock{}
	games := &GameCreatorMock{}
	svc := NewMatchmakingService(repo, ranks, games)
	return svc, repo, ranks, games
}

func TestMatchmakingService_JoinQueue_NoOpponent(t *testing.T) {
	svc, repo, ranks, _ := newTestMatchmakingService()
	repo.On("DeleteEntriesFor", uint(1)).Return(nil)
	ranks.On("RankFor", uint(1)).Return(500, nil)
	repo.On("CreateEntry", mock.AnythingOfType("*matchmaking.QueueEntry")).Return(nil)
	repo.On("FindOpponent", mock.Anything, 100).Return(nil, nil)

	status, err := svc.JoinQueue(1, game.GameTypeTicTacToe)
	assert.NoError(t, err)
	assert.Equal(t, StatusQueued, status.Status)
	assert.NotNil(t, status.QueueEntry)
	assert.Equal(t, 500, status.QueueEntry.Rank)
	repo.AssertExpectations(t)
}

func TestMatchmakingService_JoinQueue_PairsWithinWindow(t *testing.T) {
	svc, repo, ranks, games := newTestMatchmakingService()
	repo.On("DeleteEntriesFor", uint(1)).Return(nil)
	ranks.On("RankFor", uint(1)).Return(500, nil)
	repo.On("CreateEntry", mock.AnythingOfType("*matchmaking.QueueEntry")).Return(nil)

	// Rank 580 sits inside the 100-point window around 500.
	opponent := &QueueEntry{UserID: 2, GameType: game.GameTypeTicTacToe, Rank: 580}
	repo.On("FindOpponent", mock.Anything, 100).Return(opponent, nil)
	matched := &game.GameResponse{ID: 11, Player1ID: 1, Player2ID: 2, Status: game.StatusActive}
	games.On("CreateMatch", uint(1), uint(2), game.GameTypeTicTacToe).Return(matched, nil)
	repo.On("RemoveMatched", []uint{1, 2}).Return(nil)

	status, err := svc.JoinQueue(1, game.GameTypeTicTacToe)
	assert.NoError(t, err)
	assert.Equal(t, StatusMatched, status.Status)
	assert.Equal(t, matched, status.Game)
	repo.AssertExpectations(t)
	games.AssertExpectations(t)
}

func TestMatchmakingService_JoinQueue_InvalidGameType(t *testing.T) {
	svc, _, _, _ := newTestMatchmakingService()

	status, err := svc.JoinQueue(1, "")
	assert.Nil(t, status)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "game_type is required")
}

func TestMatchmakingService_CheckStatus_NotQueued(t *testing.T) {
	svc, repo, _, _ := newTestMatchmakingService()
	repo.On("GetEntry", uint(1)).Return(nil, nil)

	status, err := svc.CheckStatus(1)
	assert.NoError(t, err)
	assert.Equal(t, StatusNotQueued, status.Status)
	assert.Nil(t, status.Game)
}

func TestMatchmakingService_CheckStatus_StillWaiting(t *testing.T) {
	svc, repo, _, _ := newTestMatchmakingService()
	entry := &QueueEntry{UserID: 1, GameType: game.GameTypeTicTacToe, Rank: 500}
	repo.On("GetEntry", uint(1)).Return(entry, nil)
	repo.On("FindOpponent", entry, 100).Return(nil, nil)

	status, err := svc.CheckStatus(1)
	assert.NoError(t, err)
	assert.Equal(t, StatusQueued, status.Status)
}

func TestMatchmakingService_CheckStatus_MatchFound(t *testing.T) {
	svc, repo, _, games := newTestMatchmakingService()
	entry := &QueueEntry{UserID: 1, GameType: game.GameTypeTicTacToe, Rank: 500}
	opponent := &QueueEntry{UserID: 3, GameType: game.GameTypeTicTacToe, Rank: 430}
	repo.On("GetEntry", uint(1)).Return(entry, nil)
	repo.On("FindOpponent", entry, 100).Return(opponent, nil)
	matched := &game.GameResponse{ID: 12, Player1ID: 1, Player2ID: 3, Status: game.StatusActive}
	games.On("CreateMatch", uint(1), uint(3), game.GameTypeTicTacToe).Return(matched, nil)
	repo.On("RemoveMatched", []uint{1, 3}).Return(nil)

	status, err := svc.CheckStatus(1)
	assert.NoError(t, err)
	assert.Equal(t, StatusMatched, status.Status)
	assert.Equal(t, uint(12), status.Game.ID)
}

func TestMatchmakingService_LeaveQueue(t *testing.T) {
	svc, repo, _, _ := newTestMatchmakingService()
	repo.On("DeleteEntriesFor", uint(1)).Return(nil)

	err := svc.LeaveQueue(1)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
