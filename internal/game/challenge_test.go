package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vertuarena/arena/internal/user"
)

func TestGameService_RequestMatch_Success(t *testing.T) {
	svc, repo, users, _, pub := newTestGameService()
	stubUsernames(users)
	users.On("GetUser", uint(2)).Return(&user.User{ID: 2, Username: "rival", IsAvailable: true}, nil)
	repo.On("CreateGame", mock.AnythingOfType("*game.Game")).Return(nil)
	pub.On("Publish", mock.Anything).Return()

	resp, err := svc.RequestMatch(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.NotNil(t, resp.GameState.Challenge)
	assert.Equal(t, uint(1), resp.GameState.Challenge.ChallengerID)
	assert.Equal(t, uint(2), resp.GameState.Challenge.ChallengedID)
	assert.Equal(t, "pending", resp.GameState.Challenge.Status)
	repo.AssertExpectations(t)
}

func TestGameService_RequestMatch_Self(t *testing.T) {
	svc, _, _, _, _ := newTestGameService()

	resp, err := svc.RequestMatch(1, 1)
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "You cannot challenge yourself")
}

func TestGameService_RequestMatch_OpponentMissing(t *testing.T) {
	svc, _, users, _, _ := newTestGameService()
	users.On("GetUser", uint(2)).Return(nil, nil)

	resp, err := svc.RequestMatch(1, 2)
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Player not found")
}

func TestGameService_RequestMatch_OpponentUnavailable(t *testing.T) {
	svc, _, users, _, _ := newTestGameService()
	users.On("GetUser", uint(2)).Return(&user.User{ID: 2, IsAvailable: false}, nil)

	resp, err := svc.RequestMatch(1, 2)
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Player is no longer available")
}

func TestGameService_RespondToChallenge_Accept(t *testing.T) {
	svc, repo, users, _, pub := newTestGameService()
	stubUsernames(users)
	g := activeGame()
	g.Status = StatusPending
	g.State.Challenge = &Challenge{ChallengerID: 1, ChallengedID: 2, Status: "pending"}
	repo.On("MutateGame", uint(7), mock.Anything).Return(g, nil)
	pub.On("Publish", mock.Anything).Return()

	resp, err := svc.RespondToChallenge(7, 2, true)
	assert.NoError(t, err)
	assert.Equal(t, StatusActive, resp.Status)
	assert.Nil(t, resp.GameState.Challenge)
	assert.Equal(t, uint(1), resp.GameState.CurrentTurn)
}

func TestGameService_RespondToChallenge_Reject(t *testing.T) {
	svc, repo, users, applier, pub := newTestGameService()
	stubUsernames(users)
	g := activeGame()
	g.Status = StatusPending
	repo.On("MutateGame", uint(7), mock.Anything).Return(g, nil)
	pub.On("Publish", mock.Anything).Return()

	resp, err := svc.RespondToChallenge(7, 2, false)
	assert.NoError(t, err)
	assert.Equal(t, StatusRejected, resp.Status)
	assert.NotNil(t, resp.GameState.Rejection)
	assert.Equal(t, uint(2), resp.GameState.Rejection.RejectedBy)
	assert.Nil(t, resp.GameState.Players)
	applier.AssertNotCalled(t, "ApplyGameResult", mock.Anything, mock.Anything)
}

func TestGameService_RespondToChallenge_OnlyChallengedPlayer(t *testing.T) {
	svc, repo, _, _, _ := newTestGameService()
	g := activeGame()
	g.Status = StatusPending
	repo.On("MutateGame", uint(7), mock.Anything).Return(g, nil)

	resp, err := svc.RespondToChallenge(7, 1, true)
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized")
}

func TestGameService_RespondToChallenge_NotPending(t *testing.T) {
	svc, repo, _, _, _ := newTestGameService()
	repo.On("MutateGame", uint(7), mock.Anything).Return(activeGame(), nil)

	resp, err := svc.RespondToChallenge(7, 2, true)
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid game state")
}

func TestGameService_CreateMatch(t *testing.T) {
	svc, repo, users, _, pub := newTestGameService()
	stubUsernames(users)
	repo.On("CreateGame", mock.AnythingOfType("*game.Game")).Return(nil)
	pub.On("Publish", mock.Anything).Return()

	resp, err := svc.CreateMatch(3, 4, GameTypeTicTacToe)
	assert.NoError(t, err)
	assert.Equal(t, StatusActive, resp.Status)
	assert.Equal(t, uint(3), resp.Player1ID)
	assert.Equal(t, uint(4), resp.Player2ID)
	assert.Equal(t, uint(3), resp.GameState.CurrentTurn)
}

func TestGameService_ToggleAvailability_Off(t *testing.T) {
	svc, repo, users, _, _ := newTestGameService()
	users.On("ToggleAvailability", uint(1)).Return(&user.User{ID: 1, IsAvailable: false}, nil)
	repo.On("DeletePendingFor", uint(1)).Return(nil)

	resp, err := svc.ToggleAvailability(1)
	assert.NoError(t, err)
	assert.False(t, resp.IsAvailable)
	assert.Equal(t, "You are no longer available for games", resp.Message)
	repo.AssertCalled(t, "DeletePendingFor", uint(1))
}

func TestGameService_ToggleAvailability_On(t *testing.T) {
	svc, repo, users, _, _ := newTestGameService()
	users.On("ToggleAvailability", uint(1)).Return(&user.User{ID: 1, IsAvailable: true}, nil)

	resp, err := svc.ToggleAvailability(1)
	assert.NoError(t, err)
	assert.True(t, resp.IsAvailable)
	assert.Equal(t, "You are now available for games", resp.Message)
	repo.AssertNotCalled(t, "DeletePendingFor", mock.Anything)
}

func TestGameService_PendingChallenges(t *testing.T) {
	svc, repo, users, _, _ := newTestGameService()
	stubUsernames(users)
	pending := *activeGame()
	pending.Status = StatusPending
	repo.On("PendingChallengesFor", uint(2)).Return([]Game{pending}, nil)

	resps, err := svc.PendingChallenges(2)
	assert.NoError(t, err)
	assert.Len(t, resps, 1)
	assert.Equal(t, StatusPending, resps[0].Status)
}
