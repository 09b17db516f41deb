package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func fetchReturns(repo *StatsRepositoryMock, s *PlayerStats) {
	repo.On("FetchStats", mock.Anything, s.UserID).Return(s, nil)
}

func TestStatsService_ApplyGameResult_Win(t *testing.T) {
	repo := &StatsRepositoryMock{}
	svc := NewStatsService(repo)

	winner := &PlayerStats{UserID: 1, GamesPlayed: 4, GamesWon: 2, CurrentStreak: 1, Rank: 100, PeakRank: 110}
	loser := &PlayerStats{UserID: 2, GamesPlayed: 4, GamesWon: 2, CurrentStreak: 2, Rank: 90, PeakRank: 120}
	fetchReturns(repo, winner)
	fetchReturns(repo, loser)
	repo.On("SaveStats", mock.Anything, winner).Return(nil)
	repo.On("SaveStats", mock.Anything, loser).Return(nil)

	winnerID := uint(1)
	err := svc.ApplyGameResult(nil, GameResult{GameID: 9, Player1ID: 1, Player2ID: 2, WinnerID: &winnerID})
	assert.NoError(t, err)

	assert.Equal(t, 5, winner.GamesPlayed)
	assert.Equal(t, 3, winner.GamesWon)
	assert.Equal(t, 2, winner.CurrentStreak)
	// 100 + 25 base + streak bonus 2*5
	assert.Equal(t, 135, winner.Rank)
	assert.Equal(t, 135, winner.PeakRank)
	assert.Equal(t, uint(9), *winner.LastGameID)

	assert.Equal(t, 5, loser.GamesPlayed)
	assert.Equal(t, 1, loser.GamesLost)
	assert.Equal(t, 0, loser.CurrentStreak)
	assert.Equal(t, 75, loser.Rank)
	assert.Equal(t, 120, loser.PeakRank)
	assert.Equal(t, uint(9), *loser.LastGameID)
	repo.AssertExpectations(t)
}

func TestStatsService_ApplyGameResult_StreakBonusCapped(t *testing.T) {
	repo := &StatsRepositoryMock{}
	svc := NewStatsService(repo)

	winner := &PlayerStats{UserID: 1, CurrentStreak: 9, Rank: 500, PeakRank: 500}
	loser := &PlayerStats{UserID: 2}
	fetchReturns(repo, winner)
	fetchReturns(repo, loser)
	repo.On("SaveStats", mock.Anything, winner).Return(nil)
	repo.On("SaveStats", mock.Anything, loser).Return(nil)

	winnerID := uint(1)
	err := svc.ApplyGameResult(nil, GameResult{GameID: 3, Player1ID: 1, Player2ID: 2, WinnerID: &winnerID})
	assert.NoError(t, err)

	// Streak bonus tops out at 25 no matter how long the run.
	assert.Equal(t, 550, winner.Rank)
	assert.Equal(t, 550, winner.PeakRank)
}

func TestStatsService_ApplyGameResult_LossFloorsAtZero(t *testing.T) {
	repo := &StatsRepositoryMock{}
	svc := NewStatsService(repo)

	winner := &PlayerStats{UserID: 1}
	loser := &PlayerStats{UserID: 2, Rank: 10}
	fetchReturns(repo, winner)
	fetchReturns(repo, loser)
	repo.On("SaveStats", mock.Anything, winner).Return(nil)
	repo.On("SaveStats", mock.Anything, loser).Return(nil)

	winnerID := uint(1)
	err := svc.ApplyGameResult(nil, GameResult{GameID: 4, Player1ID: 1, Player2ID: 2, WinnerID: &winnerID})
	assert.NoError(t, err)
	assert.Equal(t, 0, loser.Rank)
}

func TestStatsService_ApplyGameResult_Draw(t *testing.T) {
	repo := &StatsRepositoryMock{}
	svc := NewStatsService(repo)

	p1 := &PlayerStats{UserID: 1, GamesPlayed: 2, CurrentStreak: 1, Rank: 60}
	p2 := &PlayerStats{UserID: 2, GamesPlayed: 2, Rank: 40}
	fetchReturns(repo, p1)
	fetchReturns(repo, p2)
	repo.On("SaveStats", mock.Anything, p1).Return(nil)
	repo.On("SaveStats", mock.Anything, p2).Return(nil)

	err := svc.ApplyGameResult(nil, GameResult{GameID: 5, Player1ID: 1, Player2ID: 2})
	assert.NoError(t, err)

	// Draws count a game played and nothing else.
	assert.Equal(t, 3, p1.GamesPlayed)
	assert.Equal(t, 1, p1.CurrentStreak)
	assert.Equal(t, 60, p1.Rank)
	assert.Equal(t, 3, p2.GamesPlayed)
	assert.Equal(t, 40, p2.Rank)
}

func TestStatsService_ApplyGameResult_Idempotent(t *testing.T) {
	repo := &StatsRepositoryMock{}
	svc := NewStatsService(repo)

	gameID := uint(9)
	winner := &PlayerStats{UserID: 1, GamesPlayed: 5, GamesWon: 3, Rank: 135, LastGameID: &gameID}
	loser := &PlayerStats{UserID: 2, GamesPlayed: 5, GamesLost: 1, Rank: 75, LastGameID: &gameID}
	fetchReturns(repo, winner)
	fetchReturns(repo, loser)

	winnerID := uint(1)
	err := svc.ApplyGameResult(nil, GameResult{GameID: 9, Player1ID: 1, Player2ID: 2, WinnerID: &winnerID})
	assert.NoError(t, err)

	// Replaying the same game id must not touch either row.
	assert.Equal(t, 5, winner.GamesPlayed)
	assert.Equal(t, 135, winner.Rank)
	assert.Equal(t, 5, loser.GamesPlayed)
	repo.AssertNotCalled(t, "SaveStats", mock.Anything, winner)
	repo.AssertNotCalled(t, "SaveStats", mock.Anything, loser)
}

func TestStatsService_ClearLastGame(t *testing.T) {
	repo := &StatsRepositoryMock{}
	svc := NewStatsService(repo)

	gameID := uint(9)
	otherGame := uint(4)
	marked := &PlayerStats{UserID: 1, LastGameID: &gameID}
	unrelated := &PlayerStats{UserID: 2, LastGameID: &otherGame}
	fetchReturns(repo, marked)
	fetchReturns(repo, unrelated)
	repo.On("SaveStats", mock.Anything, marked).Return(nil)

	err := svc.ClearLastGame(nil, 9, 1, 2)
	assert.NoError(t, err)
	assert.Nil(t, marked.LastGameID)
	// A marker from a different game stays put.
	assert.Equal(t, otherGame, *unrelated.LastGameID)
	repo.AssertNotCalled(t, "SaveStats", mock.Anything, unrelated)
}

func TestStatsService_Leaderboard(t *testing.T) {
	repo := &StatsRepositoryMock{}
	svc := NewStatsService(repo)

	rows := []LeaderboardRow{
		{UserID: 2, Username: "second", GamesPlayed: 4, GamesWon: 1, CurrentStreak: 0, Rank: 50},
		{UserID: 1, Username: "first", GamesPlayed: 10, GamesWon: 8, CurrentStreak: 3, Rank: 200},
	}
	repo.On("TopPlayers", 50).Return(rows, nil)

	board, err := svc.Leaderboard()
	assert.NoError(t, err)
	assert.Len(t, board.Players, 2)

	top := board.Players[0]
	assert.Equal(t, "first", top.Username)
	assert.Equal(t, 80.0, top.WinRate)
	// 8*50 wins + 3*10 streak + 80 win rate + 10*5 experience
	assert.Equal(t, 560, top.Score)
	assert.Equal(t, 3, top.Level)

	runnerUp := board.Players[1]
	assert.Equal(t, "second", runnerUp.Username)
	assert.Equal(t, 25.0, runnerUp.WinRate)
	assert.Equal(t, 95, runnerUp.Score)

	assert.Equal(t, 50, board.ScoreInfo.WinPoints)
	assert.Equal(t, 10, board.ScoreInfo.StreakPoints)
}

func TestStatsService_StatsFor(t *testing.T) {
	repo := &StatsRepositoryMock{}
	svc := NewStatsService(repo)

	s := &PlayerStats{UserID: 1, GamesPlayed: 8, GamesWon: 6, Rank: 150}
	fetchReturns(repo, s)

	resp, err := svc.StatsFor(1)
	assert.NoError(t, err)
	assert.Equal(t, s, resp.Stats)
	assert.Equal(t, 75.0, resp.WinRate)
	// 6*50 wins + 75 win rate + 8*5 experience
	assert.Equal(t, 415, resp.Score)
}

func TestStatsService_RankFor(t *testing.T) {
	repo := &StatsRepositoryMock{}
	svc := NewStatsService(repo)
	fetchReturns(repo, &PlayerStats{UserID: 3, Rank: 480})

	rank, err := svc.RankFor(3)
	assert.NoError(t, err)
	assert.Equal(t, 480, rank)
}
