package stats

import (
	"math"
	"sort"

	"gorm.io/gorm"
)

const leaderboardSize = 50

type StatsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// EnsureStats creates the zeroed stats row for a new account.
func (s *StatsService) EnsureStats(userID uint) error {
	_, err := s.repo.FetchStats(nil, userID)
	return err
}

// RankFor snapshots the current rank, creating the row when absent.
func (s *StatsService) RankFor(userID uint) (int, error) {
	stats, err := s.repo.FetchStats(nil, userID)
	if err != nil {
		return 0, err
	}
	return stats.Rank, nil
}

func (s *StatsService) StatsFor(userID uint) (*StatsResponse, error) {
	stats, err := s.repo.FetchStats(nil, userID)
	if err != nil {
		return nil, err
	}
	return &StatsResponse{Stats: stats, WinRate: stats.WinRate(), Score: stats.Score()}, nil
}

// ApplyGameResult records one completed game for both participants. The update
// is idempotent per game: a stats row that already recorded this game id is
// left untouched, so re-delivery of a completion event cannot double count.
func (s *StatsService) ApplyGameResult(tx *gorm.DB, r GameResult) error {
	if r.WinnerID == nil {
		if err := s.applyDraw(tx, r.GameID, r.Player1ID); err != nil {
			return err
		}
		return s.applyDraw(tx, r.GameID, r.Player2ID)
	}

	loserID := r.Player1ID
	if *r.WinnerID == r.Player1ID {
		loserID = r.Player2ID
	}
	if err := s.applyWin(tx, r.GameID, *r.WinnerID); err != nil {
		return err
	}
	return s.applyLoss(tx, r.GameID, loserID)
}

func (s *StatsService) applyWin(tx *gorm.DB, gameID, userID uint) error {
	stats, err := s.repo.FetchStats(tx, userID)
	if err != nil {
		return err
	}
	if stats.LastGameID != nil && *stats.LastGameID == gameID {
		return nil
	}

	stats.GamesPlayed++
	stats.GamesWon++
	stats.CurrentStreak++
	stats.Rank += 25 + min(stats.CurrentStreak*5, 25)
	if stats.Rank > stats.PeakRank {
		stats.PeakRank = stats.Rank
	}
	stats.LastGameID = &gameID
	return s.repo.SaveStats(tx, stats)
}

func (s *StatsService) applyLoss(tx *gorm.DB, gameID, userID uint) error {
	stats, err := s.repo.FetchStats(tx, userID)
	if err != nil {
		return err
	}
	if stats.LastGameID != nil && *stats.LastGameID == gameID {
		return nil
	}

	stats.GamesPlayed++
	stats.GamesLost++
	stats.CurrentStreak = 0
	stats.Rank = max(0, stats.Rank-15)
	stats.LastGameID = &gameID
	return s.repo.SaveStats(tx, stats)
}

func (s *StatsService) applyDraw(tx *gorm.DB, gameID, userID uint) error {
	stats, err := s.repo.FetchStats(tx, userID)
	if err != nil {
		return err
	}
	if stats.LastGameID != nil && *stats.LastGameID == gameID {
		return nil
	}

	stats.GamesPlayed++
	stats.LastGameID = &gameID
	return s.repo.SaveStats(tx, stats)
}

// ClearLastGame forgets that gameID was already counted for the given
// players. Restarting reuses the game row, so without this the next
// completion on that row would be skipped as a duplicate.
func (s *StatsService) ClearLastGame(tx *gorm.DB, gameID uint, playerIDs ...uint) error {
	for _, id := range playerIDs {
		stats, err := s.repo.FetchStats(tx, id)
		if err != nil {
			return err
		}
		if stats.LastGameID == nil || *stats.LastGameID != gameID {
			continue
		}
		stats.LastGameID = nil
		if err := s.repo.SaveStats(tx, stats); err != nil {
			return err
		}
	}
	return nil
}

func (s *StatsService) Leaderboard() (*LeaderboardResponse, error) {
	rows, err := s.repo.TopPlayers(leaderboardSize)
	if err != nil {
		return nil, err
	}

	players := make([]LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		winRate := 0.0
		if row.GamesPlayed > 0 {
			winRate = math.Round(float64(row.GamesWon)/float64(row.GamesPlayed)*1000) / 10
		}

		breakdown := ScoreBreakdown{
			Wins:       row.GamesWon * 50,
			Streak:     row.CurrentStreak * 10,
			WinRate:    int(math.Round(winRate)),
			Experience: row.GamesPlayed * 5,
		}

		players = append(players, LeaderboardEntry{
			ID:             row.UserID,
			Username:       row.Username,
			Avatar:         row.Avatar,
			Level:          row.Rank/100 + 1,
			GamesPlayed:    row.GamesPlayed,
			Wins:           row.GamesWon,
			WinRate:        winRate,
			Score:          breakdown.Wins + breakdown.Streak + breakdown.WinRate + breakdown.Experience,
			Streak:         row.CurrentStreak,
			ScoreBreakdown: breakdown,
		})
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Score > players[j].Score
	})

	return &LeaderboardResponse{
		Players: players,
		ScoreInfo: ScoreInfo{
			WinPoints:        50,
			StreakPoints:     10,
			WinRateBonus:     "Up to 100",
			ExperiencePoints: 5,
		},
	}, nil
}
