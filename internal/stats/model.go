package stats

import "math"

type PlayerStats struct {
	ID            uint  `gorm:"primaryKey" json:"id"`
	UserID        uint  `gorm:"uniqueIndex;not null" json:"user_id"`
	GamesPlayed   int   `json:"games_played"`
	GamesWon      int   `json:"games_won"`
	GamesLost     int   `json:"games_lost"`
	CurrentStreak int   `json:"current_streak"`
	Rank          int   `json:"rank"`
	PeakRank      int   `json:"peak_rank"`
	LastGameID    *uint `json:"last_game_id,omitempty"`
}

func (s *PlayerStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.GamesWon) / float64(s.GamesPlayed) * 100
}

// Score is the read-time leaderboard score, never persisted.
func (s *PlayerStats) Score() int {
	winScore := s.GamesWon * 50
	streakBonus := s.CurrentStreak * 10
	winRateBonus := int(math.Round(s.WinRate()))
	experienceBonus := s.GamesPlayed * 5
	return winScore + streakBonus + winRateBonus + experienceBonus
}

// GameResult describes one completed game. A nil WinnerID means a draw.
type GameResult struct {
	GameID    uint
	Player1ID uint
	Player2ID uint
	WinnerID  *uint
}

type StatsResponse struct {
	Stats   *PlayerStats `json:"stats"`
	WinRate float64      `json:"win_rate"`
	Score   int          `json:"score"`
}

type ScoreBreakdown struct {
	Wins       int `json:"wins"`
	Streak     int `json:"streak"`
	WinRate    int `json:"winRate"`
	Experience int `json:"experience"`
}

type LeaderboardEntry struct {
	ID             uint           `json:"id"`
	Username       string         `json:"username"`
	Avatar         string         `json:"avatar,omitempty"`
	Level          int            `json:"level"`
	GamesPlayed    int            `json:"gamesPlayed"`
	Wins           int            `json:"wins"`
	WinRate        float64        `json:"winRate"`
	Score          int            `json:"score"`
	Streak         int            `json:"streak"`
	ScoreBreakdown ScoreBreakdown `json:"scoreBreakdown"`
}

type LeaderboardResponse struct {
	Players   []LeaderboardEntry `json:"players"`
	ScoreInfo ScoreInfo          `json:"scoreInfo"`
}

type ScoreInfo struct {
	WinPoints        int    `json:"winPoints"`
	StreakPoints     int    `json:"streakPoints"`
	WinRateBonus     string `json:"winRateBonus"`
	ExperiencePoints int    `json:"experiencePoints"`
}
