package stats

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vertuarena/arena/internal/apperrors"
)

// StatsRepository methods accept an optional transaction handle so that stats
// written on game completion share the move's transaction. A nil tx uses the
// repository's own connection.
type StatsRepository interface {
	FetchStats(tx *gorm.DB, userID uint) (*PlayerStats, error)
	SaveStats(tx *gorm.DB, s *PlayerStats) error
	TopPlayers(limit int) ([]LeaderboardRow, error)
}

// LeaderboardRow is a stats row joined with the owning user's identity.
type LeaderboardRow struct {
	UserID        uint
	Username      string
	Avatar        string
	GamesPlayed   int
	GamesWon      int
	GamesLost     int
	Rank          int
	CurrentStreak int
}

type GormStatsRepository struct {
	db *gorm.DB
}

func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

func (r *GormStatsRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *GormStatsRepository) FetchStats(tx *gorm.DB, userID uint) (*PlayerStats, error) {
	conn := r.conn(tx)

	var s PlayerStats
	err := conn.Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = PlayerStats{UserID: userID}
		if err := conn.Create(&s).Error; err != nil {
			return nil, apperrors.NewAppError(500, "error creating player stats", err)
		}
		return &s, nil
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching player stats", err)
	}
	return &s, nil
}

func (r *GormStatsRepository) SaveStats(tx *gorm.DB, s *PlayerStats) error {
	if err := r.conn(tx).Save(s).Error; err != nil {
		return apperrors.NewAppError(500, "error saving player stats", err)
	}
	return nil
}

func (r *GormStatsRepository) TopPlayers(limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := r.db.
		Table("player_stats").
		Select(`player_stats.user_id, users.username, users.avatar,
			player_stats.games_played, player_stats.games_won, player_stats.games_lost,
			player_stats.rank, player_stats.current_streak`).
		Joins("JOIN users ON users.id = player_stats.user_id").
		Order("player_stats.games_won DESC").
		Order("player_stats.current_streak DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching leaderboard", err)
	}
	return rows, nil
}
