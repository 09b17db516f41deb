package matchmaking

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vertuarena/arena/internal/apperrors"
)

type QueueRepository interface {
	DeleteEntriesFor(userID uint) error
	CreateEntry(e *QueueEntry) error
	GetEntry(userID uint) (*QueueEntry, error)
	// FindOpponent returns the oldest-queued entry with the same game type, a
	// different user, and a rank within the window, or nil when none waits.
	FindOpponent(e *QueueEntry, window int) (*QueueEntry, error)
	RemoveMatched(userIDs []uint) error
}

type GormQueueRepository struct {
	db *gorm.DB
}

func NewGormQueueRepository(db *gorm.DB) *GormQueueRepository {
	return &GormQueueRepository{db: db}
}

func (r *GormQueueRepository) DeleteEntriesFor(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&QueueEntry{}).Error; err != nil {
		return apperrors.NewAppError(500, "error leaving queue", err)
	}
	return nil
}

func (r *GormQueueRepository) CreateEntry(e *QueueEntry) error {
	if err := r.db.Create(e).Error; err != nil {
		return apperrors.NewAppError(500, "error joining queue", err)
	}
	return nil
}

func (r *GormQueueRepository) GetEntry(userID uint) (*QueueEntry, error) {
	var e QueueEntry
	err := r.db.Where("user_id = ?", userID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "error reading queue entry", err)
	}
	return &e, nil
}

func (r *GormQueueRepository) FindOpponent(e *QueueEntry, window int) (*QueueEntry, error) {
	var opponent QueueEntry
	err := r.db.
		Where("game_type = ?", e.GameType).
		Where("user_id <> ?", e.UserID).
		Where("rank BETWEEN ? AND ?", e.Rank-window, e.Rank+window).
		Order("queued_at").
		First(&opponent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "error searching for opponent", err)
	}
	return &opponent, nil
}

func (r *GormQueueRepository) RemoveMatched(userIDs []uint) error {
	if err := r.db.Where("user_id IN ?", userIDs).Delete(&QueueEntry{}).Error; err != nil {
		return apperrors.NewAppError(500, "error removing matched players", err)
	}
	return nil
}
