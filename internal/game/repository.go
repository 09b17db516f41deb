package game

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vertuarena/arena/internal/apperrors"
)

type GameRepository interface {
	CreateGame(g *Game) error
	GetGame(id uint) (*Game, error)
	// MutateGame runs fn inside a transaction holding a FOR UPDATE lock on the
	// game row, so concurrent moves on the same game serialize. The mutated
	// game is saved when fn returns nil and discarded otherwise.
	MutateGame(id uint, fn func(tx *gorm.DB, g *Game) error) (*Game, error)
	DeletePendingFor(userID uint) error
	PendingChallengesFor(userID uint) ([]Game, error)
}

type GormGameRepository struct {
	db *gorm.DB
}

func NewGormGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

func (r *GormGameRepository) CreateGame(g *Game) error {
	if err := r.db.Create(g).Error; err != nil {
		return apperrors.NewAppError(500, "error creating game", err)
	}
	return nil
}

func (r *GormGameRepository) GetGame(id uint) (*Game, error) {
	var g Game
	if err := r.db.First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(404, "Game not found", errors.New("the requested game could not be found"))
		}
		return nil, apperrors.NewAppError(500, "error getting game", err)
	}
	return &g, nil
}

func (r *GormGameRepository) MutateGame(id uint, fn func(tx *gorm.DB, g *Game) error) (*Game, error) {
	var g Game
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&g, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewAppError(404, "Game not found", errors.New("the requested game could not be found"))
		}
		if err != nil {
			return apperrors.NewAppError(500, "error locking game", err)
		}
		if err := fn(tx, &g); err != nil {
			return err
		}
		if err := tx.Save(&g).Error; err != nil {
			return apperrors.NewAppError(500, "error saving game", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GormGameRepository) DeletePendingFor(userID uint) error {
	err := r.db.
		Where("(player_1_id = ? OR player_2_id = ?) AND status = ?", userID, userID, StatusPending).
		Delete(&Game{}).Error
	if err != nil {
		return apperrors.NewAppError(500, "error deleting pending games", err)
	}
	return nil
}

func (r *GormGameRepository) PendingChallengesFor(userID uint) ([]Game, error) {
	var games []Game
	err := r.db.
		Where("player_2_id = ? AND status = ?", userID, StatusPending).
		Find(&games).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error listing pending challenges", err)
	}
	return games, nil
}
