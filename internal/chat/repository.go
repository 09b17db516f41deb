package chat

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vertuarena/arena/internal/apperrors"
)

type ChatRepository interface {
	ListMessages(gameID uint) ([]ChatMessage, error)
	CreateMessage(m *ChatMessage) error
	GetMessage(id uint) (*ChatMessage, error)
	DeleteMessage(id uint) error
}

type GormChatRepository struct {
	db *gorm.DB
}

func NewGormChatRepository(db *gorm.DB) *GormChatRepository {
	return &GormChatRepository{db: db}
}

func (r *GormChatRepository) ListMessages(gameID uint) ([]ChatMessage, error) {
	var messages []ChatMessage
	err := r.db.
		Where("game_id = ?", gameID).
		Order("sent_at").
		Find(&messages).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error listing chat messages", err)
	}
	return messages, nil
}

func (r *GormChatRepository) CreateMessage(m *ChatMessage) error {
	if err := r.db.Create(m).Error; err != nil {
		return apperrors.NewAppError(500, "error saving chat message", err)
	}
	return nil
}

func (r *GormChatRepository) GetMessage(id uint) (*ChatMessage, error) {
	var m ChatMessage
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(404, "Message not found", nil)
		}
		return nil, apperrors.NewAppError(500, "error getting chat message", err)
	}
	return &m, nil
}

func (r *GormChatRepository) DeleteMessage(id uint) error {
	if err := r.db.Delete(&ChatMessage{}, id).Error; err != nil {
		return apperrors.NewAppError(500, "error deleting chat message", err)
	}
	return nil
}
