package chat

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/vertuarena/arena/internal/apperrors"
	"github.com/vertuarena/arena/internal/game"
	"github.com/vertuarena/arena/internal/notify"
	"github.com/vertuarena/arena/internal/user"
)

// Games is the slice of the game repository chat needs for participant checks.
type Games interface {
	GetGame(id uint) (*game.Game, error)
}

type ChatService struct {
	repo      ChatRepository
	games     Games
	users     user.UserRepository
	publisher notify.Publisher
	now       func() time.Time
}

func NewChatService(repo ChatRepository, games Games, users user.UserRepository, publisher notify.Publisher) *ChatService {
	return &ChatService{
		repo:      repo,
		games:     games,
		users:     users,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *ChatService) Messages(gameID, userID uint) ([]MessageResponse, error) {
	g, err := s.games.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	if !g.IsParticipant(userID) {
		return nil, apperrors.NewAppError(403, "Unauthorized", errors.New("only players in the game can read its chat"))
	}

	messages, err := s.repo.ListMessages(gameID)
	if err != nil {
		return nil, err
	}

	responses := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, s.response(&messages[i]))
	}
	return responses, nil
}

func (s *ChatService) Send(gameID, userID uint, text string) (*MessageResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewAppError(400, "message is required", nil)
	}
	if len(text) > maxMessageLength {
		return nil, apperrors.NewAppError(400, "message must not exceed 500 characters", nil)
	}

	g, err := s.games.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	if !g.IsParticipant(userID) {
		return nil, apperrors.NewAppError(403, "Unauthorized", errors.New("only players in the game can chat"))
	}

	m := &ChatMessage{
		GameID:  gameID,
		UserID:  userID,
		Message: text,
		SentAt:  s.now(),
	}
	if err := s.repo.CreateMessage(m); err != nil {
		return nil, err
	}

	resp := s.response(m)
	if s.publisher != nil {
		s.publisher.Publish(notify.Event{
			Channel: fmt.Sprintf("game.%d", gameID),
			Type:    "CHAT_MESSAGE",
			Users:   []uint{g.Player1ID, g.Player2ID},
			Payload: resp,
		})
	}
	return &resp, nil
}

func (s *ChatService) Delete(messageID, userID uint) error {
	m, err := s.repo.GetMessage(messageID)
	if err != nil {
		return err
	}
	if m.UserID != userID {
		return apperrors.NewAppError(403, "Unauthorized", errors.New("only the author can delete a message"))
	}
	return s.repo.DeleteMessage(messageID)
}

func (s *ChatService) response(m *ChatMessage) MessageResponse {
	username, err := s.users.GetUserUsername(m.UserID)
	if err != nil {
		log.Println("Error loading username for", m.UserID, ":", err)
	}
	return MessageResponse{
		ID:      m.ID,
		GameID:  m.GameID,
		Message: m.Message,
		SentAt:  m.SentAt,
		User:    user.Summary{ID: m.UserID, Username: username},
	}
}
