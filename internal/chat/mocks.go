package chat

import (
	"github.com/stretchr/testify/mock"

	"github.com/vertuarena/arena/internal/game"
	"github.com/vertuarena/arena/internal/notify"
	"github.com/vertuarena/arena/internal/user"
)

type ChatRepositoryMock struct {
	mock.Mock
}

func (m *ChatRepositoryMock) ListMessages(gameID uint) ([]ChatMessage, error) {
	args := m.Called(gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ChatMessage), args.Error(1)
}

func (m *ChatRepositoryMock) CreateMessage(msg *ChatMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *ChatRepositoryMock) GetMessage(id uint) (*ChatMessage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ChatMessage), args.Error(1)
}

func (m *ChatRepositoryMock) DeleteMessage(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type GamesMock struct {
	mock.Mock
}

func (m *GamesMock) GetGame(id uint) (*game.Game, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Game), args.Error(1)
}

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) CreateUser(u *user.User) (*user.User, error) {
	args := m.Called(u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *UserRepositoryMock) ValidateUser(email, password string) (*user.User, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *UserRepositoryMock) GetUser(id uint) (*user.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *UserRepositoryMock) GetUserUsername(id uint) (string, error) {
	args := m.Called(id)
	return args.String(0), args.Error(1)
}

func (m *UserRepositoryMock) UpdateProfile(id uint, updates map[string]interface{}) (*user.User, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *UserRepositoryMock) ListUsers(excludeID uint) ([]user.User, error) {
	args := m.Called(excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *UserRepositoryMock) AvailablePlayers(excludeID uint) ([]user.User, error) {
	args := m.Called(excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *UserRepositoryMock) ToggleAvailability(id uint) (*user.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) Publish(event notify.Event) {
	m.Called(event)
}
