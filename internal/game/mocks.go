package game

import (
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/vertuarena/arena/internal/notify"
	"github.com/vertuarena/arena/internal/stats"
	"github.com/vertuarena/arena/internal/user"
)

type GameRepositoryMock struct {
	mock.Mock
}

func (m *GameRepositoryMock) CreateGame(g *Game) error {
	args := m.Called(g)
	return args.Error(0)
}

func (m *GameRepositoryMock) GetGame(id uint) (*Game, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Game), args.Error(1)
}

func (m *GameRepositoryMock) MutateGame(id uint, fn func(tx *gorm.DB, g *Game) error) (*Game, error) {
	args := m.Called(id, fn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	g := args.Get(0).(*Game)
	if err := fn(nil, g); err != nil {
		return nil, err
	}
	return g, args.Error(1)
}

func (m *GameRepositoryMock) DeletePendingFor(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *GameRepositoryMock) PendingChallengesFor(userID uint) ([]Game, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Game), args.Error(1)
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

type StatsApplierMock struct {
	mock.Mock
}

func (m *StatsApplierMock) ApplyGameResult(tx *gorm.DB, r stats.GameResult) error {
	args := m.Called(tx, r)
	return args.Error(0)
}

func (m *StatsApplierMock) ClearLastGame(tx *gorm.DB, gameID uint, playerIDs ...uint) error {
	args := m.Called(tx, gameID, playerIDs)
	return args.Error(0)
}

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) Publish(event notify.Event) {
	m.Called(event)
}
