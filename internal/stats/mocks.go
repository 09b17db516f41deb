package stats

import (
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type StatsRepositoryMock struct {
	mock.Mock
}

func (m *StatsRepositoryMock) FetchStats(tx *gorm.DB, userID uint) (*PlayerStats, error) {
	args := m.Called(tx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PlayerStats), args.Error(1)
}

func (m *StatsRepositoryMock) SaveStats(tx *gorm.DB, s *PlayerStats) error {
	args := m.Called(tx, s)
	return args.Error(0)
}

func (m *StatsRepositoryMock) TopPlayers(limit int) ([]LeaderboardRow, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]LeaderboardRow), args.Error(1)
}
