package testutil

import (
	"wordcards/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) RegisterUser(userID int64, username string) (bool, error) {
	args := m.Called(userID, username)
	return args.Bool(0), args.Error(1)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) SeedWords(pairs []domain.WordPair) error {
	args := m.Called(pairs)
	return args.Error(0)
}

func (m *MockWordRepository) AddUserWord(userID int64, username string, pair domain.WordPair) (bool, error) {
	args := m.Called(userID, username, pair)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) GetUserWords(userID int64) ([]domain.UserWord, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserWord), args.Error(1)
}

func (m *MockWordRepository) DeleteUserWord(userID, userWordID int64) (bool, error) {
	args := m.Called(userID, userWordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) RandomTargets(exclude string, limit int) ([]string, error) {
	args := m.Called(exclude, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
