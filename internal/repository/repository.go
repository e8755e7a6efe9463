package repository

import (
	"wordcards/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	// RegisterUser creates or renames a user and reports whether the row is new.
	// A new user is linked to the whole dictionary atomically with its creation.
	RegisterUser(userID int64, username string) (bool, error)
}

// WordRepository defines dictionary and deck operations
type WordRepository interface {
	SeedWords(pairs []domain.WordPair) error
	AddUserWord(userID int64, username string, pair domain.WordPair) (bool, error)
	GetUserWords(userID int64) ([]domain.UserWord, error)
	DeleteUserWord(userID, userWordID int64) (bool, error)
	RandomTargets(exclude string, limit int) ([]string, error)
}
