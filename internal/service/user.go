package service

import (
	"fmt"

	"wordcards/internal/repository"

	"go.uber.org/zap"
)

// UserService handles user registration
type UserService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates or updates the user. A user seen for the first time
// gets the whole dictionary as a starting deck. It reports whether the user is new.
func (s *UserService) Register(userID int64, username string) (bool, error) {
	created, err := s.userRepo.RegisterUser(userID, username)
	if err != nil {
		return false, fmt.Errorf("register user: %w", err)
	}

	if created {
		s.logger.Info("New user registered",
			zap.Int64("user_id", userID),
			zap.String("username", username),
		)
	}
	return created, nil
}
