package service

import (
	"fmt"
	"strings"

	"wordcards/internal/domain"
	"wordcards/internal/repository"

	"go.uber.org/zap"
)

// PairDelimiter separates the word from its translation in add-word input
const PairDelimiter = "-"

// WordService handles dictionary and deck changes
type WordService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, logger *zap.Logger) *WordService {
	return &WordService{
		wordRepo: wordRepo,
		logger:   logger,
	}
}

// ParseWordPair parses "word-translation" text
func ParseWordPair(text string) (domain.WordPair, error) {
	parts := strings.Split(text, PairDelimiter)
	if len(parts) != 2 {
		return domain.WordPair{}, domain.ErrInvalidFormat
	}

	target := strings.TrimSpace(parts[0])
	translation := strings.TrimSpace(parts[1])
	if target == "" || translation == "" {
		return domain.WordPair{}, domain.ErrInvalidFormat
	}

	return domain.WordPair{Target: target, Translation: translation}, nil
}

// SeedDictionary inserts the base words into the global dictionary
func (s *WordService) SeedDictionary() error {
	s.logger.Info("Seeding base dictionary", zap.Int("words", len(domain.BaseWords)))

	if err := s.wordRepo.SeedWords(domain.BaseWords); err != nil {
		s.logger.Error("Failed to seed base dictionary", zap.Error(err))
		return err
	}

	s.logger.Info("Base dictionary seeded")
	return nil
}

// AddWord puts the pair into the user's deck.
// It reports false when the word was already there.
func (s *WordService) AddWord(userID int64, username string, pair domain.WordPair) (bool, error) {
	if pair.Target == "" || pair.Translation == "" {
		return false, domain.ErrInvalidFormat
	}

	added, err := s.wordRepo.AddUserWord(userID, username, pair)
	if err != nil {
		return false, fmt.Errorf("add user word: %w", err)
	}
	return added, nil
}

// DeleteWord removes an entry from the user's deck
func (s *WordService) DeleteWord(userID, userWordID int64) (bool, error) {
	deleted, err := s.wordRepo.DeleteUserWord(userID, userWordID)
	if err != nil {
		return false, fmt.Errorf("delete user word: %w", err)
	}
	return deleted, nil
}
