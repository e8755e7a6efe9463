package service

import (
	"fmt"
	"math/rand"
	"sync"

	"wordcards/internal/domain"
	"wordcards/internal/repository"

	"go.uber.org/zap"
)

// DistractorCount is the number of wrong options offered with each card
const DistractorCount = 3

// CardService picks questions and their answer options
type CardService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// NewCardService creates a new card service
func NewCardService(wordRepo repository.WordRepository, rnd *rand.Rand, logger *zap.Logger) *CardService {
	return &CardService{
		wordRepo: wordRepo,
		logger:   logger,
		rnd:      rnd,
	}
}

// Draw picks a random word of the user's deck and builds its options.
// It returns domain.ErrNoWords for an empty deck.
func (s *CardService) Draw(userID int64) (*domain.Card, error) {
	words, err := s.wordRepo.GetUserWords(userID)
	if err != nil {
		return nil, fmt.Errorf("get user words: %w", err)
	}
	if len(words) == 0 {
		return nil, domain.ErrNoWords
	}

	s.rndMu.Lock()
	picked := words[s.rnd.Intn(len(words))]
	s.rndMu.Unlock()

	question := domain.Question{
		UserWordID:  picked.ID,
		Target:      picked.Target,
		Translation: picked.Translation,
	}

	return &domain.Card{
		Question: question,
		Options:  s.Options(question.Target),
	}, nil
}

// Options returns the correct target plus up to DistractorCount other
// dictionary targets in random order. A failed lookup leaves only the target.
func (s *CardService) Options(target string) []string {
	distractors, err := s.wordRepo.RandomTargets(target, DistractorCount)
	if err != nil {
		s.logger.Warn("Failed to load distractors",
			zap.String("target", target),
			zap.Error(err),
		)
		distractors = nil
	}

	seen := map[string]bool{target: true}
	options := make([]string, 0, len(distractors)+1)
	for _, d := range distractors {
		if seen[d] || len(options) == DistractorCount {
			continue
		}
		seen[d] = true
		options = append(options, d)
	}
	options = append(options, target)

	s.rndMu.Lock()
	s.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	s.rndMu.Unlock()

	return options
}
