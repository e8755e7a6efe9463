package testutil

import (
	"math/rand"
	"time"

	"wordcards/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRand creates a deterministic random source
func NewTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// NewTestUserWord creates a test deck entry
func NewTestUserWord(id, userID int64, target, translation string) domain.UserWord {
	return domain.UserWord{
		ID:          id,
		UserID:      userID,
		Target:      target,
		Translation: translation,
		CreatedAt:   time.Now(),
	}
}

// TestLabels are English button labels used across tests
var TestLabels = domain.Labels{
	AddWord:    "Add word",
	DeleteWord: "Delete word",
	Next:       "Next",
}
