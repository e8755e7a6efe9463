package testutil

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"wordcards/internal/domain"
)

// MemoryStore is an in-memory Word Store with the semantics of the postgres repositories.
// It implements both repository interfaces. SetErr makes every call fail.
type MemoryStore struct {
	mu        sync.Mutex
	words     []domain.Word
	users     map[int64]string
	userWords []domain.UserWord
	nextID    int64
	clock     time.Time
	err       error
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[int64]string),
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *MemoryStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *MemoryStore) findWord(target string) (domain.Word, bool) {
	for _, w := range s.words {
		if w.Target == target {
			return w, true
		}
	}
	return domain.Word{}, false
}

func (s *MemoryStore) link(userID int64, w domain.Word) bool {
	for _, uw := range s.userWords {
		if uw.UserID == userID && uw.Target == w.Target {
			return false
		}
	}
	s.clock = s.clock.Add(time.Second)
	s.userWords = append(s.userWords, domain.UserWord{
		ID:          s.id(),
		UserID:      userID,
		Target:      w.Target,
		Translation: w.Translation,
		CreatedAt:   s.clock,
	})
	return true
}

// RegisterUser creates the user with the whole dictionary as its deck, or renames it
func (s *MemoryStore) RegisterUser(userID int64, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	_, exists := s.users[userID]
	s.users[userID] = username
	if exists {
		return false, nil
	}
	for _, w := range s.words {
		s.link(userID, w)
	}
	return true, nil
}

func (s *MemoryStore) SeedWords(pairs []domain.WordPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for _, p := range pairs {
		if _, ok := s.findWord(p.Target); !ok {
			s.words = append(s.words, domain.Word{ID: s.id(), Target: p.Target, Translation: p.Translation})
		}
	}
	return nil
}

func (s *MemoryStore) AddUserWord(userID int64, username string, pair domain.WordPair) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.users[userID]; !ok {
		return false, fmt.Errorf("user %d is not registered", userID)
	}
	w, ok := s.findWord(pair.Target)
	if !ok {
		w = domain.Word{ID: s.id(), Target: pair.Target, Translation: pair.Translation}
		s.words = append(s.words, w)
	}
	return s.link(userID, w), nil
}

func (s *MemoryStore) GetUserWords(userID int64) ([]domain.UserWord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.UserWord
	for _, uw := range s.userWords {
		if uw.UserID == userID {
			out = append(out, uw)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) DeleteUserWord(userID, userWordID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	for i, uw := range s.userWords {
		if uw.ID == userWordID && uw.UserID == userID {
			s.userWords = append(s.userWords[:i], s.userWords[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// RandomTargets returns the first limit targets in insertion order
func (s *MemoryStore) RandomTargets(exclude string, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []string
	for _, w := range s.words {
		if len(out) == limit {
			break
		}
		if w.Target != exclude {
			out = append(out, w.Target)
		}
	}
	return out, nil
}

// UserWordCount counts deck entries of a user
func (s *MemoryStore) UserWordCount(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, uw := range s.userWords {
		if uw.UserID == userID {
			n++
		}
	}
	return n
}

// WordCount counts dictionary entries
func (s *MemoryStore) WordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words)
}

// SetErr makes subsequent calls fail with err, or succeed again when err is nil
func (s *MemoryStore) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}
