// Package session keeps the transient per-chat quiz state.
package session

import (
	"sync"

	"wordcards/internal/domain"
)

// Session is the state of one chat
type Session struct {
	// Question is the card on screen, nil when none was drawn yet
	Question *domain.Question
	Mode     domain.InputMode
	// Registered is set once the user row and starting deck are stored
	Registered bool
}

// HasQuestion reports whether a card is currently shown
func (s Session) HasQuestion() bool {
	return s.Question != nil
}

// Store maps chat ids to sessions
type Store interface {
	// Get returns the chat session and whether the chat was seen before
	Get(chatID int64) (Session, bool)
	SetQuestion(chatID int64, q domain.Question)
	ClearQuestion(chatID int64)
	SetMode(chatID int64, mode domain.InputMode)
	MarkRegistered(chatID int64)
	Len() int
}

// MemoryStore is a process-local Store. Entries never expire.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]*Session),
	}
}

// Get returns a copy of the chat session, or an empty quiz session
func (m *MemoryStore) Get(chatID int64) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[chatID]
	if !ok {
		return Session{Mode: domain.ModeQuiz}, false
	}

	out := Session{Mode: sess.Mode, Registered: sess.Registered}
	if sess.Question != nil {
		q := *sess.Question
		out.Question = &q
	}
	return out, true
}

// SetQuestion replaces the card shown in the chat
func (m *MemoryStore) SetQuestion(chatID int64, q domain.Question) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entry(chatID).Question = &q
}

// ClearQuestion forgets the card shown in the chat
func (m *MemoryStore) ClearQuestion(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entry(chatID).Question = nil
}

// SetMode sets how the next text message of the chat is read
func (m *MemoryStore) SetMode(chatID int64, mode domain.InputMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entry(chatID).Mode = mode
}

// MarkRegistered records that the chat user is stored
func (m *MemoryStore) MarkRegistered(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entry(chatID).Registered = true
}

// Len returns the number of known chats
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// entry must be called with mu held
func (m *MemoryStore) entry(chatID int64) *Session {
	sess, ok := m.sessions[chatID]
	if !ok {
		sess = &Session{Mode: domain.ModeQuiz}
		m.sessions[chatID] = sess
	}
	return sess
}
