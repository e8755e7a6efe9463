package middleware

import (
	"sync"

	tele "gopkg.in/telebot.v3"
)

// ChatLocker hands out one mutex per chat
type ChatLocker struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewChatLocker creates an empty locker
func NewChatLocker() *ChatLocker {
	return &ChatLocker{locks: make(map[int64]*sync.Mutex)}
}

// Lock blocks until the chat is free and returns its unlock func
func (l *ChatLocker) Lock(chatID int64) func() {
	l.mu.Lock()
	lock, exists := l.locks[chatID]
	if !exists {
		lock = &sync.Mutex{}
		l.locks[chatID] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// SerializeChat handles updates of the same chat one at a time, in arrival order
// of the lock. Updates of different chats still run in parallel.
func SerializeChat(locker *ChatLocker) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat == nil {
				return next(c)
			}

			unlock := locker.Lock(chat.ID)
			defer unlock()
			return next(c)
		}
	}
}
