package middleware

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	tele "gopkg.in/telebot.v3"
)

func newContext(t *testing.T, chatID int64) tele.Context {
	t.Helper()
	bot, err := tele.NewBot(tele.Settings{Offline: true})
	require.NoError(t, err)
	return bot.NewContext(tele.Update{
		ID: 100,
		Message: &tele.Message{
			Text:   "hello",
			Chat:   &tele.Chat{ID: chatID},
			Sender: &tele.User{ID: chatID, Username: "alice"},
		},
	})
}

func TestRecover(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	handler := Recover(zap.New(core))(func(c tele.Context) error {
		panic("boom")
	})

	var err error
	assert.NotPanics(t, func() {
		err = handler(newContext(t, 1))
	})
	assert.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "boom", logs.All()[0].ContextMap()["panic"])
}

func TestRecover_PassesErrors(t *testing.T) {
	want := errors.New("send failed")
	handler := Recover(zap.NewNop())(func(c tele.Context) error {
		return want
	})

	assert.Equal(t, want, handler(newContext(t, 1)))
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name          string
		handlerErr    error
		expectedLevel string
	}{
		{name: "success", expectedLevel: "info"},
		{name: "failure", handlerErr: errors.New("send failed"), expectedLevel: "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			handler := Logging(zap.New(core))(func(c tele.Context) error {
				return tt.handlerErr
			})

			err := handler(newContext(t, 42))

			assert.Equal(t, tt.handlerErr, err)
			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.expectedLevel, entry.Level.String())
			assert.Equal(t, int64(42), entry.ContextMap()["chat_id"])
			assert.Equal(t, "alice", entry.ContextMap()["username"])
		})
	}
}

func TestSerializeChat_SameChatRunsSequentially(t *testing.T) {
	locker := NewChatLocker()

	var active, maxActive int32
	handler := SerializeChat(locker)(func(c tele.Context) error {
		n := atomic.AddInt32(&active, 1)
		for {
			m := atomic.LoadInt32(&maxActive)
			if n <= m || atomic.CompareAndSwapInt32(&maxActive, m, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt32(&active, -1)
		return nil
	})

	ctx := newContext(t, 1)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = handler(ctx)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxActive))
}

func TestChatLocker_DifferentChatsDoNotBlock(t *testing.T) {
	locker := NewChatLocker()

	unlockFirst := locker.Lock(1)
	defer unlockFirst()

	done := make(chan struct{})
	go func() {
		unlock := locker.Lock(2)
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock for another chat was blocked")
	}
}
