package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Local fans messages out to subscribers of the same process.
type Local[T any] struct {
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[string]chan T
}

func NewLocal[T any](logger *slog.Logger) *Local[T] {
	return &Local[T]{
		logger:      logger.With("component", "notify.local"),
		subscribers: make(map[string]chan T),
	}
}

// Publish never blocks. Publishers are serialized so that every subscriber
// receives messages in the same order.
func (that *Local[T]) Publish(_ context.Context, msg T) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	for id, ch := range that.subscribers {
		select {
		case ch <- msg:
		default:
			that.logger.Warn("subscriber is too slow, message dropped", "subscriber", id)
		}
	}

	return nil
}

func (that *Local[T]) Subscribe(ctx context.Context) (<-chan T, func(), error) {
	id := uuid.NewString()
	ch := make(chan T, subscriberBuffer)

	that.mu.Lock()
	that.subscribers[id] = ch
	that.mu.Unlock()

	done := make(chan struct{})

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			that.mu.Lock()
			delete(that.subscribers, id)
			close(ch)
			that.mu.Unlock()

			close(done)
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()

	return ch, cancel, nil
}

// Len returns the number of live subscriptions.
func (that *Local[T]) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.subscribers)
}
