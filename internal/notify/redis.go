package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Redis relays messages as JSON over a pub/sub channel so that every server
// process attached to the same channel receives them in the same order.
// Nothing is stored: a process that subscribes late misses earlier messages.
type Redis[T any] struct {
	logger  *slog.Logger
	client  *redis.Client
	channel string
}

// Dial connects to redis and checks the connection.
func Dial(ctx context.Context, addr string) (*redis.Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return conn, nil
}

func NewRedis[T any](logger *slog.Logger, client *redis.Client, channel string) *Redis[T] {
	return &Redis[T]{
		logger:  logger.With("component", "notify.redis", "channel", channel),
		client:  client,
		channel: channel,
	}
}

func (that *Redis[T]) Publish(ctx context.Context, msg T) error {
	msgJSON, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("could not marshal message: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, msgJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// Subscribe delivers messages without dropping them: a subscriber that stops
// reading holds up its own subscription only.
func (that *Redis[T]) Subscribe(ctx context.Context) (<-chan T, func(), error) {
	log := that.logger.With("method", "Subscribe")

	pubsub := that.client.Subscribe(ctx, that.channel)

	// wait for the subscription to be confirmed, otherwise early publishes are lost
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to %s: %w", that.channel, err)
	}

	out := make(chan T, subscriberBuffer)
	done := make(chan struct{})

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)

			if err := pubsub.Close(); err != nil {
				log.Error("failed to close subscription", "error", err)
			}
		})
	}

	go func() {
		defer close(out)

		messages := pubsub.Channel()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				cancel()
				return
			case raw, ok := <-messages:
				if !ok {
					return
				}

				var msg T
				if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
					log.Error("failed to unmarshal message", "error", err)
					continue
				}

				select {
				case out <- msg:
				case <-done:
					return
				case <-ctx.Done():
					cancel()
					return
				}
			}
		}
	}()

	return out, cancel, nil
}
