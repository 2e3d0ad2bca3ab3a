// Package notify fans messages out to every subscriber of a topic: board
// views to the clients watching the board, and board commands to every
// server process sharing the game.
package notify

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// subscriberBuffer is how many messages a slow subscriber may fall behind
// before Local starts dropping them for it.
const subscriberBuffer = 16

// Broker publishes messages and hands out subscriptions to them. The returned
// cancel func releases the subscription and closes its channel.
type Broker[T any] interface {
	Publish(ctx context.Context, msg T) error
	Subscribe(ctx context.Context) (<-chan T, func(), error)
}

var (
	_ Broker[entity.Command] = (*Local[entity.Command])(nil)
	_ Broker[entity.Command] = (*Redis[entity.Command])(nil)
)
