package session

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// Channel is the pub/sub channel for session-change fan-out between
// storefront instances.
const Channel = "storefront:session-changed"

// Change kinds.
const (
	ChangeAuth    = "auth"
	ChangeCart    = "cart"
	ChangeProfile = "profile"
)

// Change announces that a session's auth, cart, or profile state moved.
// Delivery is best-effort; every consumer also re-reads the shared store
// on its own schedule, so a missed message only delays convergence.
type Change struct {
	SessionID string `json:"session_id"`
	Kind      string `json:"kind"`
}

// Broadcaster fans session changes out over Redis pub/sub. It replaces
// the browser's storage/custom-event pair for the gateway.
type Broadcaster struct {
	rdb *redis.Client
}

// NewBroadcaster wraps a Redis client.
func NewBroadcaster(rdb *redis.Client) *Broadcaster {
	return &Broadcaster{rdb: rdb}
}

// Publish announces a change. Failures are logged, not returned; the
// broadcast is advisory.
func (b *Broadcaster) Publish(ctx context.Context, change Change) {
	data, err := json.Marshal(change)
	if err != nil {
		log.Printf("[Session] Failed to marshal change: %v", err)
		return
	}
	if err := b.rdb.Publish(ctx, Channel, data).Err(); err != nil {
		log.Printf("[Session] Failed to publish change: %v", err)
	}
}

// Run subscribes and dispatches changes to handler until ctx is done.
func (b *Broadcaster) Run(ctx context.Context, handler func(Change)) error {
	sub := b.rdb.Subscribe(ctx, Channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var change Change
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				log.Printf("[Session] Failed to unmarshal change: %v", err)
				continue
			}
			handler(change)
		}
	}
}
