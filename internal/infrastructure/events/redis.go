package events

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/meetsync-team/meetsync/internal/domain/repositories"
)

// RedisBus implements the event bus over Redis pub/sub. Each subscription
// runs its own receive goroutine; Unsubscribe closes the underlying channel
// subscription and stops the goroutine.
type RedisBus struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisBus creates an event bus backed by Redis pub/sub
func NewRedisBus(client *redis.Client, logger *zap.Logger) *RedisBus {
	return &RedisBus{
		client: client,
		logger: logger,
	}
}

// Publish emits an event on a topic
func (b *RedisBus) Publish(ctx context.Context, topic string, payload []byte) error {
	return b.client.Publish(ctx, topic, payload).Err()
}

// Subscribe registers a handler for a topic. The returned handle is safe to
// call more than once.
func (b *RedisBus) Subscribe(ctx context.Context, topic string, handler func(payload []byte)) (repositories.UnsubscribeFunc, error) {
	pubsub := b.client.Subscribe(ctx, topic)

	// Force the subscription to be established before returning so callers
	// never miss events published right after Subscribe.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				handler([]byte(msg.Payload))
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(done)
			if err := pubsub.Close(); err != nil && b.logger != nil {
				b.logger.Warn("failed to close pubsub subscription",
					zap.String("topic", topic),
					zap.Error(err),
				)
			}
		})
	}

	return unsubscribe, nil
}
