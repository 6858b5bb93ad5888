package events

import (
	"context"
	"sync"

	"github.com/meetsync-team/meetsync/internal/domain/repositories"
)

// MemoryBus is an in-process event bus. It backs single-node deployments
// without Redis and the usecase tests.
type MemoryBus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[string]map[int]func(payload []byte)
}

// NewMemoryBus creates an in-memory event bus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[string]map[int]func(payload []byte)),
	}
}

// Publish delivers the event synchronously to every subscriber of the topic
func (b *MemoryBus) Publish(_ context.Context, topic string, payload []byte) error {
	b.mu.RLock()
	subs := make([]func([]byte), 0, len(b.handlers[topic]))
	for _, h := range b.handlers[topic] {
		subs = append(subs, h)
	}
	b.mu.RUnlock()

	for _, h := range subs {
		h(payload)
	}
	return nil
}

// Subscribe registers a handler for a topic. The returned handle is
// idempotent.
func (b *MemoryBus) Subscribe(_ context.Context, topic string, handler func(payload []byte)) (repositories.UnsubscribeFunc, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[topic] == nil {
		b.handlers[topic] = make(map[int]func(payload []byte))
	}
	id := b.nextID
	b.nextID++
	b.handlers[topic][id] = handler

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.handlers[topic], id)
		})
	}

	return unsubscribe, nil
}
