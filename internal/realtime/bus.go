package realtime

import (
	"context"
	"errors"
	"sync"
)

// Bus carries room messages between API instances.
type Bus interface {
	Publish(ctx context.Context, msg Message) error
	StartForwarder(ctx context.Context, onMsg func(m Message)) error
	Close() error
}

type localBus struct {
	mu       sync.RWMutex
	handlers []func(Message)
}

// NewLocalBus delivers messages in-process, for a single instance without Redis.
func NewLocalBus() Bus {
	return &localBus{}
}

func (b *localBus) Publish(_ context.Context, msg Message) error {
	b.mu.RLock()
	handlers := append([]func(Message){}, b.handlers...)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(msg)
	}
	return nil
}

func (b *localBus) StartForwarder(_ context.Context, onMsg func(m Message)) error {
	if onMsg == nil {
		return errors.New("onMsg callback required")
	}
	b.mu.Lock()
	b.handlers = append(b.handlers, onMsg)
	b.mu.Unlock()
	return nil
}

func (b *localBus) Close() error { return nil }
