package common

import (
	"context"
	"sync"
)

// GenericSubscriber fans a stream of events out to named subscribers
type GenericSubscriber[T any] interface {
	Subscribe(subscriberName string) <-chan T
	Publish(data T)
}

// GenericSubscriberImpl delivers every published event to every subscriber, in publish order.
// Publish blocks while a subscriber buffer is full so slow consumers never miss events.
type GenericSubscriberImpl[T any] struct {
	bufferSize int
	// map of subscribers with names
	subs map[chan T]string
	mu   sync.RWMutex
}

// NewGenericSubscriberImpl creates a subscriber set whose channels buffer bufferSize events
func NewGenericSubscriberImpl[T any](bufferSize int) *GenericSubscriberImpl[T] {
	return &GenericSubscriberImpl[T]{
		bufferSize: bufferSize,
		subs:       make(map[chan T]string),
	}
}

func (g *GenericSubscriberImpl[T]) Subscribe(subscriberName string) <-chan T {
	ch := make(chan T, g.bufferSize)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subs[ch] = subscriberName
	return ch
}

func (g *GenericSubscriberImpl[T]) Publish(data T) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for ch := range g.subs {
		ch <- data
	}
}

// PublishWithContext is Publish that gives up when ctx is done while waiting on a full buffer
func (g *GenericSubscriberImpl[T]) PublishWithContext(ctx context.Context, data T) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for ch := range g.subs {
		select {
		case ch <- data:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Subscribers returns the names of the current subscribers
func (g *GenericSubscriberImpl[T]) Subscribers() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := make([]string, 0, len(g.subs))
	for _, name := range g.subs {
		names = append(names, name)
	}
	return names
}
