// Package realtime fans conversation events out to live subscribers.
package realtime

import (
	"context"
	"errors"
)

// ErrClosed is returned by a broker after Close.
var ErrClosed = errors.New("realtime: broker closed")

// Broker publishes opaque payloads on named topics.
type Broker interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	// Subscribe starts delivery for topic. The subscription ends when ctx is
	// cancelled, Close is called or the subscriber falls behind; C is closed then.
	Subscribe(ctx context.Context, topic string) (Subscription, error)
	Close() error
}

type Subscription interface {
	C() <-chan []byte
	Close() error
}

// DropObserver is told when a subscriber is disconnected for falling behind.
type DropObserver interface {
	SubscriberDropped()
}

type noopObserver struct{}

func (noopObserver) SubscriberDropped() {}
