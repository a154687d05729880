package realtime

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// MemoryBroker delivers within one process. Publish never blocks: a subscriber
// whose buffer is full is disconnected and has to resume from its checkpoint.
type MemoryBroker struct {
	mu     sync.Mutex
	topics map[string]map[*memorySub]struct{}
	closed bool
	buffer int
	obs    DropObserver
	log    *zap.Logger
}

func NewMemoryBroker(buffer int, obs DropObserver, log *zap.Logger) *MemoryBroker {
	if buffer <= 0 {
		buffer = 64
	}
	if obs == nil {
		obs = noopObserver{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &MemoryBroker{
		topics: make(map[string]map[*memorySub]struct{}),
		buffer: buffer,
		obs:    obs,
		log:    log,
	}
}

type memorySub struct {
	b     *MemoryBroker
	topic string
	ch    chan []byte
	done  chan struct{}
	once  sync.Once
}

func (s *memorySub) C() <-chan []byte { return s.ch }

func (s *memorySub) Close() error {
	s.b.remove(s)
	return nil
}

func (b *MemoryBroker) Publish(_ context.Context, topic string, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	for s := range b.topics[topic] {
		select {
		case s.ch <- payload:
		default:
			b.log.Warn("dropping slow subscriber", zap.String("topic", topic))
			b.obs.SubscriberDropped()
			b.removeLocked(s)
		}
	}
	return nil
}

func (b *MemoryBroker) Subscribe(ctx context.Context, topic string) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrClosed
	}
	s := &memorySub{b: b, topic: topic, ch: make(chan []byte, b.buffer), done: make(chan struct{})}
	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[*memorySub]struct{})
		b.topics[topic] = subs
	}
	subs[s] = struct{}{}
	go func() {
		select {
		case <-ctx.Done():
			b.remove(s)
		case <-s.done:
		}
	}()
	return s, nil
}

func (b *MemoryBroker) remove(s *memorySub) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removeLocked(s)
}

func (b *MemoryBroker) removeLocked(s *memorySub) {
	s.once.Do(func() {
		if subs, ok := b.topics[s.topic]; ok {
			delete(subs, s)
			if len(subs) == 0 {
				delete(b.topics, s.topic)
			}
		}
		close(s.done)
		close(s.ch)
	})
}

// Subscribers returns the number of live subscriptions on topic.
func (b *MemoryBroker) Subscribers(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.topics[topic])
}

func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for _, subs := range b.topics {
		for s := range subs {
			b.removeLocked(s)
		}
	}
	return nil
}
