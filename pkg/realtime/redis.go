package realtime

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisBroker relays topics over redis pub/sub so every API instance sees
// messages written by the others.
type RedisBroker struct {
	client *redis.Client
	buffer int
	obs    DropObserver
	log    *zap.Logger
}

func NewRedisBroker(client *redis.Client, buffer int, obs DropObserver, log *zap.Logger) *RedisBroker {
	if buffer <= 0 {
		buffer = 64
	}
	if obs == nil {
		obs = noopObserver{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisBroker{client: client, buffer: buffer, obs: obs, log: log}
}

func (b *RedisBroker) Publish(ctx context.Context, topic string, payload []byte) error {
	return b.client.Publish(ctx, topic, payload).Err()
}

func (b *RedisBroker) Subscribe(ctx context.Context, topic string) (Subscription, error) {
	ps := b.client.Subscribe(ctx, topic)
	// Wait for the subscription confirmation so nothing published after
	// Subscribe returns is missed.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	s := &redisSub{ps: ps, ch: make(chan []byte, b.buffer), cancel: cancel}
	go s.pump(ctx, b, topic)
	return s, nil
}

// Close is a no-op: the client is owned by the caller.
func (b *RedisBroker) Close() error { return nil }

type redisSub struct {
	ps     *redis.PubSub
	ch     chan []byte
	cancel context.CancelFunc
	once   sync.Once
}

func (s *redisSub) C() <-chan []byte { return s.ch }

func (s *redisSub) Close() error {
	var err error
	s.once.Do(func() {
		s.cancel()
		err = s.ps.Close()
	})
	return err
}

func (s *redisSub) pump(ctx context.Context, b *RedisBroker, topic string) {
	defer close(s.ch)
	defer s.Close()
	in := s.ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-in:
			if !ok {
				return
			}
			select {
			case s.ch <- []byte(msg.Payload):
			default:
				b.log.Warn("dropping slow subscriber", zap.String("topic", topic))
				b.obs.SubscriberDropped()
				return
			}
		}
	}
}
