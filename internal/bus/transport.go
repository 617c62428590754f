package bus

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Transport moves raw payloads between channels.
type Transport interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	// Subscribe returns a channel of payloads that is closed once ctx is cancelled.
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Ping(ctx context.Context) error
	Close() error
}

// RedisTransport implements Transport on Redis Pub/Sub.
type RedisTransport struct {
	rdb *redis.Client
}

// NewRedisTransport wraps an already connected client.
func NewRedisTransport(rdb *redis.Client) *RedisTransport {
	return &RedisTransport{rdb: rdb}
}

// Publish sends payload to a Pub/Sub channel.
func (t *RedisTransport) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := t.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("bus: publish %s: %w", channel, err)
	}
	return nil
}

// Subscribe waits for the subscription confirmation before returning, so a publish issued
// afterwards cannot race past it.
func (t *RedisTransport) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	pubsub := t.rdb.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("bus: subscribe %s: %w", channel, err)
	}

	out := make(chan []byte, 1)
	go func() {
		defer close(out)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (t *RedisTransport) Ping(ctx context.Context) error {
	if err := t.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("bus: ping: %w", err)
	}
	return nil
}

func (t *RedisTransport) Close() error {
	return t.rdb.Close()
}
