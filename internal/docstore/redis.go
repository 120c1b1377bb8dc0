package docstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"duty-roster-backend/internal/logger"

	"github.com/go-redis/redis/v8"
)

// DefaultChannelPrefix namespaces roster snapshot channels
const DefaultChannelPrefix = "roster:"

// receiveRetryDelay throttles reconnect attempts after a failed receive
const receiveRetryDelay = time.Second

// RedisNotifier fans out snapshots across processes with Redis Pub/Sub
type RedisNotifier struct {
	client *redis.Client
	prefix string
	log    *logger.Logger
}

// Ensure RedisNotifier implements Notifier
var _ Notifier = (*RedisNotifier)(nil)

// NewRedisNotifier creates a notifier publishing on prefix+key channels
func NewRedisNotifier(client *redis.Client, prefix string) *RedisNotifier {
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}
	return &RedisNotifier{
		client: client,
		prefix: prefix,
		log:    logger.New().WithField("component", "redis_notifier"),
	}
}

// Channel returns the Pub/Sub channel used for key
func (n *RedisNotifier) Channel(key string) string {
	return n.prefix + key
}

// Publish sends payload to every subscriber of key
func (n *RedisNotifier) Publish(ctx context.Context, key string, payload []byte) error {
	if err := n.client.Publish(ctx, n.Channel(key), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", n.Channel(key), err)
	}
	return nil
}

// Subscribe listens on the channel for key until the returned function is called.
// The subscription is confirmed before Subscribe returns, so no payload
// published afterwards is missed.
func (n *RedisNotifier) Subscribe(ctx context.Context, key string, handler func([]byte), onError func(error)) (func(), error) {
	channel := n.Channel(key)
	pubsub := n.client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			msg, err := pubsub.ReceiveMessage(loopCtx)
			if err != nil {
				if loopCtx.Err() != nil {
					return
				}
				n.log.WithField("channel", channel).Warnf("Pub/Sub receive failed: %v", err)
				if onError != nil {
					onError(err)
				}
				select {
				case <-loopCtx.Done():
					return
				case <-time.After(receiveRetryDelay):
				}
				continue
			}
			handler([]byte(msg.Payload))
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			_ = pubsub.Close()
			<-done
		})
	}, nil
}
