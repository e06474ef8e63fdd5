// Package redis publishes request lifecycle events on a Redis pub/sub channel.
package redis

import (
	"context"
	"fmt"

	"servicerequest/internal/adapters/out/notify"
	"servicerequest/internal/core/domain/model/request"

	"github.com/redis/go-redis/v9"
)

// Publisher sends every event envelope to one channel.
type Publisher struct {
	client  redis.Cmdable
	channel string
}

func NewPublisher(client redis.Cmdable, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

// Dial opens a client from a redis:// URL and pings it.
func Dial(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

func (p *Publisher) Publish(ctx context.Context, events ...request.Event) error {
	for _, e := range events {
		payload, err := notify.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode %s: %w", e.Name(), err)
		}
		if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
			return fmt.Errorf("publish %s to %s: %w", e.Name(), p.channel, err)
		}
	}
	return nil
}
