// Package kafka publishes request lifecycle events to a Kafka topic.
// Records are keyed by request id, so all events of one request land on the
// same partition in the order they were committed.
package kafka

import (
	"context"
	"fmt"

	"servicerequest/internal/adapters/out/notify"
	"servicerequest/internal/core/domain/model/request"

	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	headerEventName = "event-name"
	headerEventID   = "event-id"
)

// Publisher produces one record per event.
type Publisher struct {
	client *kgo.Client
	topic  string
}

// New connects to brokers and checks that at least one is reachable.
func New(ctx context.Context, brokers []string, topic string) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.AllowAutoTopicCreation(),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("kafka ping failed: %w", err)
	}

	return &Publisher{client: client, topic: topic}, nil
}

func (p *Publisher) Publish(ctx context.Context, events ...request.Event) error {
	records := make([]*kgo.Record, 0, len(events))
	for _, e := range events {
		payload, err := notify.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode %s: %w", e.Name(), err)
		}
		records = append(records, &kgo.Record{
			Topic: p.topic,
			Key:   []byte(e.RequestID().String()),
			Value: payload,
			Headers: []kgo.RecordHeader{
				{Key: headerEventName, Value: []byte(e.Name())},
				{Key: headerEventID, Value: []byte(e.ID().String())},
			},
		})
	}

	if err := p.client.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return fmt.Errorf("produce to %s: %w", p.topic, err)
	}
	return nil
}

// Health checks broker connectivity.
func (p *Publisher) Health(ctx context.Context) error {
	return p.client.Ping(ctx)
}

func (p *Publisher) Close() {
	p.client.Close()
}
