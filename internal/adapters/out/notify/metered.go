package notify

import (
	"context"

	"servicerequest/internal/core/domain/model/request"
	"servicerequest/internal/core/ports"
	"servicerequest/internal/pkg/metrics"
)

// Metered counts events and failed publish calls of the wrapped publisher.
type Metered struct {
	next    ports.EventPublisher
	metrics *metrics.Metrics
}

func NewMetered(next ports.EventPublisher, m *metrics.Metrics) *Metered {
	return &Metered{next: next, metrics: m}
}

func (p *Metered) Publish(ctx context.Context, events ...request.Event) error {
	for _, e := range events {
		p.metrics.IncEvent(e.Name())
	}
	if err := p.next.Publish(ctx, events...); err != nil {
		p.metrics.IncPublishFailure()
		return err
	}
	return nil
}
