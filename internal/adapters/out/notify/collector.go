package notify

import (
	"context"
	"log/slog"
	"slices"

	"servicerequest/internal/core/domain/model/request"
	"servicerequest/internal/core/ports"
)

// EventSource is an aggregate that records domain events.
type EventSource interface {
	DomainEvents() []request.Event
	ClearDomainEvents()
}

// Collector remembers the aggregates saved within one unit of work.
// It is not safe for concurrent use, like the unit of work that owns it.
type Collector struct {
	sources []EventSource
}

// Track registers aggregate if it records events. Saving the same aggregate
// twice tracks it once.
func (c *Collector) Track(aggregate any) {
	src, ok := aggregate.(EventSource)
	if !ok {
		return
	}
	if slices.Contains(c.sources, src) {
		return
	}
	c.sources = append(c.sources, src)
}

// Drain returns the pending events of all tracked aggregates in save order,
// clears them on the aggregates and forgets the aggregates.
func (c *Collector) Drain() []request.Event {
	var events []request.Event
	for _, src := range c.sources {
		events = append(events, src.DomainEvents()...)
		src.ClearDomainEvents()
	}
	c.sources = nil
	return events
}

// Discard drops pending events without returning them.
func (c *Collector) Discard() {
	_ = c.Drain()
}

// Dispatch publishes committed events. Errors are logged, never returned.
func Dispatch(ctx context.Context, publisher ports.EventPublisher, logger *slog.Logger, events []request.Event) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.ErrorContext(ctx, "failed to publish request events",
			"count", len(events),
			"error", err)
	}
}
