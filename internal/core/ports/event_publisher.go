package ports

import (
	"context"

	"servicerequest/internal/core/domain/model/request"
)

// EventPublisher delivers lifecycle events to external subscribers.
//
// Publish is only called after the transaction that produced the events has
// committed. Its error is logged by the caller and never undoes the transition.
type EventPublisher interface {
	Publish(ctx context.Context, events ...request.Event) error
}
