package notify

import (
	"context"
	"errors"

	"servicerequest/internal/core/domain/model/request"
	"servicerequest/internal/core/ports"
)

// Multi fans events out to several publishers. Every publisher is called even
// if an earlier one fails; the failures are joined.
type Multi []ports.EventPublisher

func (m Multi) Publish(ctx context.Context, events ...request.Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
