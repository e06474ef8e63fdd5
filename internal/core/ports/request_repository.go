// Package ports defines the contracts between the request lifecycle core and
// the infrastructure it runs on: the registry of requests and participants,
// the transaction boundary around them, and the sink for lifecycle events.
package ports

import (
	"context"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for request aggregates.
//
// Writes are optimistic: Update succeeds only if the stored revision still
// equals the aggregate's Version, and bumps the version on success.
type RequestRepository interface {
	// Add persists a newly created request.
	// Returns errs.ConflictError if the identifier is already taken.
	Add(ctx context.Context, aggregate *request.Request) error

	// Update persists a transition of an existing request.
	// Returns errs.ObjectNotFoundError if the request does not exist and
	// errs.ConflictError if it was changed concurrently.
	Update(ctx context.Context, aggregate *request.Request) error

	// Get loads a request by identifier.
	// Returns errs.ObjectNotFoundError if absent.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)
}
