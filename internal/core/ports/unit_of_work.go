package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Domain events of requests
// saved through RequestRepository are published once Commit succeeds and
// dropped on Rollback.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then publishes collected events.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction.
	Rollback(ctx context.Context) error

	// RequestRepository returns a repository bound to the current transaction.
	RequestRepository() RequestRepository

	// ParticipantRepository returns a repository bound to the current transaction.
	ParticipantRepository() ParticipantRepository
}
