// Package commands contains the operations that change the request registry.
// Every command is a validated value object; its handler runs one unit of work:
// load, validate, mutate, persist, commit. Events recorded on the aggregate are
// published by the unit of work after the commit.
package commands

import (
	"context"

	"servicerequest/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler needs.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequestRepoFactory provides access to the request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// ParticipantRepoFactory provides access to the participant registry within a transaction.
	ParticipantRepoFactory interface {
		ParticipantRepository() ports.ParticipantRepository
	}

	// RequestUoW is used by transitions that only touch the request itself.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// ParticipantUoW is used by registry maintenance commands.
	ParticipantUoW interface {
		TxManager
		ParticipantRepoFactory
	}

	ParticipantUoWFactory interface {
		Create() ParticipantUoW
	}

	// UoW is used when a request operation must resolve participants.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   requests := uow.RequestRepository()
	//   participants := uow.ParticipantRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		RequestRepoFactory
		ParticipantRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
