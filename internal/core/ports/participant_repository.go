package ports

import (
	"context"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
)

// ParticipantRepository is the registry of actors and satellites.
// Identifiers are unique per role; the same ID may exist once as a customer
// and once as a company.
type ParticipantRepository interface {
	// Add registers an actor. Returns errs.ConflictError if the (ID, role) pair exists.
	Add(ctx context.Context, actor *participant.Actor) error

	// Lookup resolves an actor by identifier and role.
	// Returns errs.ObjectNotFoundError if no actor is registered under that role.
	Lookup(ctx context.Context, ref participant.ActorRef) (*participant.Actor, error)

	// AddSatellite registers a satellite. Returns errs.ConflictError if the ID exists.
	AddSatellite(ctx context.Context, satellite *participant.Satellite) error

	// GetSatellite loads a satellite with its exclusion list.
	GetSatellite(ctx context.Context, id kernel.ParticipantID) (*participant.Satellite, error)
}
