package commands

import (
	"errors"

	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/pkg/guard"
)

var ErrRegisterParticipantCommandIsNotConstructed = errors.New(
	"RegisterParticipantCommand must be created via NewRegisterParticipantCommand constructor",
)

// RegisterParticipantCommand adds a customer, company, regulator or ground
// station to the registry.
type RegisterParticipantCommand struct {
	actor *participant.Actor

	guard guard.ConstructorGuard
}

// NewRegisterParticipantCommand validates the participant with the same rules
// the registry applies.
func NewRegisterParticipantCommand(ref participant.ActorRef, profile participant.Profile) (RegisterParticipantCommand, error) {
	actor, err := participant.NewActor(ref, profile)
	if err != nil {
		return RegisterParticipantCommand{}, err
	}

	return RegisterParticipantCommand{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterParticipantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParticipantCommandIsNotConstructed)
}

func (c RegisterParticipantCommand) Actor() *participant.Actor {
	return c.actor
}
