package commands

import (
	"context"
)

// RegisterParticipantCommandHandler adds an actor to the registry.
type RegisterParticipantCommandHandler struct {
	uowFactory ParticipantUoWFactory
}

func NewRegisterParticipantCommandHandler(uowFactory ParticipantUoWFactory) RegisterParticipantCommandHandler {
	return RegisterParticipantCommandHandler{uowFactory: uowFactory}
}

func (h RegisterParticipantCommandHandler) Handle(ctx context.Context, cmd RegisterParticipantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ParticipantRepository().Add(ctx, cmd.Actor()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
