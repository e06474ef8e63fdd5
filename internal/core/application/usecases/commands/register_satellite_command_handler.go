package commands

import (
	"context"
)

// RegisterSatelliteCommandHandler adds a satellite to the registry.
type RegisterSatelliteCommandHandler struct {
	uowFactory ParticipantUoWFactory
}

func NewRegisterSatelliteCommandHandler(uowFactory ParticipantUoWFactory) RegisterSatelliteCommandHandler {
	return RegisterSatelliteCommandHandler{uowFactory: uowFactory}
}

func (h RegisterSatelliteCommandHandler) Handle(ctx context.Context, cmd RegisterSatelliteCommand) error {
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

	if err := uow.ParticipantRepository().AddSatellite(ctx, cmd.Satellite()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
