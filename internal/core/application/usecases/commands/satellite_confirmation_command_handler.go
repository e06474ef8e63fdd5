package commands

import (
	"context"

	"servicerequest/internal/core/domain/model/request"
)

// SatelliteConfirmationCommandHandler moves a received request to SATELLITE_CONFIRMATION.
type SatelliteConfirmationCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewSatelliteConfirmationCommandHandler creates a handler for satellite acknowledgements.
func NewSatelliteConfirmationCommandHandler(uowFactory RequestUoWFactory) SatelliteConfirmationCommandHandler {
	return SatelliteConfirmationCommandHandler{uowFactory: uowFactory}
}

func (h SatelliteConfirmationCommandHandler) Handle(ctx context.Context, cmd SatelliteConfirmationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, cmd.RequestID(), func(req *request.Request) error {
		return req.SatelliteConfirmation(cmd.Evidence())
	})
}
