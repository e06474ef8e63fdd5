package commands

import (
	"context"

	"servicerequest/internal/core/domain/model/request"
)

// ReceivedByGroundStationCommandHandler moves a shipped request to RECEIVED_BY_STATION.
type ReceivedByGroundStationCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewReceivedByGroundStationCommandHandler creates a handler for station receipts.
func NewReceivedByGroundStationCommandHandler(uowFactory RequestUoWFactory) ReceivedByGroundStationCommandHandler {
	return ReceivedByGroundStationCommandHandler{uowFactory: uowFactory}
}

// Handle appends the receipt evidence and commits.
func (h ReceivedByGroundStationCommandHandler) Handle(ctx context.Context, cmd ReceivedByGroundStationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, cmd.RequestID(), func(req *request.Request) error {
		return req.ReceivedByGroundStation(cmd.Evidence())
	})
}
