package commands

import (
	"context"

	"servicerequest/internal/core/domain/model/request"
)

// SendToGroundStationCommandHandler hands an approved request over to a ground station.
// The evidence is appended to the request history and ShippedToStation is
// published once the change is committed.
//
// Example:
//
//	handler := NewSendToGroundStationCommandHandler(uowFactory)
//	cmd, _ := NewSendToGroundStationCommand(requestID, "pass scheduled")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrAlreadyClosed):
//	    log.Println("Request is closed")
//	case errors.Is(err, errs.ErrWrongPredecessorState):
//	    log.Println("Request is not approved yet")
//	case errors.Is(err, errs.ErrConflict):
//	    log.Println("Request changed concurrently, retry")
//	case err != nil:
//	    log.Printf("Hand-off failed: %v", err)
//	}
type SendToGroundStationCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewSendToGroundStationCommandHandler creates a handler for ground station hand-offs.
// Requires a RequestUoWFactory for loading and saving the request in one transaction.
func NewSendToGroundStationCommandHandler(uowFactory RequestUoWFactory) SendToGroundStationCommandHandler {
	return SendToGroundStationCommandHandler{uowFactory: uowFactory}
}

// Handle loads the request, moves it to SEND_TO_STATION and commits.
// Returns errs.ErrObjectNotFound for an unknown request, errs.ErrAlreadyClosed
// or errs.ErrWrongPredecessorState when the status does not allow the hand-off,
// and errs.ErrConflict when another writer saved the request first.
func (h SendToGroundStationCommandHandler) Handle(ctx context.Context, cmd SendToGroundStationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, cmd.RequestID(), func(req *request.Request) error {
		return req.SendToGroundStation(cmd.Evidence())
	})
}
