package commands

import (
	"context"

	"servicerequest/internal/core/domain/model/request"
)

// CloseRequestCommandHandler moves a paid request to CLOSED.
//
// Example:
//
//	handler := NewCloseRequestCommandHandler(uowFactory)
//	cmd, _ := NewCloseRequestCommand(requestID, "invoice settled")
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrWrongPredecessorState) {
//	    log.Println("Request is not ready for payment")
//	}
type CloseRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCloseRequestCommandHandler creates a handler for closing paid requests.
func NewCloseRequestCommandHandler(uowFactory RequestUoWFactory) CloseRequestCommandHandler {
	return CloseRequestCommandHandler{uowFactory: uowFactory}
}

// Handle records the close reason and commits. A request outside
// READY_FOR_PAYMENT fails with errs.ErrWrongPredecessorState, one that is
// already terminal with errs.ErrAlreadyClosed.
func (h CloseRequestCommandHandler) Handle(ctx context.Context, cmd CloseRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, cmd.RequestID(), func(req *request.Request) error {
		return req.Close(cmd.CloseReason())
	})
}
