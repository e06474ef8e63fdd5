package commands

import (
	"context"

	"servicerequest/internal/core/domain/model/request"
)

// RejectRequestCommandHandler moves a request to REJECTED.
// Any non-terminal request can be rejected; the close reason is kept on the
// request and carried by the RequestRejected event.
//
// Example:
//
//	handler := NewRejectRequestCommandHandler(uowFactory)
//	cmd, _ := NewRejectRequestCommand(requestID, "customer withdrew")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such request")
//	case errors.Is(err, errs.ErrAlreadyClosed):
//	    log.Println("Request is already closed")
//	case err != nil:
//	    log.Printf("Rejection failed: %v", err)
//	}
type RejectRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewRejectRequestCommandHandler creates a handler for manual rejections.
// Requires a RequestUoWFactory for transactional updates of the request.
func NewRejectRequestCommandHandler(uowFactory RequestUoWFactory) RejectRequestCommandHandler {
	return RejectRequestCommandHandler{uowFactory: uowFactory}
}

// Handle loads the request, rejects it and commits.
// Returns errs.ErrObjectNotFound, errs.ErrAlreadyClosed or errs.ErrConflict.
func (h RejectRequestCommandHandler) Handle(ctx context.Context, cmd RejectRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, cmd.RequestID(), func(req *request.Request) error {
		return req.Reject(cmd.CloseReason())
	})
}
