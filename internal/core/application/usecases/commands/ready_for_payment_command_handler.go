package commands

import (
	"context"

	"servicerequest/internal/core/domain/model/request"
)

// ReadyForPaymentCommandHandler moves a request with downloaded data to READY_FOR_PAYMENT.
type ReadyForPaymentCommandHandler struct {
	uowFactory RequestUoWFactory
}

func NewReadyForPaymentCommandHandler(uowFactory RequestUoWFactory) ReadyForPaymentCommandHandler {
	return ReadyForPaymentCommandHandler{uowFactory: uowFactory}
}

// Handle marks the request payable. Only RECEIVING_DATA can move forward.
func (h ReadyForPaymentCommandHandler) Handle(ctx context.Context, cmd ReadyForPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, cmd.RequestID(), func(req *request.Request) error {
		return req.ReadyForPayment()
	})
}
