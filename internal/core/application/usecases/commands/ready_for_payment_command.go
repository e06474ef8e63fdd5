package commands

import (
	"errors"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/pkg/guard"
)

var ErrReadyForPaymentCommandIsNotConstructed = errors.New(
	"ReadyForPaymentCommand must be created via NewReadyForPaymentCommand constructor",
)

// ReadyForPaymentCommand marks a delivered request as payable.
type ReadyForPaymentCommand struct { //nolint:recvcheck //using for validation
	requestRef

	guard guard.ConstructorGuard
}

func NewReadyForPaymentCommand(requestID kernel.UUID) (ReadyForPaymentCommand, error) {
	cmd := ReadyForPaymentCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setRequestID(requestID); err != nil {
		return ReadyForPaymentCommand{}, err
	}

	return cmd, nil
}

func (c ReadyForPaymentCommand) Validate() error {
	return c.guard.Validate(ErrReadyForPaymentCommandIsNotConstructed)
}
