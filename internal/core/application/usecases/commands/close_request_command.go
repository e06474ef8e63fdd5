package commands

import (
	"errors"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/pkg/guard"
)

var ErrCloseRequestCommandIsNotConstructed = errors.New(
	"CloseRequestCommand must be created via NewCloseRequestCommand constructor",
)

// CloseRequestCommand closes a request that is ready for payment.
type CloseRequestCommand struct { //nolint:recvcheck //using for validation
	requestRef
	closeReason string

	guard guard.ConstructorGuard
}

// NewCloseRequestCommand requires a close reason. A blank reason fails here,
// ahead of any status check on the stored request.
func NewCloseRequestCommand(requestID kernel.UUID, closeReason string) (CloseRequestCommand, error) {
	cmd := CloseRequestCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		requireText("close reason", closeReason),
	); err != nil {
		return CloseRequestCommand{}, err
	}
	cmd.closeReason = closeReason

	return cmd, nil
}

func (c CloseRequestCommand) Validate() error {
	return c.guard.Validate(ErrCloseRequestCommandIsNotConstructed)
}

func (c CloseRequestCommand) CloseReason() string {
	return c.closeReason
}
