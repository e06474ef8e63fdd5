package commands

import (
	"errors"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/pkg/guard"
)

var ErrRejectRequestCommandIsNotConstructed = errors.New(
	"RejectRequestCommand must be created via NewRejectRequestCommand constructor",
)

// RejectRequestCommand rejects a request that has not been approved yet, or
// one that is already in flight.
type RejectRequestCommand struct { //nolint:recvcheck //using for validation
	requestRef
	closeReason string

	guard guard.ConstructorGuard
}

// NewRejectRequestCommand requires a close reason. A blank reason fails here,
// ahead of any status check on the stored request.
func NewRejectRequestCommand(requestID kernel.UUID, closeReason string) (RejectRequestCommand, error) {
	cmd := RejectRequestCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		requireText("close reason", closeReason),
	); err != nil {
		return RejectRequestCommand{}, err
	}
	cmd.closeReason = closeReason

	return cmd, nil
}

func (c RejectRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectRequestCommandIsNotConstructed)
}

func (c RejectRequestCommand) CloseReason() string {
	return c.closeReason
}
