package commands

import (
	"errors"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/pkg/guard"
)

var ErrApproveRequestCommandIsNotConstructed = errors.New(
	"ApproveRequestCommand must be created via NewApproveRequestCommand constructor",
)

// ApproveRequestCommand records an approval by the given party.
type ApproveRequestCommand struct { //nolint:recvcheck //using for validation
	requestRef
	approver participant.ActorRef

	guard guard.ConstructorGuard
}

func NewApproveRequestCommand(requestID kernel.UUID, approver participant.ActorRef) (ApproveRequestCommand, error) {
	cmd := ApproveRequestCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setApprover(approver),
	); err != nil {
		return ApproveRequestCommand{}, err
	}

	return cmd, nil
}

func (c ApproveRequestCommand) Validate() error {
	return c.guard.Validate(ErrApproveRequestCommandIsNotConstructed)
}

// Approver returns the registry reference of the approving party.
func (c ApproveRequestCommand) Approver() participant.ActorRef {
	return c.approver
}

func (c *ApproveRequestCommand) setApprover(approver participant.ActorRef) error {
	if err := approver.Validate(); err != nil {
		return err
	}
	c.approver = approver
	return nil
}
