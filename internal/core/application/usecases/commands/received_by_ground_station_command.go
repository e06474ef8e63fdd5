package commands

import (
	"errors"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/pkg/guard"
)

var ErrReceivedByGroundStationCommandIsNotConstructed = errors.New(
	"ReceivedByGroundStationCommand must be created via NewReceivedByGroundStationCommand constructor",
)

// ReceivedByGroundStationCommand records that the ground station took the request in.
type ReceivedByGroundStationCommand struct { //nolint:recvcheck //using for validation
	requestRef
	evidence string

	guard guard.ConstructorGuard
}

// NewReceivedByGroundStationCommand refuses blank evidence before the request
// is loaded, so ValueIsRequired wins over AlreadyClosed.
func NewReceivedByGroundStationCommand(requestID kernel.UUID, evidence string) (ReceivedByGroundStationCommand, error) {
	cmd := ReceivedByGroundStationCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		requireText("evidence", evidence),
	); err != nil {
		return ReceivedByGroundStationCommand{}, err
	}
	cmd.evidence = evidence

	return cmd, nil
}

func (c ReceivedByGroundStationCommand) Validate() error {
	return c.guard.Validate(ErrReceivedByGroundStationCommandIsNotConstructed)
}

// Evidence returns the proof artifact appended to the request.
func (c ReceivedByGroundStationCommand) Evidence() string {
	return c.evidence
}
