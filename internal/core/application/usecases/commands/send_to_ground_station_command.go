package commands

import (
	"errors"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/pkg/guard"
)

var ErrSendToGroundStationCommandIsNotConstructed = errors.New(
	"SendToGroundStationCommand must be created via NewSendToGroundStationCommand constructor",
)

// SendToGroundStationCommand hands an approved request over to a ground station.
type SendToGroundStationCommand struct { //nolint:recvcheck //using for validation
	requestRef
	evidence string

	guard guard.ConstructorGuard
}

// NewSendToGroundStationCommand builds the hand-off command. Blank evidence is
// refused here with errs.ErrValueIsRequired, before the request is loaded, so
// it is reported ahead of lifecycle errors such as AlreadyClosed.
func NewSendToGroundStationCommand(requestID kernel.UUID, evidence string) (SendToGroundStationCommand, error) {
	cmd := SendToGroundStationCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		requireText("evidence", evidence),
	); err != nil {
		return SendToGroundStationCommand{}, err
	}
	cmd.evidence = evidence

	return cmd, nil
}

func (c SendToGroundStationCommand) Validate() error {
	return c.guard.Validate(ErrSendToGroundStationCommandIsNotConstructed)
}

// Evidence returns the proof artifact appended to the request.
func (c SendToGroundStationCommand) Evidence() string {
	return c.evidence
}
