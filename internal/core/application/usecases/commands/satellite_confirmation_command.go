package commands

import (
	"errors"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/pkg/guard"
)

var ErrSatelliteConfirmationCommandIsNotConstructed = errors.New(
	"SatelliteConfirmationCommand must be created via NewSatelliteConfirmationCommand constructor",
)

// SatelliteConfirmationCommand records the satellite's acceptance of the tasking.
type SatelliteConfirmationCommand struct { //nolint:recvcheck //using for validation
	requestRef
	evidence string

	guard guard.ConstructorGuard
}

// NewSatelliteConfirmationCommand refuses blank evidence before the request
// is loaded, so ValueIsRequired wins over AlreadyClosed.
func NewSatelliteConfirmationCommand(requestID kernel.UUID, evidence string) (SatelliteConfirmationCommand, error) {
	cmd := SatelliteConfirmationCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		requireText("evidence", evidence),
	); err != nil {
		return SatelliteConfirmationCommand{}, err
	}
	cmd.evidence = evidence

	return cmd, nil
}

func (c SatelliteConfirmationCommand) Validate() error {
	return c.guard.Validate(ErrSatelliteConfirmationCommandIsNotConstructed)
}

// Evidence returns the proof artifact appended to the request.
func (c SatelliteConfirmationCommand) Evidence() string {
	return c.evidence
}
