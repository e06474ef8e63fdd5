package commands

import (
	"errors"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/pkg/guard"
)

var ErrGroundStationDownloadCommandIsNotConstructed = errors.New(
	"GroundStationDownloadCommand must be created via NewGroundStationDownloadCommand constructor",
)

// GroundStationDownloadCommand attaches the downloaded data to a confirmed request.
type GroundStationDownloadCommand struct { //nolint:recvcheck //using for validation
	requestRef
	evidence      string
	requestedData string

	guard guard.ConstructorGuard
}

// NewGroundStationDownloadCommand requires both the evidence and the data
// reference. Blank values are refused here, before the request is loaded, so
// they are reported ahead of lifecycle errors such as AlreadyClosed.
func NewGroundStationDownloadCommand(
	requestID kernel.UUID,
	evidence, requestedData string,
) (GroundStationDownloadCommand, error) {
	cmd := GroundStationDownloadCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		requireText("evidence", evidence),
		requireText("requested data", requestedData),
	); err != nil {
		return GroundStationDownloadCommand{}, err
	}
	cmd.evidence = evidence
	cmd.requestedData = requestedData

	return cmd, nil
}

func (c GroundStationDownloadCommand) Validate() error {
	return c.guard.Validate(ErrGroundStationDownloadCommandIsNotConstructed)
}

func (c GroundStationDownloadCommand) Evidence() string {
	return c.evidence
}

// RequestedData returns the reference to the downloaded data.
func (c GroundStationDownloadCommand) RequestedData() string {
	return c.requestedData
}
