package commands

import (
	"context"

	"servicerequest/internal/core/domain/model/request"
)

// GroundStationDownloadCommandHandler moves a confirmed request to RECEIVING_DATA.
type GroundStationDownloadCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewGroundStationDownloadCommandHandler creates a handler for recording downloaded data.
func NewGroundStationDownloadCommandHandler(uowFactory RequestUoWFactory) GroundStationDownloadCommandHandler {
	return GroundStationDownloadCommandHandler{uowFactory: uowFactory}
}

// Handle appends the evidence and the data reference in one step, then commits.
func (h GroundStationDownloadCommandHandler) Handle(ctx context.Context, cmd GroundStationDownloadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, cmd.RequestID(), func(req *request.Request) error {
		return req.GroundStationDownload(cmd.Evidence(), cmd.RequestedData())
	})
}
