package commands

import (
	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/pkg/errs"
)

// requestRef is embedded by every command that addresses an existing request.
type requestRef struct {
	requestID kernel.UUID
}

// RequestID returns the identifier of the request the command applies to.
func (r requestRef) RequestID() kernel.UUID {
	return r.requestID
}

func (r *requestRef) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.requestID = id
	return nil
}

func requireText(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
