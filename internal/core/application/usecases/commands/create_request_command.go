package commands

import (
	"errors"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/request"
	"servicerequest/internal/pkg/guard"
)

var ErrCreateRequestCommandIsNotConstructed = errors.New(
	"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
)

// CreateRequestCommand opens a new service request.
//
// Example:
//
//	cmd, err := NewCreateRequestCommand(
//	    kernel.NewUUID(),
//	    kernel.MustParticipantID("Startup"),
//	    kernel.MustParticipantID("ESA"),
//	    kernel.MustParticipantID("ESA1"),
//	    request.NewDetails(france, "weekly imagery"),
//	)
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	requestRef
	applicant        kernel.ParticipantID
	beneficiary      kernel.ParticipantID
	issuingSatellite kernel.ParticipantID
	details          request.Details

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand validates identifiers. Whether the parties exist is
// checked by the handler.
func NewCreateRequestCommand(
	requestID kernel.UUID,
	applicant, beneficiary, issuingSatellite kernel.ParticipantID,
	details request.Details,
) (CreateRequestCommand, error) {
	cmd := CreateRequestCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setParties(applicant, beneficiary, issuingSatellite),
	); err != nil {
		return CreateRequestCommand{}, err
	}

	return cmd, nil
}

func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

func (c CreateRequestCommand) Applicant() kernel.ParticipantID {
	return c.applicant
}

func (c CreateRequestCommand) Beneficiary() kernel.ParticipantID {
	return c.beneficiary
}

func (c CreateRequestCommand) IssuingSatellite() kernel.ParticipantID {
	return c.issuingSatellite
}

func (c CreateRequestCommand) Details() request.Details {
	return c.details
}

func (c *CreateRequestCommand) setParties(applicant, beneficiary, issuingSatellite kernel.ParticipantID) error {
	if err := errors.Join(applicant.Validate(), beneficiary.Validate(), issuingSatellite.Validate()); err != nil {
		return err
	}
	c.applicant = applicant
	c.beneficiary = beneficiary
	c.issuingSatellite = issuingSatellite
	return nil
}
