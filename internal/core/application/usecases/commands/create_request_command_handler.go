package commands

import (
	"context"

	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/core/domain/model/request"
)

// CreateRequestCommandHandler opens a request after resolving its parties.
// The applicant must be a registered customer, the beneficiary a registered
// company, and the issuing satellite must exist.
type CreateRequestCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateRequestCommandHandler creates a handler for opening requests.
// Requires a UoWFactory because parties are resolved through the participant
// registry in the same transaction that stores the request.
func NewCreateRequestCommandHandler(uowFactory UoWFactory) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{uowFactory: uowFactory}
}

// Handle resolves the applicant, beneficiary and issuing satellite, then
// stores the new request in AWAITING_APPROVAL. An unregistered party fails
// with errs.ErrObjectNotFound and nothing is stored.
func (h CreateRequestCommandHandler) Handle(ctx context.Context, cmd CreateRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	participants := uow.ParticipantRepository()

	if _, err := participants.Lookup(ctx, participant.ActorRef{ID: cmd.Applicant(), Role: participant.Customer}); err != nil {
		return err
	}
	if _, err := participants.Lookup(ctx, participant.ActorRef{ID: cmd.Beneficiary(), Role: participant.Company}); err != nil {
		return err
	}
	if _, err := participants.GetSatellite(ctx, cmd.IssuingSatellite()); err != nil {
		return err
	}

	req, err := request.NewRequest(
		cmd.RequestID(),
		cmd.Applicant(),
		cmd.Beneficiary(),
		cmd.IssuingSatellite(),
		cmd.Details(),
	)
	if err != nil {
		return err
	}

	if err = uow.RequestRepository().Add(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
