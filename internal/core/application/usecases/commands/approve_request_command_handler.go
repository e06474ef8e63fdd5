package commands

import (
	"context"
	"log/slog"

	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/core/domain/services"
)

// ApproveRequestCommandHandler runs the approval of a request.
//
// A compliance rejection is saved and committed like any other transition;
// the handler then returns the errs.ComplianceViolationError so the caller
// learns why the request ended up REJECTED.
type ApproveRequestCommandHandler struct {
	uowFactory UoWFactory
	approvals  services.ApprovalService
	logger     *slog.Logger
}

// NewApproveRequestCommandHandler creates a handler for approvals.
// Requires a UoWFactory for the request and the participant registry, and the
// ApprovalService that applies the compliance rules.
func NewApproveRequestCommandHandler(
	uowFactory UoWFactory,
	approvals services.ApprovalService,
	logger *slog.Logger,
) ApproveRequestCommandHandler {
	return ApproveRequestCommandHandler{
		uowFactory: uowFactory,
		approvals:  approvals,
		logger:     logger.With("component", "ApproveRequestCommandHandler"),
	}
}

// Handle loads the request and refuses a terminal one with errs.ErrAlreadyClosed
// before any participant is resolved. It then resolves the approver, the
// applicant and the issuing satellite and lets the ApprovalService decide.
// A compliance rejection is committed and returned as errs.ErrComplianceViolation.
func (h ApproveRequestCommandHandler) Handle(ctx context.Context, cmd ApproveRequestCommand) error {
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

	requestRepo := uow.RequestRepository()
	participants := uow.ParticipantRepository()

	req, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	// A terminal request is refused before any participant is resolved.
	if req.Status().IsTerminal() {
		return req.Status().ValidateApprove()
	}

	approver, err := participants.Lookup(ctx, cmd.Approver())
	if err != nil {
		return err
	}

	applicant, err := participants.Lookup(ctx, participant.ActorRef{ID: req.Applicant(), Role: participant.Customer})
	if err != nil {
		return err
	}

	satellite, err := participants.GetSatellite(ctx, req.IssuingSatellite())
	if err != nil {
		return err
	}

	outcome, approveErr := h.approvals.Approve(req, approver, applicant, satellite)
	if outcome == services.OutcomeNone {
		return approveErr
	}

	if outcome == services.OutcomeAcknowledged {
		h.logger.WarnContext(ctx, "approval by non-regulator left status unchanged",
			"request_id", req.ID().String(),
			"approver", approver.Ref().String(),
			"status", req.Status().String())
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return approveErr
}
