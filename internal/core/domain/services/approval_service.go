package services

import (
	"errors"
	"fmt"

	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/core/domain/model/request"
	"servicerequest/internal/pkg/errs"
)

// ApprovalOutcome tells the caller which branch of the approval was taken.
type ApprovalOutcome int

const (
	// OutcomeNone is returned together with an error when nothing changed.
	OutcomeNone ApprovalOutcome = iota
	// OutcomeApproved moved the request to APPROVED.
	OutcomeApproved
	// OutcomeAcknowledged recorded a non-regulator approval without a status change.
	OutcomeAcknowledged
	// OutcomeRejected rejected the request on compliance grounds. The request
	// was mutated and must be saved even though an error is returned.
	OutcomeRejected
)

func (o ApprovalOutcome) String() string {
	switch o {
	case OutcomeApproved:
		return "approved"
	case OutcomeAcknowledged:
		return "acknowledged"
	case OutcomeRejected:
		return "rejected"
	default:
		return "none"
	}
}

// ApprovalService applies an approval to a request.
//
// Business rules:
//   - a regulator approval runs the ComplianceGuard; a blocked request is
//     rejected and a ComplianceViolationError is returned
//   - a regulator approval that passes moves the request to APPROVED
//   - any other approver leaves the status unchanged but the approval is still
//     recorded, unless the service is strict, in which case it fails with
//     ApproverNotAuthorizedError
//
// Example usage:
//
//	svc := services.NewApprovalService(false)
//	outcome, err := svc.Approve(req, regulator, applicant, satellite)
//	if outcome == services.OutcomeRejected {
//	    // save req, then report err
//	}
type ApprovalService struct {
	guard  ComplianceGuard
	strict bool
}

func NewApprovalService(strict bool) ApprovalService {
	return ApprovalService{guard: NewComplianceGuard(), strict: strict}
}

// Approve validates its inputs, then runs the approval branch that matches the approver.
//
// The applicant and satellite must be the ones referenced by req.
func (s ApprovalService) Approve(
	req *request.Request,
	approver *participant.Actor,
	applicant *participant.Actor,
	satellite *participant.Satellite,
) (ApprovalOutcome, error) {
	if err := errors.Join(req.Validate(), approver.Validate(), applicant.Validate(), satellite.Validate()); err != nil {
		return OutcomeNone, err
	}
	if !applicant.ID().IsEqual(req.Applicant()) {
		return OutcomeNone, errs.NewValueIsInvalidErrorWithCause(
			"applicant", fmt.Errorf("%s is not the applicant of request %s", applicant.ID(), req.ID()))
	}
	if !satellite.ID().IsEqual(req.IssuingSatellite()) {
		return OutcomeNone, errs.NewValueIsInvalidErrorWithCause(
			"satellite", fmt.Errorf("%s is not the issuing satellite of request %s", satellite.ID(), req.ID()))
	}

	if !approver.IsRegulator() {
		return s.acknowledge(req, approver)
	}

	// A closed request reports AlreadyClosed, never a compliance failure.
	if err := req.Status().ValidateApprove(); err != nil {
		return OutcomeNone, err
	}

	if excluded, blocked := s.guard.Check(applicant, satellite, req.Details()); blocked {
		if err := req.RejectExcluded(approver.Ref(), excluded); err != nil {
			return OutcomeNone, err
		}
		return OutcomeRejected, errs.NewComplianceViolationError(excluded.String(), satellite.ID().String())
	}

	if err := req.Approve(approver.Ref()); err != nil {
		return OutcomeNone, err
	}
	return OutcomeApproved, nil
}

func (s ApprovalService) acknowledge(req *request.Request, approver *participant.Actor) (ApprovalOutcome, error) {
	if s.strict {
		if err := req.Status().ValidateApprove(); err != nil {
			return OutcomeNone, err
		}
		return OutcomeNone, errs.NewApproverNotAuthorizedError(approver.ID().String(), approver.Role().String())
	}
	if err := req.AcknowledgeApproval(approver.Ref()); err != nil {
		return OutcomeNone, err
	}
	return OutcomeAcknowledged, nil
}
