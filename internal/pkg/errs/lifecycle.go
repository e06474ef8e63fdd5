package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAlreadyClosed         = errors.New("request has already been closed")
	ErrAlreadyApproved       = errors.New("request has already been approved")
	ErrWrongPredecessorState = errors.New("wrong predecessor state")
	ErrComplianceViolation   = errors.New("requesting excluded services")
	ErrApproverNotAuthorized = errors.New("approver is not authorized")
)

// AlreadyClosedError is returned by every transition once the request is terminal.
type AlreadyClosedError struct {
	Operation string
	Status    string
}

func NewAlreadyClosedError(operation, status string) *AlreadyClosedError {
	return &AlreadyClosedError{Operation: operation, Status: status}
}

func (e *AlreadyClosedError) Error() string {
	return fmt.Sprintf("%s: cannot %s, status is %s", ErrAlreadyClosed, e.Operation, e.Status)
}

func (e *AlreadyClosedError) Unwrap() error {
	return ErrAlreadyClosed
}

// AlreadyApprovedError is returned when rejecting an APPROVED request.
type AlreadyApprovedError struct {
	Operation string
}

func NewAlreadyApprovedError(operation string) *AlreadyApprovedError {
	return &AlreadyApprovedError{Operation: operation}
}

func (e *AlreadyApprovedError) Error() string {
	return fmt.Sprintf("%s: cannot %s", ErrAlreadyApproved, e.Operation)
}

func (e *AlreadyApprovedError) Unwrap() error {
	return ErrAlreadyApproved
}

// WrongPredecessorStateError is returned when a transition is attempted before
// its required source state has been reached (or after it has been left).
type WrongPredecessorStateError struct {
	Operation string
	Required  []string
	Actual    string
	Reason    string
}

func NewWrongPredecessorStateError(operation, actual string, required ...string) *WrongPredecessorStateError {
	return &WrongPredecessorStateError{Operation: operation, Actual: actual, Required: required}
}

func NewWrongPredecessorStateErrorWithReason(
	operation, actual, reason string,
	required ...string,
) *WrongPredecessorStateError {
	return &WrongPredecessorStateError{Operation: operation, Actual: actual, Required: required, Reason: reason}
}

func (e *WrongPredecessorStateError) Error() string {
	msg := fmt.Sprintf("%s: %s requires %s, status is %s",
		ErrWrongPredecessorState, e.Operation, strings.Join(e.Required, " or "), e.Actual)
	if e.Reason != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Reason)
	}
	return msg
}

func (e *WrongPredecessorStateError) Unwrap() error {
	return ErrWrongPredecessorState
}

// ComplianceViolationError is returned when the regulator's approval hits a
// country excluded by the issuing satellite. The request has been rejected.
type ComplianceViolationError struct {
	TargetCountry string
	SatelliteID   string
}

func NewComplianceViolationError(targetCountry, satelliteID string) *ComplianceViolationError {
	return &ComplianceViolationError{TargetCountry: targetCountry, SatelliteID: satelliteID}
}

func (e *ComplianceViolationError) Error() string {
	return fmt.Sprintf("%s: %s is excluded by satellite %s", ErrComplianceViolation, e.TargetCountry, e.SatelliteID)
}

func (e *ComplianceViolationError) Unwrap() error {
	return ErrComplianceViolation
}

// ApproverNotAuthorizedError is returned when strict approval is enabled and the
// approving party is not a regulator.
type ApproverNotAuthorizedError struct {
	ParticipantID string
	Role          string
}

func NewApproverNotAuthorizedError(participantID, role string) *ApproverNotAuthorizedError {
	return &ApproverNotAuthorizedError{ParticipantID: participantID, Role: role}
}

func (e *ApproverNotAuthorizedError) Error() string {
	return fmt.Sprintf("%s: %s is %s", ErrApproverNotAuthorized, e.ParticipantID, e.Role)
}

func (e *ApproverNotAuthorizedError) Unwrap() error {
	return ErrApproverNotAuthorized
}
