package request

import (
	"errors"
	"fmt"
	"slices"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/pkg/errs"
	"servicerequest/internal/pkg/guard"
)

var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest constructor")

// Request is the aggregate root of the service request lifecycle.
//
// Request follows these invariants:
//   - id, parties and details never change after creation
//   - status only moves along the transitions of Status
//   - evidence and requestedData are append-only
//   - closeReason is present exactly when the status is CLOSED or REJECTED
//   - a failed transition leaves the request untouched and records no event
type Request struct {
	id               kernel.UUID
	applicant        kernel.ParticipantID
	beneficiary      kernel.ParticipantID
	issuingSatellite kernel.ParticipantID
	details          Details

	status        Status
	evidence      []string
	requestedData []string
	closeReason   *string

	// version is the persisted revision the aggregate was loaded at.
	version int

	events []Event
	guard  guard.ConstructorGuard
}

// NewRequest opens a request in AWAITING_APPROVAL and records RequestCreated.
//
// Example:
//
//	req, err := request.NewRequest(
//	    kernel.NewUUID(),
//	    kernel.MustParticipantID("Startup"),
//	    kernel.MustParticipantID("ESA"),
//	    kernel.MustParticipantID("ESA1"),
//	    request.NewDetails(france, "weekly imagery"),
//	)
func NewRequest(
	id kernel.UUID,
	applicant, beneficiary, issuingSatellite kernel.ParticipantID,
	details Details,
) (*Request, error) {
	r := &Request{
		status:        AwaitingApproval,
		evidence:      []string{},
		requestedData: []string{},
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setParties(applicant, beneficiary, issuingSatellite),
	); err != nil {
		return nil, err
	}
	r.details = details

	r.record(RequestCreatedEvent{newBaseEvent(EventRequestCreated, r)})
	return r, nil
}

// RestoreRequest rebuilds a request from persistence. No event is recorded.
func RestoreRequest(
	id kernel.UUID,
	applicant, beneficiary, issuingSatellite kernel.ParticipantID,
	details Details,
	status Status,
	evidence, requestedData []string,
	closeReason *string,
	version int,
) (*Request, error) {
	r := &Request{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setParties(applicant, beneficiary, issuingSatellite),
		r.setStatus(status, closeReason),
		r.setHistory(evidence, requestedData),
		r.setVersion(version),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Request) ID() kernel.UUID {
	return r.id
}

func (r *Request) Applicant() kernel.ParticipantID {
	return r.applicant
}

func (r *Request) Beneficiary() kernel.ParticipantID {
	return r.beneficiary
}

func (r *Request) IssuingSatellite() kernel.ParticipantID {
	return r.issuingSatellite
}

func (r *Request) Details() Details {
	return r.details
}

func (r *Request) Status() Status {
	return r.status
}

// Evidence returns a copy of the evidence collected so far, oldest first.
func (r *Request) Evidence() []string {
	return slices.Clone(r.evidence)
}

// RequestedData returns a copy of the downloaded data references, oldest first.
func (r *Request) RequestedData() []string {
	return slices.Clone(r.requestedData)
}

// CloseReason returns the reason recorded when the request was rejected or closed.
func (r *Request) CloseReason() (string, bool) {
	if r.closeReason == nil {
		return "", false
	}
	return *r.closeReason, true
}

func (r *Request) Version() int {
	return r.version
}

// MarkSaved advances the version after a repository has persisted the request.
func (r *Request) MarkSaved() {
	r.version++
}

// DomainEvents returns the events recorded since the request was loaded or last cleared.
func (r *Request) DomainEvents() []Event {
	return slices.Clone(r.events)
}

func (r *Request) ClearDomainEvents() {
	r.events = nil
}

// Approve moves the request to APPROVED on behalf of a regulator.
func (r *Request) Approve(approver participant.ActorRef) error {
	if err := approver.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Approve()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.record(RequestApprovedEvent{newBaseEvent(EventRequestApproved, r), approver})
	return nil
}

// AcknowledgeApproval records an approval that does not change the status.
// It is used when the approving party is not a regulator.
func (r *Request) AcknowledgeApproval(approver participant.ActorRef) error {
	if err := approver.Validate(); err != nil {
		return err
	}
	if err := r.status.ValidateApprove(); err != nil {
		return err
	}

	r.record(RequestApprovedEvent{newBaseEvent(EventRequestApproved, r), approver})
	return nil
}

// RejectExcluded rejects the request during approval because its target
// country is excluded by the issuing satellite.
func (r *Request) RejectExcluded(approver participant.ActorRef, excluded kernel.Country) error {
	if err := errors.Join(approver.Validate(), excluded.Validate()); err != nil {
		return err
	}
	if err := r.status.ValidateApprove(); err != nil {
		return err
	}

	reason := fmt.Sprintf("%s: %s", errs.ErrComplianceViolation, excluded)
	r.status = Rejected
	r.closeReason = &reason
	r.record(RequestRejectedEvent{newBaseEvent(EventRequestRejected, r), reason, &approver})
	return nil
}

// Reject moves the request to REJECTED with the given reason.
func (r *Request) Reject(closeReason string) error {
	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}
	if closeReason == "" {
		return errs.NewValueIsRequiredError("close reason")
	}

	r.status = newStatus
	r.closeReason = &closeReason
	r.record(RequestRejectedEvent{baseEvent: newBaseEvent(EventRequestRejected, r), CloseReason: closeReason})
	return nil
}

// SendToGroundStation records the hand-off of an approved request to a ground station.
func (r *Request) SendToGroundStation(evidence string) error {
	newStatus, err := r.status.ShipToStation()
	if err != nil {
		return err
	}
	if err := validateEvidence(evidence); err != nil {
		return err
	}

	r.status = newStatus
	r.evidence = append(r.evidence, evidence)
	r.record(ShippedToStationEvent{newBaseEvent(EventShippedToStation, r)})
	return nil
}

// ReceivedByGroundStation records that the ground station took the request in.
func (r *Request) ReceivedByGroundStation(evidence string) error {
	newStatus, err := r.status.ReceiveAtStation()
	if err != nil {
		return err
	}
	if err := validateEvidence(evidence); err != nil {
		return err
	}

	r.status = newStatus
	r.evidence = append(r.evidence, evidence)
	r.record(ReceivedByStationEvent{newBaseEvent(EventReceivedByStation, r)})
	return nil
}

// SatelliteConfirmation records that the satellite accepted the tasking.
func (r *Request) SatelliteConfirmation(evidence string) error {
	newStatus, err := r.status.ConfirmBySatellite()
	if err != nil {
		return err
	}
	if err := validateEvidence(evidence); err != nil {
		return err
	}

	r.status = newStatus
	r.evidence = append(r.evidence, evidence)
	r.record(SatelliteConfirmedEvent{newBaseEvent(EventSatelliteConfirmed, r)})
	return nil
}

// GroundStationDownload records the downloaded data and its evidence.
func (r *Request) GroundStationDownload(evidence, data string) error {
	newStatus, err := r.status.Download()
	if err != nil {
		return err
	}
	if err := validateEvidence(evidence); err != nil {
		return err
	}
	if data == "" {
		return errs.NewValueIsRequiredError("requested data")
	}

	r.status = newStatus
	r.evidence = append(r.evidence, evidence)
	r.requestedData = append(r.requestedData, data)
	r.record(DataDownloadedEvent{newBaseEvent(EventDataDownloaded, r)})
	return nil
}

// ReadyForPayment marks the delivered request as payable.
func (r *Request) ReadyForPayment() error {
	newStatus, err := r.status.MarkReadyForPayment()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.record(ReadyForPaymentEvent{newBaseEvent(EventReadyForPayment, r)})
	return nil
}

// Close ends a paid request with the given reason.
func (r *Request) Close(closeReason string) error {
	newStatus, err := r.status.Close()
	if err != nil {
		return err
	}
	if closeReason == "" {
		return errs.NewValueIsRequiredError("close reason")
	}

	r.status = newStatus
	r.closeReason = &closeReason
	r.record(ClosedEvent{newBaseEvent(EventClosed, r), closeReason})
	return nil
}

func (r *Request) record(e Event) {
	r.events = append(r.events, e)
}

func (r *Request) snapshot() Snapshot {
	reason, _ := r.CloseReason()
	return Snapshot{
		ID:               r.id,
		Applicant:        r.applicant,
		Beneficiary:      r.beneficiary,
		IssuingSatellite: r.issuingSatellite,
		TargetCountry:    r.details.targetCountry,
		Description:      r.details.description,
		Status:           r.status,
		Evidence:         slices.Clone(r.evidence),
		RequestedData:    slices.Clone(r.requestedData),
		CloseReason:      reason,
	}
}

func validateEvidence(evidence string) error {
	if evidence == "" {
		return errs.NewValueIsRequiredError("evidence")
	}
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setParties(applicant, beneficiary, issuingSatellite kernel.ParticipantID) error {
	if err := errors.Join(
		wrapRequired("applicant", applicant.Validate()),
		wrapRequired("beneficiary", beneficiary.Validate()),
		wrapRequired("issuing satellite", issuingSatellite.Validate()),
	); err != nil {
		return err
	}
	r.applicant = applicant
	r.beneficiary = beneficiary
	r.issuingSatellite = issuingSatellite
	return nil
}

func (r *Request) setStatus(status Status, closeReason *string) error {
	if err := status.Validate(); err != nil {
		return err
	}
	hasReason := closeReason != nil && *closeReason != ""
	if status.IsTerminal() && !hasReason {
		return errs.NewValueIsRequiredErrorWithCause("close reason", fmt.Errorf("%s requires a close reason", status))
	}
	if !status.IsTerminal() && hasReason {
		return errs.NewValueIsInvalidErrorWithCause("close reason", fmt.Errorf("%s cannot have a close reason", status))
	}
	r.status = status
	if hasReason {
		reason := *closeReason
		r.closeReason = &reason
	}
	return nil
}

func (r *Request) setHistory(evidence, requestedData []string) error {
	for _, e := range evidence {
		if err := validateEvidence(e); err != nil {
			return err
		}
	}
	if slices.Contains(requestedData, "") {
		return errs.NewValueIsRequiredError("requested data")
	}
	r.evidence = append([]string{}, evidence...)
	r.requestedData = append([]string{}, requestedData...)
	return nil
}

func (r *Request) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsOutOfRangeError("version", version, 0, "unbounded")
	}
	r.version = version
	return nil
}

func wrapRequired(param string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredErrorWithCause(param, err)
}
