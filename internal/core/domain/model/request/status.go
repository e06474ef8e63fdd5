package request

import (
	"fmt"

	"servicerequest/internal/pkg/errs"
)

// Status is the lifecycle state of a request. Transition methods return the
// target state or a typed error, and never mutate the receiver.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	AwaitingApproval
	Approved
	SendToStation
	ReceivedByStation
	SatelliteConfirmation
	ReceivingData
	ReadyForPayment
	Closed
	Rejected
)

// Operation names used in lifecycle errors.
const (
	OpApprove                 = "approve"
	OpReject                  = "reject"
	OpSendToGroundStation     = "send to ground station"
	OpReceivedByGroundStation = "receive at ground station"
	OpSatelliteConfirmation   = "confirm by satellite"
	OpGroundStationDownload   = "download at ground station"
	OpReadyForPayment         = "mark ready for payment"
	OpClose                   = "close"
)

const (
	reasonNotApproved   = "the request needs to be approved before it can be processed"
	reasonNotShippedYet = "needs to be processed by authorized ground station"
)

var statusNames = map[Status]string{
	AwaitingApproval:      "AWAITING_APPROVAL",
	Approved:              "APPROVED",
	SendToStation:         "SEND_TO_STATION",
	ReceivedByStation:     "RECEIVED_BY_STATION",
	SatelliteConfirmation: "SATELLITE_CONFIRMATION",
	ReceivingData:         "RECEIVING_DATA",
	ReadyForPayment:       "READY_FOR_PAYMENT",
	Closed:                "CLOSED",
	Rejected:              "REJECTED",
}

// Statuses lists every valid status in lifecycle order, REJECTED last.
func Statuses() []Status {
	return []Status{
		AwaitingApproval, Approved, SendToStation, ReceivedByStation,
		SatelliteConfirmation, ReceivingData, ReadyForPayment, Closed, Rejected,
	}
}

// ParseStatus converts the persisted name of a status ("APPROVED", ...).
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Closed || s == Rejected
}

// ValidateApprove checks that an approval may be recorded without choosing its outcome.
func (s Status) ValidateApprove() error {
	return s.require(OpApprove, AwaitingApproval)
}

// Approve transitions AWAITING_APPROVAL to APPROVED.
func (s Status) Approve() (Status, error) {
	if err := s.ValidateApprove(); err != nil {
		return Unknown, err
	}
	return Approved, nil
}

// Reject transitions any non-terminal status other than APPROVED to REJECTED.
func (s Status) Reject() (Status, error) {
	if s.IsTerminal() {
		return Unknown, errs.NewAlreadyClosedError(OpReject, s.String())
	}
	if s == Approved {
		return Unknown, errs.NewAlreadyApprovedError(OpReject)
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Rejected, nil
}

// ShipToStation transitions APPROVED to SEND_TO_STATION.
func (s Status) ShipToStation() (Status, error) {
	if err := s.require(OpSendToGroundStation, Approved); err != nil {
		return Unknown, err
	}
	return SendToStation, nil
}

// ReceiveAtStation transitions SEND_TO_STATION to RECEIVED_BY_STATION.
func (s Status) ReceiveAtStation() (Status, error) {
	if err := s.require(OpReceivedByGroundStation, SendToStation); err != nil {
		return Unknown, err
	}
	return ReceivedByStation, nil
}

// ConfirmBySatellite transitions RECEIVED_BY_STATION to SATELLITE_CONFIRMATION.
func (s Status) ConfirmBySatellite() (Status, error) {
	if err := s.require(OpSatelliteConfirmation, ReceivedByStation); err != nil {
		return Unknown, err
	}
	return SatelliteConfirmation, nil
}

// Download transitions SATELLITE_CONFIRMATION to RECEIVING_DATA.
func (s Status) Download() (Status, error) {
	if err := s.require(OpGroundStationDownload, SatelliteConfirmation); err != nil {
		return Unknown, err
	}
	return ReceivingData, nil
}

// MarkReadyForPayment transitions RECEIVING_DATA to READY_FOR_PAYMENT.
func (s Status) MarkReadyForPayment() (Status, error) {
	if err := s.require(OpReadyForPayment, ReceivingData); err != nil {
		return Unknown, err
	}
	return ReadyForPayment, nil
}

// Close transitions READY_FOR_PAYMENT to CLOSED.
func (s Status) Close() (Status, error) {
	if err := s.require(OpClose, ReadyForPayment); err != nil {
		return Unknown, err
	}
	return Closed, nil
}

// require checks terminal states first so that a closed request always
// reports AlreadyClosed, whichever operation was attempted.
func (s Status) require(op string, source Status) error {
	if s.IsTerminal() {
		return errs.NewAlreadyClosedError(op, s.String())
	}
	if s == source {
		return nil
	}

	switch {
	case s == AwaitingApproval:
		return errs.NewWrongPredecessorStateErrorWithReason(op, s.String(), reasonNotApproved, source.String())
	case s == Approved && source == SendToStation:
		return errs.NewWrongPredecessorStateErrorWithReason(op, s.String(), reasonNotShippedYet, source.String())
	default:
		return errs.NewWrongPredecessorStateError(op, s.String(), source.String())
	}
}
