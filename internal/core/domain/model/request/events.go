package request

import (
	"slices"
	"time"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
)

// Event names, one per lifecycle operation.
const (
	EventRequestCreated     = "RequestCreated"
	EventRequestApproved    = "RequestApproved"
	EventRequestRejected    = "RequestRejected"
	EventShippedToStation   = "ShippedToStation"
	EventReceivedByStation  = "ReceivedByStation"
	EventSatelliteConfirmed = "SatelliteConfirmed"
	EventDataDownloaded     = "DataDownloaded"
	EventReadyForPayment    = "ReadyForPayment"
	EventClosed             = "Closed"
)

// Event is a notification recorded by a successful transition.
type Event interface {
	ID() kernel.UUID
	Name() string
	RequestID() kernel.UUID
	OccurredAt() time.Time
	// Snapshot is the request state right after the transition.
	Snapshot() Snapshot
}

// Snapshot is an immutable copy of a request taken when an event is recorded.
type Snapshot struct {
	ID               kernel.UUID
	Applicant        kernel.ParticipantID
	Beneficiary      kernel.ParticipantID
	IssuingSatellite kernel.ParticipantID
	TargetCountry    kernel.Country
	Description      string
	Status           Status
	Evidence         []string
	RequestedData    []string
	CloseReason      string
}

type baseEvent struct {
	id         kernel.UUID
	name       string
	occurredAt time.Time
	snapshot   Snapshot
}

func newBaseEvent(name string, r *Request) baseEvent {
	return baseEvent{
		id:         kernel.NewUUID(),
		name:       name,
		occurredAt: time.Now().UTC(),
		snapshot:   r.snapshot(),
	}
}

func (e baseEvent) ID() kernel.UUID        { return e.id }
func (e baseEvent) Name() string           { return e.name }
func (e baseEvent) RequestID() kernel.UUID { return e.snapshot.ID }
func (e baseEvent) OccurredAt() time.Time  { return e.occurredAt }
func (e baseEvent) Snapshot() Snapshot     { return e.snapshot.clone() }

type RequestCreatedEvent struct{ baseEvent }

// RequestApprovedEvent is recorded by every accepted approval, including the
// acknowledgement of a non-regulator approver that leaves the status unchanged.
type RequestApprovedEvent struct {
	baseEvent
	ApprovingParty participant.ActorRef
}

// RequestRejectedEvent is recorded by an explicit rejection and by a failed
// compliance check. ApprovingParty is only set in the latter case.
type RequestRejectedEvent struct {
	baseEvent
	CloseReason    string
	ApprovingParty *participant.ActorRef
}

type ShippedToStationEvent struct{ baseEvent }

type ReceivedByStationEvent struct{ baseEvent }

type SatelliteConfirmedEvent struct{ baseEvent }

type DataDownloadedEvent struct{ baseEvent }

type ReadyForPaymentEvent struct{ baseEvent }

type ClosedEvent struct {
	baseEvent
	CloseReason string
}

func (s Snapshot) clone() Snapshot {
	s.Evidence = slices.Clone(s.Evidence)
	s.RequestedData = slices.Clone(s.RequestedData)
	return s
}
