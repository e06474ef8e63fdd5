package notify

import (
	"encoding/json"
	"time"

	"servicerequest/internal/core/domain/model/request"
)

// Envelope is the wire form of a lifecycle event shared by all sinks.
type Envelope struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	RequestID      string          `json:"requestId"`
	Status         string          `json:"status"`
	OccurredAt     time.Time       `json:"occurredAt"`
	Request        RequestSnapshot `json:"request"`
	ApprovingParty *PartyRef       `json:"approvingParty,omitempty"`
	CloseReason    string          `json:"closeReason,omitempty"`
}

// RequestSnapshot is the request state right after the transition.
type RequestSnapshot struct {
	ID               string   `json:"id"`
	Applicant        string   `json:"applicant"`
	Beneficiary      string   `json:"beneficiary"`
	IssuingSatellite string   `json:"issuingSatellite"`
	TargetCountry    string   `json:"targetCountry,omitempty"`
	Description      string   `json:"description,omitempty"`
	Status           string   `json:"status"`
	Evidence         []string `json:"evidence"`
	RequestedData    []string `json:"requestedData"`
	CloseReason      string   `json:"closeReason,omitempty"`
}

type PartyRef struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// NewEnvelope maps a domain event to its wire form.
func NewEnvelope(e request.Event) Envelope {
	snap := e.Snapshot()
	env := Envelope{
		ID:         e.ID().String(),
		Name:       e.Name(),
		RequestID:  e.RequestID().String(),
		Status:     snap.Status.String(),
		OccurredAt: e.OccurredAt(),
		Request: RequestSnapshot{
			ID:               snap.ID.String(),
			Applicant:        snap.Applicant.String(),
			Beneficiary:      snap.Beneficiary.String(),
			IssuingSatellite: snap.IssuingSatellite.String(),
			TargetCountry:    snap.TargetCountry.String(),
			Description:      snap.Description,
			Status:           snap.Status.String(),
			Evidence:         nonNil(snap.Evidence),
			RequestedData:    nonNil(snap.RequestedData),
			CloseReason:      snap.CloseReason,
		},
	}

	switch ev := e.(type) {
	case request.RequestApprovedEvent:
		env.ApprovingParty = &PartyRef{ID: ev.ApprovingParty.ID.String(), Role: ev.ApprovingParty.Role.String()}
	case request.RequestRejectedEvent:
		env.CloseReason = ev.CloseReason
		if ev.ApprovingParty != nil {
			env.ApprovingParty = &PartyRef{ID: ev.ApprovingParty.ID.String(), Role: ev.ApprovingParty.Role.String()}
		}
	case request.ClosedEvent:
		env.CloseReason = ev.CloseReason
	}

	return env
}

// Marshal encodes the envelope of e as JSON.
func Marshal(e request.Event) ([]byte, error) {
	return json.Marshal(NewEnvelope(e))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
