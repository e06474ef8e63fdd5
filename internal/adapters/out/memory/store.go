// Package memory is an in-process registry gateway. It keeps requests,
// participants and satellites in maps guarded by one mutex and offers the
// same unit of work and optimistic concurrency contract as the PostgreSQL
// adapter. Writes staged in a unit of work become visible atomically on Commit.
package memory

import (
	"sync"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/core/domain/model/request"
)

// Store holds the registry state shared by all units of work created from one factory.
type Store struct {
	mu         sync.RWMutex
	requests   map[kernel.UUID]requestRecord
	actors     map[participant.ActorRef]*participant.Actor
	satellites map[kernel.ParticipantID]*participant.Satellite
}

func NewStore() *Store {
	return &Store{
		requests:   make(map[kernel.UUID]requestRecord),
		actors:     make(map[participant.ActorRef]*participant.Actor),
		satellites: make(map[kernel.ParticipantID]*participant.Satellite),
	}
}

// Requests returns every stored request, in no particular order.
func (s *Store) Requests() ([]*request.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*request.Request, 0, len(s.requests))
	for _, rec := range s.requests {
		r, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// requestRecord is the stored form of a request. Loaded aggregates never
// share slices with it.
type requestRecord struct {
	id               kernel.UUID
	applicant        kernel.ParticipantID
	beneficiary      kernel.ParticipantID
	issuingSatellite kernel.ParticipantID
	details          request.Details
	status           request.Status
	evidence         []string
	requestedData    []string
	closeReason      *string
	version          int
}

func recordFromDomain(r *request.Request, version int) requestRecord {
	var closeReason *string
	if reason, ok := r.CloseReason(); ok {
		closeReason = &reason
	}
	return requestRecord{
		id:               r.ID(),
		applicant:        r.Applicant(),
		beneficiary:      r.Beneficiary(),
		issuingSatellite: r.IssuingSatellite(),
		details:          r.Details(),
		status:           r.Status(),
		evidence:         r.Evidence(),
		requestedData:    r.RequestedData(),
		closeReason:      closeReason,
		version:          version,
	}
}

func (rec requestRecord) toDomain() (*request.Request, error) {
	return request.RestoreRequest(
		rec.id,
		rec.applicant, rec.beneficiary, rec.issuingSatellite,
		rec.details,
		rec.status,
		rec.evidence, rec.requestedData,
		rec.closeReason,
		rec.version,
	)
}
