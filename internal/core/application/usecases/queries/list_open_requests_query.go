package queries

import (
	"errors"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/request"
	"servicerequest/internal/pkg/errs"
	"servicerequest/internal/pkg/guard"
)

var ErrListOpenRequestsQueryIsNotConstructed = errors.New(
	"ListOpenRequestsQuery must be created via NewListOpenRequestsQuery constructor",
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// ListOpenRequestsQuery lists requests that are neither CLOSED nor REJECTED,
// oldest first. Status and applicant narrow the result when set.
//
// Example:
//
//	query, err := NewListOpenRequestsQuery(request.Approved, nil, 0)
//	views, err := NewListOpenRequestsQueryHandler(db).Handle(ctx, query)
type ListOpenRequestsQuery struct {
	status    request.Status
	applicant *kernel.ParticipantID
	limit     int

	guard guard.ConstructorGuard
}

// NewListOpenRequestsQuery accepts request.Unknown for any open status and
// a zero limit for DefaultListLimit.
func NewListOpenRequestsQuery(
	status request.Status,
	applicant *kernel.ParticipantID,
	limit int,
) (ListOpenRequestsQuery, error) {
	if status != request.Unknown {
		if err := status.Validate(); err != nil {
			return ListOpenRequestsQuery{}, err
		}
		if status.IsTerminal() {
			return ListOpenRequestsQuery{}, errs.NewValueIsInvalidError("status")
		}
	}
	if applicant != nil {
		if err := applicant.Validate(); err != nil {
			return ListOpenRequestsQuery{}, err
		}
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 0 || limit > MaxListLimit {
		return ListOpenRequestsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	}

	return ListOpenRequestsQuery{
		status:    status,
		applicant: applicant,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListOpenRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListOpenRequestsQueryIsNotConstructed)
}
