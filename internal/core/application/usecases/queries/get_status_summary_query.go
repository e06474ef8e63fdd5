package queries

import (
	"errors"

	"servicerequest/internal/pkg/guard"
)

var ErrGetStatusSummaryQueryIsNotConstructed = errors.New(
	"GetStatusSummaryQuery must be created via NewGetStatusSummaryQuery constructor",
)

// GetStatusSummaryQuery counts stored requests per lifecycle status.
type GetStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStatusSummaryQuery() GetStatusSummaryQuery {
	return GetStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusSummaryQueryIsNotConstructed)
}

// StatusSummary maps every known status name to its request count.
// Statuses without requests are present with a zero count.
type StatusSummary map[string]int64
