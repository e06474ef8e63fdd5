package queries

import (
	"database/sql"
	"time"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/request"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RequestView is the read model of a request.
type RequestView struct {
	ID               kernel.UUID
	Applicant        string
	Beneficiary      string
	IssuingSatellite string
	TargetCountry    string
	Description      string
	Status           request.Status
	Evidence         []string
	RequestedData    []string
	CloseReason      string
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const requestViewColumns = `
	id,
	applicant_id,
	beneficiary_id,
	issuing_satellite_id,
	target_country,
	description,
	status,
	evidence,
	requested_data,
	close_reason,
	version,
	created_at,
	updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequestView(row rowScanner) (RequestView, error) {
	var (
		view          RequestView
		id            uuid.UUID
		status        string
		evidence      pq.StringArray
		requestedData pq.StringArray
		closeReason   sql.NullString
	)

	if err := row.Scan(
		&id,
		&view.Applicant,
		&view.Beneficiary,
		&view.IssuingSatellite,
		&view.TargetCountry,
		&view.Description,
		&status,
		&evidence,
		&requestedData,
		&closeReason,
		&view.Version,
		&view.CreatedAt,
		&view.UpdatedAt,
	); err != nil {
		return RequestView{}, err
	}

	requestID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RequestView{}, err
	}
	view.ID = requestID

	if view.Status, err = request.ParseStatus(status); err != nil {
		return RequestView{}, err
	}

	view.Evidence = append([]string{}, evidence...)
	view.RequestedData = append([]string{}, requestedData...)
	view.CloseReason = closeReason.String
	return view, nil
}
