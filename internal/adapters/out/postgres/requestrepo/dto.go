// Package requestrepo persists request aggregates in PostgreSQL.
package requestrepo

import (
	"time"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/request"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RequestDTO is the row layout of the requests table.
type RequestDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	ApplicantID        string    `gorm:"index"`
	BeneficiaryID      string
	IssuingSatelliteID string
	TargetCountry      string
	Description        string
	Status             string         `gorm:"index"`
	Evidence           pq.StringArray `gorm:"type:text[]"`
	RequestedData      pq.StringArray `gorm:"type:text[]"`
	CloseReason        *string
	Version            int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (RequestDTO) TableName() string {
	return "requests"
}

func fromDomain(r *request.Request) RequestDTO {
	var closeReason *string
	if reason, ok := r.CloseReason(); ok {
		closeReason = &reason
	}

	return RequestDTO{
		ID:                 r.ID().Bytes(),
		ApplicantID:        r.Applicant().String(),
		BeneficiaryID:      r.Beneficiary().String(),
		IssuingSatelliteID: r.IssuingSatellite().String(),
		TargetCountry:      r.Details().TargetCountry().String(),
		Description:        r.Details().Description(),
		Status:             r.Status().String(),
		Evidence:           textArray(r.Evidence()),
		RequestedData:      textArray(r.RequestedData()),
		CloseReason:        closeReason,
		Version:            r.Version(),
	}
}

// textArray keeps empty lists as '{}' instead of NULL.
func textArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}

func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	applicant, err := kernel.NewParticipantID(dto.ApplicantID)
	if err != nil {
		return nil, err
	}
	beneficiary, err := kernel.NewParticipantID(dto.BeneficiaryID)
	if err != nil {
		return nil, err
	}
	satellite, err := kernel.NewParticipantID(dto.IssuingSatelliteID)
	if err != nil {
		return nil, err
	}

	var target kernel.Country
	if dto.TargetCountry != "" {
		if target, err = kernel.NewCountry(dto.TargetCountry); err != nil {
			return nil, err
		}
	}

	status, err := request.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return request.RestoreRequest(
		id,
		applicant, beneficiary, satellite,
		request.NewDetails(target, dto.Description),
		status,
		dto.Evidence, dto.RequestedData,
		dto.CloseReason,
		dto.Version,
	)
}
