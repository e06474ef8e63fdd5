// Package participantrepo persists actors and satellites in PostgreSQL.
package participantrepo

import (
	"time"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"

	"github.com/lib/pq"
)

// ActorDTO is the row layout of the participants table.
// The primary key is (id, role).
type ActorDTO struct {
	ID              string `gorm:"primaryKey"`
	Role            string `gorm:"primaryKey"`
	Name            string
	LastName        string
	CountryOfOrigin string
	CompanyName     string
	SatelliteID     *string
	CreatedAt       time.Time
}

func (ActorDTO) TableName() string {
	return "participants"
}

// SatelliteDTO is the row layout of the satellites table.
type SatelliteDTO struct {
	ID                string `gorm:"primaryKey"`
	Name              string
	ExcludedCountries pq.StringArray `gorm:"type:text[]"`
	CreatedAt         time.Time
}

func (SatelliteDTO) TableName() string {
	return "satellites"
}

func actorFromDomain(a *participant.Actor) ActorDTO {
	var satelliteID *string
	if sat := a.Satellite(); sat != nil {
		raw := sat.String()
		satelliteID = &raw
	}

	return ActorDTO{
		ID:              a.ID().String(),
		Role:            a.Role().String(),
		Name:            a.Name(),
		LastName:        a.LastName(),
		CountryOfOrigin: a.CountryOfOrigin().String(),
		CompanyName:     a.CompanyName(),
		SatelliteID:     satelliteID,
	}
}

func actorToDomain(dto ActorDTO) (*participant.Actor, error) {
	id, err := kernel.NewParticipantID(dto.ID)
	if err != nil {
		return nil, err
	}
	role, err := participant.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	profile := participant.Profile{
		Name:        dto.Name,
		LastName:    dto.LastName,
		CompanyName: dto.CompanyName,
	}
	if dto.CountryOfOrigin != "" {
		if profile.CountryOfOrigin, err = kernel.NewCountry(dto.CountryOfOrigin); err != nil {
			return nil, err
		}
	}
	if dto.SatelliteID != nil {
		sat, satErr := kernel.NewParticipantID(*dto.SatelliteID)
		if satErr != nil {
			return nil, satErr
		}
		profile.Satellite = &sat
	}

	return participant.RestoreActor(participant.ActorRef{ID: id, Role: role}, profile)
}

func satelliteFromDomain(s *participant.Satellite) SatelliteDTO {
	excluded := make(pq.StringArray, 0, len(s.ExcludedCountries()))
	for _, c := range s.ExcludedCountries() {
		excluded = append(excluded, c.String())
	}

	return SatelliteDTO{
		ID:                s.ID().String(),
		Name:              s.Name(),
		ExcludedCountries: excluded,
	}
}

func satelliteToDomain(dto SatelliteDTO) (*participant.Satellite, error) {
	id, err := kernel.NewParticipantID(dto.ID)
	if err != nil {
		return nil, err
	}
	excluded, err := kernel.NewCountries(dto.ExcludedCountries)
	if err != nil {
		return nil, err
	}
	return participant.RestoreSatellite(id, dto.Name, excluded)
}
