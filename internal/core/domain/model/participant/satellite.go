package participant

import (
	"errors"
	"slices"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/pkg/errs"
	"servicerequest/internal/pkg/guard"
)

var ErrSatelliteIsNotConstructed = errors.New("Satellite must be created via NewSatellite or RestoreSatellite constructor")

// Satellite is an issuing satellite. Its operator refuses to serve the
// countries in ExcludedCountries; the list keeps registry order.
type Satellite struct {
	id                kernel.ParticipantID
	name              string
	excludedCountries []kernel.Country

	guard guard.ConstructorGuard
}

// NewSatellite validates a satellite before registration. Duplicate excluded
// countries are collapsed, keeping the first occurrence.
func NewSatellite(id kernel.ParticipantID, name string, excludedCountries []kernel.Country) (*Satellite, error) {
	s := &Satellite{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setExcludedCountries(excludedCountries),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSatellite rebuilds a satellite loaded from the registry.
func RestoreSatellite(id kernel.ParticipantID, name string, excludedCountries []kernel.Country) (*Satellite, error) {
	return NewSatellite(id, name, excludedCountries)
}

func (s *Satellite) Validate() error {
	if s == nil {
		return ErrSatelliteIsNotConstructed
	}
	return s.guard.Validate(ErrSatelliteIsNotConstructed)
}

func (s *Satellite) ID() kernel.ParticipantID {
	return s.id
}

func (s *Satellite) Name() string {
	return s.name
}

// ExcludedCountries returns a copy of the exclusion list.
func (s *Satellite) ExcludedCountries() []kernel.Country {
	return slices.Clone(s.excludedCountries)
}

func (s *Satellite) setID(id kernel.ParticipantID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Satellite) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("satellite name")
	}
	s.name = name
	return nil
}

func (s *Satellite) setExcludedCountries(countries []kernel.Country) error {
	excluded := make([]kernel.Country, 0, len(countries))
	for _, c := range countries {
		if err := c.Validate(); err != nil {
			return err
		}
		if slices.ContainsFunc(excluded, c.IsEqual) {
			continue
		}
		excluded = append(excluded, c)
	}
	s.excludedCountries = excluded
	return nil
}
