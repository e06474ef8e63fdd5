package commands

import (
	"errors"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/pkg/guard"
)

var ErrRegisterSatelliteCommandIsNotConstructed = errors.New(
	"RegisterSatelliteCommand must be created via NewRegisterSatelliteCommand constructor",
)

// RegisterSatelliteCommand adds a satellite and its exclusion list to the registry.
type RegisterSatelliteCommand struct {
	satellite *participant.Satellite

	guard guard.ConstructorGuard
}

func NewRegisterSatelliteCommand(
	id kernel.ParticipantID,
	name string,
	excludedCountries []kernel.Country,
) (RegisterSatelliteCommand, error) {
	satellite, err := participant.NewSatellite(id, name, excludedCountries)
	if err != nil {
		return RegisterSatelliteCommand{}, err
	}

	return RegisterSatelliteCommand{satellite: satellite, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterSatelliteCommand) Validate() error {
	return c.guard.Validate(ErrRegisterSatelliteCommandIsNotConstructed)
}

func (c RegisterSatelliteCommand) Satellite() *participant.Satellite {
	return c.satellite
}
