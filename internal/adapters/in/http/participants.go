package http

import (
	"errors"
	"net/http"

	"servicerequest/internal/core/application/usecases/commands"
	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RegisterParticipant handles POST /api/v1/participants.
func (s *Server) RegisterParticipant(ctx echo.Context) error {
	var body servers.RegisterParticipantJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := newRegisterParticipantCommand(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	err = s.handlers.RegisterParticipant.Handle(ctx.Request().Context(), cmd)
	s.metrics.ObserveCommand("register_participant", err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RegisterSatellite handles POST /api/v1/satellites.
func (s *Server) RegisterSatellite(ctx echo.Context) error {
	var body servers.RegisterSatelliteJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, idErr := kernel.NewParticipantID(body.Id)
	var excluded []kernel.Country
	var excludedErr error
	if body.ExcludedCountries != nil {
		excluded, excludedErr = kernel.NewCountries(*body.ExcludedCountries)
	}
	if err := errors.Join(idErr, excludedErr); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRegisterSatelliteCommand(id, body.Name, excluded)
	if err != nil {
		return s.fail(ctx, err)
	}

	err = s.handlers.RegisterSatellite.Handle(ctx.Request().Context(), cmd)
	s.metrics.ObserveCommand("register_satellite", err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

func newRegisterParticipantCommand(body servers.NewParticipant) (commands.RegisterParticipantCommand, error) {
	id, idErr := kernel.NewParticipantID(body.Id)
	role, roleErr := participant.ParseRole(string(body.Role))
	if err := errors.Join(idErr, roleErr); err != nil {
		return commands.RegisterParticipantCommand{}, err
	}

	ref, err := participant.NewActorRef(id, role)
	if err != nil {
		return commands.RegisterParticipantCommand{}, err
	}

	profile := participant.Profile{
		Name:        body.Name,
		LastName:    value(body.LastName),
		CompanyName: value(body.CompanyName),
	}
	if origin := value(body.CountryOfOrigin); origin != "" {
		if profile.CountryOfOrigin, err = kernel.NewCountry(origin); err != nil {
			return commands.RegisterParticipantCommand{}, err
		}
	}
	if satellite := value(body.SatelliteId); satellite != "" {
		satelliteID, err := kernel.NewParticipantID(satellite)
		if err != nil {
			return commands.RegisterParticipantCommand{}, err
		}
		profile.Satellite = &satelliteID
	}

	return commands.NewRegisterParticipantCommand(ref, profile)
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
