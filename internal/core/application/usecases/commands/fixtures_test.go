package commands_test

import (
	"testing"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/core/domain/model/request"

	"github.com/stretchr/testify/require"
)

func country(t *testing.T, value string) kernel.Country {
	t.Helper()
	c, err := kernel.NewCountry(value)
	require.NoError(t, err)
	return c
}

func newActor(t *testing.T, id string, role participant.Role, origin string) *participant.Actor {
	t.Helper()
	a, err := participant.NewActor(
		participant.ActorRef{ID: kernel.MustParticipantID(id), Role: role},
		participant.Profile{Name: id, CountryOfOrigin: country(t, origin)},
	)
	require.NoError(t, err)
	return a
}

func newSatellite(t *testing.T, id string, excluded ...string) *participant.Satellite {
	t.Helper()
	cs, err := kernel.NewCountries(excluded)
	require.NoError(t, err)
	s, err := participant.NewSatellite(kernel.MustParticipantID(id), id, cs)
	require.NoError(t, err)
	return s
}

// newStoredRequest returns a request as a repository would hand it out:
// restored at the given status with no pending events.
func newStoredRequest(t *testing.T, target string, status request.Status) *request.Request {
	t.Helper()
	var reason *string
	if status.IsTerminal() {
		r := "done"
		reason = &r
	}
	req, err := request.RestoreRequest(
		kernel.NewUUID(),
		kernel.MustParticipantID("Startup"),
		kernel.MustParticipantID("ESA"),
		kernel.MustParticipantID("ESA1"),
		request.NewDetails(country(t, target), "imagery"),
		status,
		nil, nil, reason, 3,
	)
	require.NoError(t, err)
	return req
}
