package commands_test

import (
	"testing"

	"servicerequest/internal/core/application/usecases/commands"
	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/core/domain/model/request"
	"servicerequest/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateRequestCommand(t *testing.T) {
	id := kernel.NewUUID()
	details := request.NewDetails(kernel.CountryUSA, "imagery")

	t.Run("should keep all fields", func(t *testing.T) {
		cmd, err := commands.NewCreateRequestCommand(id,
			kernel.MustParticipantID("Startup"), kernel.MustParticipantID("ESA"), kernel.MustParticipantID("ESA1"),
			details)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.RequestID())
		assert.Equal(t, "Startup", cmd.Applicant().String())
		assert.Equal(t, "ESA", cmd.Beneficiary().String())
		assert.Equal(t, "ESA1", cmd.IssuingSatellite().String())
		assert.Equal(t, details, cmd.Details())
	})

	t.Run("should join errors", func(t *testing.T) {
		_, err := commands.NewCreateRequestCommand(kernel.UUID{},
			kernel.ParticipantID{}, kernel.MustParticipantID("ESA"), kernel.MustParticipantID("ESA1"),
			details)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrParticipantIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.CreateRequestCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateRequestCommandIsNotConstructed)
	})
}

func TestNewApproveRequestCommand(t *testing.T) {
	id := kernel.NewUUID()
	ref := participant.ActorRef{ID: kernel.MustParticipantID("EU"), Role: participant.Regulator}

	cmd, err := commands.NewApproveRequestCommand(id, ref)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.RequestID())
	assert.Equal(t, ref, cmd.Approver())

	_, err = commands.NewApproveRequestCommand(id, participant.ActorRef{ID: ref.ID})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero commands.ApproveRequestCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrApproveRequestCommandIsNotConstructed)
}

func TestTextCommands(t *testing.T) {
	id := kernel.NewUUID()

	type built struct {
		err      error
		validate func() error
		text     func() string
	}

	constructors := map[string]func(kernel.UUID, string) built{
		"reject": func(id kernel.UUID, s string) built {
			c, err := commands.NewRejectRequestCommand(id, s)
			return built{err, c.Validate, c.CloseReason}
		},
		"close": func(id kernel.UUID, s string) built {
			c, err := commands.NewCloseRequestCommand(id, s)
			return built{err, c.Validate, c.CloseReason}
		},
		"ship": func(id kernel.UUID, s string) built {
			c, err := commands.NewSendToGroundStationCommand(id, s)
			return built{err, c.Validate, c.Evidence}
		},
		"receive": func(id kernel.UUID, s string) built {
			c, err := commands.NewReceivedByGroundStationCommand(id, s)
			return built{err, c.Validate, c.Evidence}
		},
		"confirm": func(id kernel.UUID, s string) built {
			c, err := commands.NewSatelliteConfirmationCommand(id, s)
			return built{err, c.Validate, c.Evidence}
		},
	}

	for name, build := range constructors {
		t.Run(name+" keeps text", func(t *testing.T) {
			b := build(id, "proof")

			require.NoError(t, b.err)
			require.NoError(t, b.validate())
			assert.Equal(t, "proof", b.text())
		})

		t.Run(name+" requires text", func(t *testing.T) {
			b := build(id, "")

			require.ErrorIs(t, b.err, errs.ErrValueIsRequired)
			assert.Error(t, b.validate())
		})

		t.Run(name+" requires request id", func(t *testing.T) {
			b := build(kernel.UUID{}, "proof")

			require.ErrorIs(t, b.err, kernel.ErrUUIDIsNotConstructed)
		})
	}
}

func TestNewGroundStationDownloadCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewGroundStationDownloadCommand(id, "log", "s3://scene")
	require.NoError(t, err)
	assert.Equal(t, "log", cmd.Evidence())
	assert.Equal(t, "s3://scene", cmd.RequestedData())

	_, err = commands.NewGroundStationDownloadCommand(id, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evidence")
	assert.Contains(t, err.Error(), "requested data")
}

func TestNewReadyForPaymentCommand(t *testing.T) {
	cmd, err := commands.NewReadyForPaymentCommand(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	_, err = commands.NewReadyForPaymentCommand(kernel.UUID{})
	require.Error(t, err)

	var zero commands.ReadyForPaymentCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrReadyForPaymentCommandIsNotConstructed)
}

func TestNewRegisterParticipantCommand(t *testing.T) {
	ref := participant.ActorRef{ID: kernel.MustParticipantID("Startup"), Role: participant.Customer}

	cmd, err := commands.NewRegisterParticipantCommand(ref, participant.Profile{Name: "Startup", CountryOfOrigin: kernel.CountryUSA})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, ref, cmd.Actor().Ref())

	_, err = commands.NewRegisterParticipantCommand(ref, participant.Profile{Name: "Startup"})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRegisterSatelliteCommand(t *testing.T) {
	excluded, err := kernel.NewCountries([]string{"CHINA"})
	require.NoError(t, err)

	cmd, err := commands.NewRegisterSatelliteCommand(kernel.MustParticipantID("ESA1"), "ESA1", excluded)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, excluded, cmd.Satellite().ExcludedCountries())

	_, err = commands.NewRegisterSatelliteCommand(kernel.MustParticipantID("ESA1"), "", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
