package services_test

import (
	"testing"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/core/domain/model/request"
	"servicerequest/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countries(t *testing.T, values ...string) []kernel.Country {
	t.Helper()
	cs, err := kernel.NewCountries(values)
	require.NoError(t, err)
	return cs
}

func TestIsExcluded(t *testing.T) {
	excluded := countries(t, "KLDR", "CHINA", "ISRAEL")

	tests := []struct {
		name     string
		target   kernel.Country
		excluded []kernel.Country
		want     bool
	}{
		{"match in the middle", countries(t, "CHINA")[0], excluded, true},
		{"match at the end", countries(t, "ISRAEL")[0], excluded, true},
		{"no match", countries(t, "FRANCE")[0], excluded, false},
		{"comparison is case sensitive", countries(t, "China")[0], excluded, false},
		{"zero target", kernel.Country{}, excluded, false},
		{"empty list", countries(t, "CHINA")[0], nil, false},
		{"zero entries are skipped", kernel.Country{}, []kernel.Country{{}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.IsExcluded(tt.target, tt.excluded))
		})
	}
}

func TestComplianceGuard_Check(t *testing.T) {
	sat, err := participant.NewSatellite(kernel.MustParticipantID("ESA1"), "ESA1", countries(t, "KLDR", "CHINA", "ISRAEL"))
	require.NoError(t, err)
	guard := services.NewComplianceGuard()

	t.Run("should block american applicant targeting excluded country", func(t *testing.T) {
		country, blocked := guard.Check(actor(t, "Startup", participant.Customer, "USA"), sat,
			request.NewDetails(countries(t, "CHINA")[0], ""))

		assert.True(t, blocked)
		assert.Equal(t, "CHINA", country.String())
	})

	t.Run("should pass non-american applicant", func(t *testing.T) {
		_, blocked := guard.Check(actor(t, "Startup", participant.Customer, "France"), sat,
			request.NewDetails(countries(t, "CHINA")[0], ""))

		assert.False(t, blocked)
	})

	t.Run("should pass allowed target", func(t *testing.T) {
		_, blocked := guard.Check(actor(t, "Startup", participant.Customer, "USA"), sat,
			request.NewDetails(countries(t, "FRANCE")[0], ""))

		assert.False(t, blocked)
	})
}
