package kernel_test

import (
	"testing"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCountry(t *testing.T) {
	t.Run("should keep the value verbatim", func(t *testing.T) {
		c, err := kernel.NewCountry("France")

		require.NoError(t, err)
		assert.Equal(t, "France", c.String())
		assert.False(t, c.IsZero())
	})

	t.Run("should reject blank values", func(t *testing.T) {
		_, err := kernel.NewCountry(" ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCountry_IsEqual(t *testing.T) {
	china, _ := kernel.NewCountry("CHINA")
	other, _ := kernel.NewCountry("CHINA")
	mixed, _ := kernel.NewCountry("China")

	assert.True(t, china.IsEqual(other))
	assert.False(t, china.IsEqual(mixed), "comparison is exact")
}

func TestCountryUSA(t *testing.T) {
	usa, err := kernel.NewCountry("USA")

	require.NoError(t, err)
	assert.True(t, kernel.CountryUSA.IsEqual(usa))
}

func TestNewCountries(t *testing.T) {
	t.Run("should preserve order", func(t *testing.T) {
		countries, err := kernel.NewCountries([]string{"KLDR", "CHINA", "ISRAEL"})

		require.NoError(t, err)
		require.Len(t, countries, 3)
		assert.Equal(t, "KLDR", countries[0].String())
		assert.Equal(t, "ISRAEL", countries[2].String())
	})

	t.Run("should fail on a blank entry", func(t *testing.T) {
		_, err := kernel.NewCountries([]string{"KLDR", ""})

		require.Error(t, err)
	})

	t.Run("should accept an empty list", func(t *testing.T) {
		countries, err := kernel.NewCountries(nil)

		require.NoError(t, err)
		assert.Empty(t, countries)
	})
}

func TestCountry_ZeroValue(t *testing.T) {
	var c kernel.Country

	assert.True(t, c.IsZero())
	assert.Equal(t, kernel.ErrCountryIsNotConstructed, c.Validate())
}
