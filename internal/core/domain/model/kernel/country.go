package kernel

import (
	"strings"

	"servicerequest/internal/pkg/errs"
)

// ErrCountryIsNotConstructed is returned when validating a zero-value Country.
var ErrCountryIsNotConstructed = errs.NewValueIsRequiredError("country must be created via NewCountry")

// CountryUSA is the applicant origin for which export compliance is enforced.
var CountryUSA = Country{value: "USA"}

// Country identifies a country of origin or a target country. Countries are
// compared by exact string equality; no case folding or alias resolution is
// applied, so "China" and "CHINA" are different countries.
type Country struct {
	value string
}

// NewCountry wraps a country identifier. Blank values are rejected.
func NewCountry(value string) (Country, error) {
	if strings.TrimSpace(value) == "" {
		return Country{}, errs.NewValueIsRequiredError("country")
	}
	return Country{value: value}, nil
}

// NewCountries converts a list of identifiers, failing on the first blank entry.
func NewCountries(values []string) ([]Country, error) {
	countries := make([]Country, 0, len(values))
	for _, v := range values {
		c, err := NewCountry(v)
		if err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, nil
}

func (c Country) String() string {
	return c.value
}

// IsZero reports whether the country is absent.
func (c Country) IsZero() bool {
	return c.value == ""
}

// IsEqual compares two countries by exact value.
func (c Country) IsEqual(other Country) bool {
	return c.value == other.value
}

func (c Country) Validate() error {
	if c.value == "" {
		return ErrCountryIsNotConstructed
	}
	return nil
}
