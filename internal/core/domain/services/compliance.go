package services

import (
	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/core/domain/model/request"
)

// IsExcluded reports whether target appears in excluded. Comparison is exact;
// a zero target is never excluded and zero entries are skipped. The scan stops
// at the first match.
func IsExcluded(target kernel.Country, excluded []kernel.Country) bool {
	_, found := firstExcluded(target, excluded)
	return found
}

func firstExcluded(target kernel.Country, excluded []kernel.Country) (kernel.Country, bool) {
	if target.IsZero() {
		return kernel.Country{}, false
	}
	for _, c := range excluded {
		if c.IsZero() {
			continue
		}
		if c.IsEqual(target) {
			return c, true
		}
	}
	return kernel.Country{}, false
}

// ComplianceGuard enforces satellite export policy. Only applicants from the
// USA are checked; everyone else passes.
type ComplianceGuard struct{}

func NewComplianceGuard() ComplianceGuard {
	return ComplianceGuard{}
}

// Check returns the excluded country that blocks the request, if any.
func (ComplianceGuard) Check(
	applicant *participant.Actor,
	satellite *participant.Satellite,
	details request.Details,
) (kernel.Country, bool) {
	if !applicant.CountryOfOrigin().IsEqual(kernel.CountryUSA) {
		return kernel.Country{}, false
	}
	return firstExcluded(details.TargetCountry(), satellite.ExcludedCountries())
}
