package request

import (
	"servicerequest/internal/core/domain/model/kernel"
)

// Details describe what the applicant asks for. They are fixed at creation.
type Details struct {
	targetCountry kernel.Country
	description   string
}

// NewDetails builds request details. A zero target country is allowed; such a
// request is never matched by an exclusion list.
func NewDetails(targetCountry kernel.Country, description string) Details {
	return Details{targetCountry: targetCountry, description: description}
}

func (d Details) TargetCountry() kernel.Country {
	return d.targetCountry
}

func (d Details) Description() string {
	return d.description
}
