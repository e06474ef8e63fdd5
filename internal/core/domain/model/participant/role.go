package participant

import (
	"fmt"

	"servicerequest/internal/pkg/errs"
)

// Role is the registry role of a participant.
type Role int

const (
	// UnknownRole is the zero value and is never valid.
	UnknownRole Role = iota
	Customer
	Company
	Regulator
	GroundStation
)

var roleNames = map[Role]string{
	Customer:      "Customer",
	Company:       "Company",
	Regulator:     "Regulator",
	GroundStation: "GroundStation",
}

// ParseRole converts the registry name of a role ("Customer", "Regulator", ...).
func ParseRole(name string) (Role, error) {
	for role, n := range roleNames {
		if n == name {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", name))
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// RequiresCountry reports whether actors in this role must declare a country of origin.
func (r Role) RequiresCountry() bool {
	return r == Customer || r == Company || r == Regulator
}
