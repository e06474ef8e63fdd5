package kernel

import (
	"fmt"
	"strings"

	"servicerequest/internal/pkg/errs"
)

// maxParticipantIDLength bounds identifiers to the registry column width.
const maxParticipantIDLength = 128

// ErrParticipantIDIsNotConstructed is returned when validating a zero-value ParticipantID.
var ErrParticipantIDIsNotConstructed = errs.NewValueIsRequiredError("participant ID must be created via NewParticipantID")

// ParticipantID is the registry identifier of a participant or satellite,
// e.g. "Startup", "ESA" or "ESA1". Identifiers are opaque and case sensitive.
type ParticipantID struct {
	value string
}

// NewParticipantID validates and wraps a registry identifier. Blank identifiers
// and identifiers with surrounding whitespace are rejected.
func NewParticipantID(value string) (ParticipantID, error) {
	if strings.TrimSpace(value) == "" {
		return ParticipantID{}, errs.NewValueIsRequiredError("participant ID")
	}
	if strings.TrimSpace(value) != value {
		return ParticipantID{}, errs.NewValueIsInvalidErrorWithCause(
			"participant ID", fmt.Errorf("%q has surrounding whitespace", value))
	}
	if len(value) > maxParticipantIDLength {
		return ParticipantID{}, errs.NewValueIsOutOfRangeError("participant ID length", len(value), 1, maxParticipantIDLength)
	}
	return ParticipantID{value: value}, nil
}

// MustParticipantID is NewParticipantID for identifiers known to be valid.
// It panics otherwise.
func MustParticipantID(value string) ParticipantID {
	id, err := NewParticipantID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (p ParticipantID) String() string {
	return p.value
}

func (p ParticipantID) IsEqual(other ParticipantID) bool {
	return p.value == other.value
}

func (p ParticipantID) Validate() error {
	if p.value == "" {
		return ErrParticipantIDIsNotConstructed
	}
	return nil
}
