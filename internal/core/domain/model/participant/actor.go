package participant

import (
	"errors"
	"fmt"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/pkg/errs"
	"servicerequest/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or RestoreActor constructor")

// ActorRef addresses a participant in the registry. IDs are unique per role.
type ActorRef struct {
	ID   kernel.ParticipantID
	Role Role
}

// NewActorRef validates both parts of the reference.
func NewActorRef(id kernel.ParticipantID, role Role) (ActorRef, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return ActorRef{}, err
	}
	return ActorRef{ID: id, Role: role}, nil
}

func (r ActorRef) Validate() error {
	return errors.Join(r.ID.Validate(), r.Role.Validate())
}

func (r ActorRef) String() string {
	return fmt.Sprintf("%s#%s", r.Role, r.ID)
}

// Profile holds the descriptive attributes of an actor.
// CompanyName and Satellite only apply to companies.
type Profile struct {
	Name            string
	LastName        string
	CountryOfOrigin kernel.Country
	CompanyName     string
	Satellite       *kernel.ParticipantID
}

// Actor is a registered participant: a customer, company, regulator or ground station.
type Actor struct {
	ref     ActorRef
	profile Profile

	guard guard.ConstructorGuard
}

// NewActor validates a participant before registration.
//
// Rules:
//   - the reference must be valid
//   - name is required
//   - customers, companies and regulators must declare a country of origin
//   - only companies may carry a company name or an operated satellite
func NewActor(ref ActorRef, profile Profile) (*Actor, error) {
	a := &Actor{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setRef(ref),
		a.setProfile(ref.Role, profile),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreActor rebuilds an actor loaded from the registry, applying the same rules as NewActor.
func RestoreActor(ref ActorRef, profile Profile) (*Actor, error) {
	return NewActor(ref, profile)
}

func (a *Actor) Validate() error {
	if a == nil {
		return ErrActorIsNotConstructed
	}
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a *Actor) Ref() ActorRef {
	return a.ref
}

func (a *Actor) ID() kernel.ParticipantID {
	return a.ref.ID
}

func (a *Actor) Role() Role {
	return a.ref.Role
}

func (a *Actor) Name() string {
	return a.profile.Name
}

func (a *Actor) LastName() string {
	return a.profile.LastName
}

func (a *Actor) CountryOfOrigin() kernel.Country {
	return a.profile.CountryOfOrigin
}

func (a *Actor) CompanyName() string {
	return a.profile.CompanyName
}

// Satellite returns the satellite operated by a company, if any.
func (a *Actor) Satellite() *kernel.ParticipantID {
	if a.profile.Satellite == nil {
		return nil
	}
	id := *a.profile.Satellite
	return &id
}

// IsRegulator reports whether approvals by this actor run the compliance guard.
func (a *Actor) IsRegulator() bool {
	return a.ref.Role == Regulator
}

func (a *Actor) setRef(ref ActorRef) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	a.ref = ref
	return nil
}

func (a *Actor) setProfile(role Role, profile Profile) error {
	if profile.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if role.RequiresCountry() {
		if err := profile.CountryOfOrigin.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("country of origin", err)
		}
	}
	if role != Company && (profile.CompanyName != "" || profile.Satellite != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"profile", fmt.Errorf("%s cannot have a company name or satellite", role))
	}
	if profile.Satellite != nil {
		if err := profile.Satellite.Validate(); err != nil {
			return err
		}
		id := *profile.Satellite
		profile.Satellite = &id
	}
	a.profile = profile
	return nil
}
