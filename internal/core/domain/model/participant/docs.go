// Package participant models the parties referenced by a service request and
// the satellites whose operators define export policy.
//
// The package includes:
//   - Role: the registry role a participant acts under (Customer, Company,
//     Regulator, GroundStation)
//   - Actor: a registered participant with its country of origin
//   - ActorRef: an (ID, Role) reference used to address an actor in the registry
//   - Satellite: an issuing satellite and the countries its operator refuses to serve
//
// Participants are owned by the registry. The request lifecycle reads them as
// guard inputs and never mutates them.
package participant
