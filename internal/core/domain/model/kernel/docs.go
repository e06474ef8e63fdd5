// Package kernel provides the shared value objects of the service request domain.
//
// The package includes:
//   - UUID: identifier of service requests, wrapping github.com/google/uuid
//   - ParticipantID: opaque identifier of customers, companies, regulators,
//     ground stations and satellites as issued by the participant registry
//   - Country: a country identifier compared by exact string equality
//
// All value objects are immutable and their zero values are invalid; use the
// constructors and call Validate when reconstructing from persistence.
package kernel
