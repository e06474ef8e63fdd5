// Package services provides domain services that coordinate the request
// aggregate with participant data it does not own.
//
// The package includes:
//   - IsExcluded and ComplianceGuard: the export policy check run on regulator approval
//   - ApprovalService: the approval transition, the only lifecycle step with branches
package services
