// Package errs provides standardized error types for the service request application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found in the registry
//   - ConflictError: For when a concurrent write or duplicate identifier is detected
//
// Lifecycle guard failures have their own types so callers can tell them apart:
//   - AlreadyClosedError: the request is CLOSED or REJECTED
//   - AlreadyApprovedError: a rejection was attempted on an APPROVED request
//   - WrongPredecessorStateError: the required prior state has not been reached
//   - ComplianceViolationError: the target country is excluded by the issuing satellite
//   - ApproverNotAuthorizedError: the approving party may not approve requests
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
