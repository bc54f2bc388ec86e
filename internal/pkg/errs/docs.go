// Package errs provides standardized error types for the logistics application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the application's error taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError: input validation failures
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ConflictError: a uniqueness or state invariant was violated
//   - ForbiddenError: the actor lacks the role or ownership for an operation
//   - UnauthenticatedError: a credential check failed
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// The HTTP adapter relies on the sentinels to translate errors into status
// codes without inspecting internal detail.
package errs
