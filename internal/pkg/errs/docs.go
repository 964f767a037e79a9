// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the service.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct carrying error details
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The transport layer relies on the sentinels to translate domain failures
// into HTTP status codes, so new error conditions should reuse these types
// rather than invent ad-hoc strings.
package errs
