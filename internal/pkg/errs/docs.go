// Package errs provides the error taxonomy shared by the cargo service.
//
// Every error kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrConflict, ...) for errors.Is checks
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The HTTP boundary classifies failures only through the sentinels:
//   - ErrObjectNotFound: the referenced entity is absent
//   - ErrConflict: tracking code, username or shipment ownership clash
//   - ErrValueIsRequired / ErrValueIsInvalid / ErrValueIsOutOfRange: invalid input
//   - ErrAuthFailure: bad credentials
package errs
