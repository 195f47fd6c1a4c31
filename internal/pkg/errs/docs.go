// Package errs provides the error types shared by the campusfood domain and adapters.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ...) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - NewX and NewXWithCause constructors
//   - Unwrap returning the sentinel
//
// Domain packages declare their own named errors on top of these, for example
//
//	var ErrMissingPaymentMethod = errs.NewValueIsRequiredError("payment method")
//
// and the HTTP adapter maps the sentinels to status codes.
package errs
