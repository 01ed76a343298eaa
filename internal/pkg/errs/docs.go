// Package errs holds the error vocabulary shared by the ecofleet domain and its adapters.
//
// Domain constructors report problems with a parameter name attached:
// ValueIsRequiredError, ValueIsInvalidError and ValueIsOutOfRangeError.
// The HTTP adapter recovers that name with FieldOf and answers 400 with
// the field set, while IsValidation separates those failures from
// ObjectNotFoundError (404) and ErrPermissionDenied (403).
//
// Every typed error unwraps to a sentinel, so callers match with errors.Is:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//		return echo.ErrNotFound
//	}
package errs
