// Package errs provides the error vocabulary shared by the order service.
//
// Each error kind pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsRequired, ErrValueIsOutOfRange) with a struct carrying the
// offending parameter. The structs unwrap to their sentinel, so callers
// branch with errors.Is and inspect details with errors.As:
//
//	var notFound *errs.ObjectNotFoundError
//	if errors.As(err, &notFound) {
//	    log.Printf("missing %s %v", notFound.ParamName, notFound.ID)
//	}
//
// ValidationErrors is the request-level counterpart: a list of field
// failures reported together and unwrapping to ErrValidationFailed.
package errs
