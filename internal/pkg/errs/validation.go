package errs

import "strings"

// ValidationError describes one rejected field of an inbound request.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects every field failure of a request so that they
// can be reported together. The zero value is an empty, usable collection.
type ValidationErrors []ValidationError

// Add appends a failure for field.
func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message})
}

// OrNil returns nil for an empty collection so callers never hand out a
// non-nil error interface wrapping zero failures.
func (e ValidationErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ByField groups messages by field name, keeping their original order.
func (e ValidationErrors) ByField() map[string][]string {
	grouped := make(map[string][]string, len(e))
	for _, v := range e {
		grouped[v.Field] = append(grouped[v.Field], v.Message)
	}
	return grouped
}

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		if v.Field == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, v.Field+": "+v.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}
