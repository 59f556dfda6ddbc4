package selection

import "errors"

// ValidationError is a user-facing message raised when a submit is attempted
// on an incomplete selection.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	// ErrIncomplete is returned when no document or granularity is chosen.
	ErrIncomplete = &ValidationError{Message: "Please complete all fields."}
	// ErrInvalidSelection is returned when the terminal picker has no value.
	ErrInvalidSelection = &ValidationError{Message: "Please make a valid selection."}
)

var (
	// ErrNotRendered is returned when a picker is chosen that the current
	// granularity does not render.
	ErrNotRendered = errors.New("picker not rendered")
	// ErrOutOfRange is returned for an option ordinal outside the picker.
	ErrOutOfRange = errors.New("option out of range")
	// ErrNotFound is returned when no option carries the requested title.
	ErrNotFound = errors.New("no matching option")
)

// IsValidation reports whether err is a user-facing validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
