package booking

import "errors"

var (
	// ErrVehicleNotFound: the referenced vehicle does not exist. Only the
	// create path checks this; availability checks deliberately do not.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrConflict: the requested range overlaps an existing booking.
	ErrConflict = errors.New("vehicle is already booked for the selected dates")
)

// ValidationError carries the user-facing message of the first failing rule
// of the validation chain. The message is returned to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationError(message string) error {
	return &ValidationError{Message: message}
}
