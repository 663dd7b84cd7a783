package usecases

import "errors"

// ErrDeviceNotFound means the addressed device id has no row. It is terminal:
// no state write, publish, log or alert may happen after it.
var ErrDeviceNotFound = errors.New("dispositivo no encontrado")

// ValidationError rejects malformed or out-of-range input before any I/O.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
