package app

import (
	"errors"

	"github.com/MKhiriev/gnap-bootstrap/internal/service"
)

// Process exit codes of the seed command.
const (
	ExitOK               = 0
	ExitFailure          = 1
	ExitValidationFailed = 2
	ExitStoreUnavailable = 3
	ExitDuplicateKey     = 4
)

// ExitCode maps a bootstrap error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, service.ErrValidationFailed):
		return ExitValidationFailed
	case errors.Is(err, service.ErrStoreUnavailable):
		return ExitStoreUnavailable
	case errors.Is(err, service.ErrDuplicateKey):
		return ExitDuplicateKey
	default:
		return ExitFailure
	}
}
