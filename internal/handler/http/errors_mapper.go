package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/gnap-bootstrap/internal/store"
	"github.com/MKhiriev/gnap-bootstrap/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrNotInitialized: http.StatusServiceUnavailable,
	store.ErrStoreUnavailable:    http.StatusServiceUnavailable,

	validators.ErrUnsupportedCapability: http.StatusInternalServerError,
	validators.ErrDuplicateCapability:   http.StatusInternalServerError,
	validators.ErrInvalidEndpoint:       http.StatusInternalServerError,
	validators.ErrMissingField:          http.StatusInternalServerError,
	store.ErrScanningRow:                http.StatusInternalServerError,
	store.ErrEncodingDocument:           http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
