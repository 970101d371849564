package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name    string
		err     *LoadError
		wantMsg string
		wantIs  []error
	}{
		{
			name:    "kind only",
			err:     &LoadError{Kind: ErrStoreUnavailable},
			wantMsg: "store unavailable",
			wantIs:  []error{ErrStoreUnavailable},
		},
		{
			name:    "with cause",
			err:     &LoadError{Kind: ErrStoreUnavailable, Err: cause},
			wantMsg: "store unavailable: dial tcp: connection refused",
			wantIs:  []error{ErrStoreUnavailable, cause},
		},
		{
			name:    "cause already names the kind",
			err:     &LoadError{Kind: ErrStoreUnavailable, Err: fmt.Errorf("store unavailable: %w", cause)},
			wantMsg: "store unavailable: dial tcp: connection refused",
			wantIs:  []error{ErrStoreUnavailable, cause},
		},
		{
			name:    "duplicate names the document",
			err:     &LoadError{Kind: ErrDuplicateKey, Collection: "accounts", ID: "a-1", Err: cause},
			wantMsg: `duplicate key: accounts "a-1"`,
			wantIs:  []error{ErrDuplicateKey, cause},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			for _, target := range tt.wantIs {
				assert.ErrorIs(t, tt.err, target)
			}
			assert.NotErrorIs(t, tt.err, ErrValidationFailed)
		})
	}
}
