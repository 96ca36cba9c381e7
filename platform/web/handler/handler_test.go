package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ribgsilva/notes-app/platform/fault"
	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        fault.New(fault.Validation, "title and content required"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "title and content required",
		},
		{
			name:       "unauthenticated is uniform",
			err:        fault.New(fault.Unauthenticated, "token expired at 10:00"),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "unauthorized",
		},
		{
			name:       "conflict",
			err:        fault.New(fault.Conflict, "email already registered"),
			wantStatus: http.StatusConflict,
			wantMsg:    "email already registered",
		},
		{
			name:       "not found",
			err:        fault.New(fault.NotFound, "note not found"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "note not found",
		},
		{
			name:       "untyped error hides the cause",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FromError(tt.err)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, Error{Message: tt.wantMsg}, result.Body)
		})
	}
}
