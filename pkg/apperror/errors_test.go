package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("grade not found"), http.StatusNotFound},
		{AlreadyExists("subject already exists"), http.StatusConflict},
		{Conflict("semester is referenced by related data"), http.StatusConflict},
		{Validation("value must be between 1 and 6"), http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{New(0, "invalid username or password", ErrUnauthorized), http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", ErrNotFound), http.StatusNotFound},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MapErrorToStatus(tc.err), "error %v", tc.err)
	}
}

func TestAppErrorMessage(t *testing.T) {
	err := NotFound("grade not found")
	assert.Equal(t, "grade not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)

	bare := New(0, "", ErrConflict)
	assert.Equal(t, ErrConflict.Error(), bare.Error())
}
