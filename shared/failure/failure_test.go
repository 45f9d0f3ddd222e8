package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{Code: http.StatusBadRequest, Message: "test error message"}

	assert.Equal(t, "test error message", f.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "BadRequestFromString", err: failure.BadRequestFromString("empty request"), code: http.StatusBadRequest, message: "empty request"},
		{name: "BadRequest", err: failure.BadRequest(errors.New("validation failed")), code: http.StatusBadRequest, message: "validation failed"},
		{name: "Unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized, message: "token expired"},
		{name: "NotFound", err: failure.NotFound("tour not found"), code: http.StatusNotFound, message: "tour not found"},
		{name: "Conflict", err: failure.Conflict("slug already in use"), code: http.StatusConflict, message: "slug already in use"},
		{name: "Forbidden", err: failure.Forbidden("admin only"), code: http.StatusForbidden, message: "admin only"},
		{name: "InternalError", err: failure.InternalError(errors.New("db down")), code: http.StatusInternalServerError, message: "db down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			require.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
		})
	}
}

func TestNilErrorsReturnNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	t.Run("reads the code from a failure", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, failure.GetCode(failure.NotFound("booking not found")))
	})

	t.Run("reads the code through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get booking: %w", failure.Conflict("duplicate"))

		assert.Equal(t, http.StatusConflict, failure.GetCode(wrapped))
	})

	t.Run("defaults to internal server error", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain error")))
	})
}
