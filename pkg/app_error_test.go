package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "connection reset")

	body := appErr.ToHTTPError()
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Nil(t, body.Details)
}

func TestAppError_WithDetails(t *testing.T) {
	appErr := NewDomainErrorSimple("REMOTE_PROVIDER_ERROR", "Remote provider error", http.StatusBadGateway).
		WithDetails(map[string]any{"type": "param_error"}).
		WithDetails(map[string]any{"status": 400}).
		WithDetails(nil)

	assert.Equal(t, http.StatusBadGateway, appErr.HTTPStatus)
	assert.Equal(t, map[string]any{"type": "param_error", "status": 400}, appErr.ToHTTPError().Details)
	assert.Equal(t, "REMOTE_PROVIDER_ERROR: Remote provider error", appErr.Error())
}
