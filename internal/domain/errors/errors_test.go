package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"curator/internal/errors"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("title is required")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrForbidden))
	assert.Equal(t, "title is required", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrQuestionnaireNotFound.WrapMessage("load questionnaire")

	appErr, ok := errors.AsType[AppError](err)
	assert.True(t, ok)
	assert.Equal(t, "QUESTIONNAIRE_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrQuestionnaireNotFound))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert response")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert response", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))
}
