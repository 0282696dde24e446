package errors

import (
	"net/http"
	"testing"

	"seedshare/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	messages := []string{"Email inválido", "Senha inválida"}
	err := NewValidationError(messages)
	messages[0] = "mutated"

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Equal(t, []string{"Email inválido", "Senha inválida"}, err.Messages())
	assert.Equal(t, "Email inválido Senha inválida", err.Details())

	var appErr AppError
	require.True(t, errors.As(errors.Wrap(err, "register"), &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())

	var fieldErrs FieldErrors
	require.True(t, errors.As(errors.Wrap(err, "register"), &fieldErrs))
	assert.Len(t, fieldErrs.Messages(), 2)
}

func TestConflictError(t *testing.T) {
	err := NewConflictError([]string{"Email já cadastrado.", "CPF já cadastrado."})

	assert.Equal(t, http.StatusConflict, err.HTTPCode())
	assert.Equal(t, "ACCOUNT_CONFLICT", err.ErrorCode())
	assert.Equal(t, []string{"Email já cadastrado.", "CPF já cadastrado."}, err.Messages())
	assert.Equal(t, "Email já cadastrado. CPF já cadastrado.", err.Details())
	assert.Equal(t, "Conta já cadastrada.", err.Message())
	assert.EqualError(t, err, "account conflict: Email já cadastrado.; CPF já cadastrado.")

	var fieldErrs FieldErrors
	require.True(t, errors.As(errors.Wrap(err, "register"), &fieldErrs))
	assert.Equal(t, err.Messages(), fieldErrs.Messages())
}

func TestBaseError_Accessors(t *testing.T) {
	err := ErrOfferUnavailable.WithDetails("offer 7")

	assert.Equal(t, http.StatusConflict, err.HTTPCode())
	assert.Equal(t, "OFFER_UNAVAILABLE", err.ErrorCode())
	assert.Equal(t, err.Message(), err.Error())
	assert.Equal(t, "offer 7", err.Details())
	assert.Empty(t, ErrOfferUnavailable.Details())
}

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrOfferNotFound.WithDetails("offer 42")

	assert.ErrorIs(t, errors.Wrap(detailed, "get offer"), ErrOfferNotFound)
	assert.NotErrorIs(t, detailed, ErrUserNotFound)
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert offer")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "insert offer", err.Details())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.EqualError(t, err, "database execution failed: connection reset")
}
