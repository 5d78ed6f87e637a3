package domain

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStoreUnavailable(t *testing.T) {
	assert.False(t, IsStoreUnavailable(nil))
	assert.True(t, IsStoreUnavailable(ErrStoreNotConfigured))
	assert.True(t, IsStoreUnavailable(driver.ErrBadConn))
	assert.True(t, IsStoreUnavailable(context.DeadlineExceeded))
	assert.True(t, IsStoreUnavailable(&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("refused")}))
	assert.True(t, IsStoreUnavailable(errors.New("failed to connect to `host=db user=predictor`")))
	assert.False(t, IsStoreUnavailable(errors.New("duplicate key value violates unique constraint")))
}

func TestNewStoreError(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
	err := NewStoreError("upsert deposit", cause)

	assert.Equal(t, ErrCodeStoreUnavailable, err.Code)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus)
	assert.Equal(t, cause.Error(), err.Message)
	assert.ErrorIs(t, err, cause)

	cause = errors.New("value too long for type character varying(64)")
	err = NewStoreError("upsert deposit", cause)

	assert.Equal(t, ErrCodeStoreError, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.Equal(t, cause.Error(), err.Message)
}

func TestNewErrorResponse(t *testing.T) {
	err := NewUserNotFoundError("u1")
	err.RequestID = "req-1"

	resp := NewErrorResponse(err)

	assert.Equal(t, "User not found", resp.Error)
	assert.Equal(t, ErrCodeUserNotFound, resp.Code)
	assert.Equal(t, "req-1", resp.RequestID)
}

func TestIsAppError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), NewInsufficientEnergyError("u1"))

	appErr, ok := IsAppError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
	assert.ErrorIs(t, appErr, ErrInsufficientEnergy)

	_, ok = IsAppError(errors.New("plain"))
	assert.False(t, ok)
}
