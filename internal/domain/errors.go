package domain

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// AppError represents an application error
type AppError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Path       string    `json:"path,omitempty"`
	Method     string    `json:"method,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewInvalidInputError creates a validation error for a missing or malformed field
func NewInvalidInputError(message string) *AppError {
	return NewAppError(ErrCodeInvalidInput, message, http.StatusBadRequest, nil)
}

// NewInvalidAmountError creates an error for a non-numeric or non-positive amount
func NewInvalidAmountError(raw string) *AppError {
	return NewAppError(
		ErrCodeInvalidAmount,
		"Invalid deposit amount: must be a positive number",
		http.StatusBadRequest,
		fmt.Errorf("rejected amount %q", raw),
	)
}

// NewUserNotFoundError creates a not found error for an unknown player
func NewUserNotFoundError(externalID string) *AppError {
	err := NewAppError(ErrCodeUserNotFound, "User not found", http.StatusNotFound, nil)
	err.UserID = externalID
	return err
}

// NewInsufficientEnergyError creates an error for a draw attempted with no energy left
func NewInsufficientEnergyError(externalID string) *AppError {
	err := NewAppError(ErrCodeInsufficientEnergy, "Not enough energy", http.StatusConflict, ErrInsufficientEnergy)
	err.UserID = externalID
	return err
}

// NewCycleInProgressError creates a conflict error for a cycle that is running elsewhere
func NewCycleInProgressError(cycleID string) *AppError {
	return NewAppError(
		ErrCodeCycleInProgress,
		fmt.Sprintf("Energy cycle '%s' is already being processed", cycleID),
		http.StatusConflict,
		nil,
	)
}

// NewStoreError wraps a persistence failure. Connection-level failures become
// STORE_UNAVAILABLE (503), everything else STORE_ERROR (500). The driver message
// is kept verbatim so callers see what the store reported.
func NewStoreError(operation string, err error) *AppError {
	if IsStoreUnavailable(err) {
		return NewAppError(ErrCodeStoreUnavailable, err.Error(), http.StatusServiceUnavailable,
			fmt.Errorf("%s: %w", operation, err))
	}
	return NewAppError(ErrCodeStoreError, err.Error(), http.StatusInternalServerError,
		fmt.Errorf("%s: %w", operation, err))
}

// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAppError(
		"INTERNAL_ERROR",
		message,
		http.StatusInternalServerError,
		err,
	)
}

// IsStoreUnavailable reports whether err means the store could not be reached at all
func IsStoreUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrStoreNotConfigured) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "failed to connect") ||
		strings.Contains(msg, "no such host")
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error     string `json:"error" example:"Invalid deposit amount: must be a positive number"`
	Code      string `json:"code,omitempty" example:"INVALID_AMOUNT"`
	RequestID string `json:"request_id,omitempty"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:     err.Message,
		Code:      err.Code,
		RequestID: err.RequestID,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

var (
	// ErrInsufficientEnergy is returned by EnergyPolicy.Consume on an empty balance
	ErrInsufficientEnergy = errors.New("insufficient energy")

	// ErrStoreNotConfigured is returned when a repository has no database handle
	ErrStoreNotConfigured = errors.New("record store is not configured")
)

// Error codes for different categories of errors
const (
	ErrCodeInvalidInput = "INVALID_INPUT"

	ErrCodeInvalidAmount      = "INVALID_AMOUNT"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeInsufficientEnergy = "INSUFFICIENT_ENERGY"
	ErrCodeCycleInProgress    = "CYCLE_IN_PROGRESS"

	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
	ErrCodeStoreError       = "STORE_ERROR"
)
