package errors

import (
	"net/http"

	"clubrelay/internal/errors"
)

// AppError is an error the delivery layer can render without further mapping.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is a static AppError. Copies made by WithDetails still match the
// original under errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage annotates the error while keeping it an AppError for errors.As.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy carrying client-visible details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Is matches any BaseError with the same code and message, ignoring details.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.message == t.message
}

func badRequest(code, message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, code, message, "")
}

func unauthorized(code, message string) *BaseError {
	return NewBaseError(http.StatusUnauthorized, code, message, "")
}

func notFound(code, message string) *BaseError {
	return NewBaseError(http.StatusNotFound, code, message, "")
}

func conflict(code, message string) *BaseError {
	return NewBaseError(http.StatusConflict, code, message, "")
}

func internal(code, message string) *BaseError {
	return NewBaseError(http.StatusInternalServerError, code, message, "")
}

// Request validation
var (
	ErrValidationFailed        = badRequest("VALIDATION_FAILED", "Input validation failed")
	ErrMissingUserKey          = badRequest("VALIDATION_FAILED", "externalId or email is required")
	ErrInvalidPlatform         = badRequest("INVALID_PLATFORM", "platform must be ios or android")
	ErrInvalidAction           = badRequest("INVALID_ACTION", "action must be hold, resume or delete")
	ErrInvalidWebhookPayload   = badRequest("INVALID_WEBHOOK_PAYLOAD", "Webhook body is not valid JSON")
	ErrRequestAlreadyProcessed = badRequest("REQUEST_ALREADY_PROCESSED", "Deletion request has already been processed")
)

// Credentials
var (
	ErrUnauthorized     = unauthorized("UNAUTHORIZED", "Missing or invalid credentials")
	ErrInvalidAPIKey    = unauthorized("INVALID_API_KEY", "Missing or invalid API key")
	ErrInvalidSignature = unauthorized("INVALID_SIGNATURE", "Webhook signature mismatch")
	ErrForbidden        = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Access denied", "")
)

// Lookups
var (
	ErrNotFound                = notFound("NOT_FOUND", "Resource not found")
	ErrUserNotFound            = notFound("USER_NOT_FOUND", "User not found")
	ErrDeviceNotFound          = notFound("DEVICE_NOT_FOUND", "Device not found")
	ErrDeletionRequestNotFound = notFound("DELETION_REQUEST_NOT_FOUND", "Deletion request not found")
)

// Concurrency
var (
	ErrConflict     = conflict("CONFLICT", "Resource conflict")
	ErrStateChanged = conflict("STATE_CHANGED", "Deletion request changed state concurrently")
)

// Server side
var (
	ErrInternalError      = internal("INTERNAL_ERROR", "Internal server error")
	ErrTransactionFailed  = internal("TRANSACTION_FAILED", "Database transaction failed")
	ErrUserDeletionFailed = internal("USER_DELETION_FAILED", "Request marked deleted but removing the user failed")
)

// DatabaseExecuteError hides driver errors from clients while keeping them unwrappable.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
