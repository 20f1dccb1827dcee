package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	origin    *BaseError // predefined error this one was derived from by WithDetails
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	origin := e
	if e.origin != nil {
		origin = e.origin
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		origin:    origin,
	}
}

// Is reports whether target is the predefined error e was derived from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.origin != nil && e.origin == t
}

// Predefined error types
var (
	// Token errors. Malformed and SignatureInvalid render identically so clients
	// cannot tell which check failed.
	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"The token is invalid.",
		"",
	)

	ErrTokenSignatureInvalid = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"The token is invalid.",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"The token has expired.",
		"",
	)

	ErrInvalidTokenPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TOKEN_PAYLOAD",
		"Invalid token payload.",
		"",
	)

	ErrTokenRequired = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_REQUIRED",
		"Token is required.",
		"",
	)

	ErrIntentSubjectMismatch = NewBaseError(
		http.StatusForbidden,
		"INTENT_SUBJECT_MISMATCH",
		"The token was issued for another user.",
		"",
	)

	// Gate errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Unauthorized. Please log in.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied. Admins only.",
		"",
	)

	// Credential errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials.",
		"",
	)

	ErrInvalidCurrentPassword = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CURRENT_PASSWORD",
		"Invalid current password.",
		"",
	)

	ErrResetTokenMismatch = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_MISMATCH",
		"Invalid reset token.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed.",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"The password does not meet the strength requirements.",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"User with the same email or username already exists.",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user.",
		"",
	)

	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found.",
		"",
	)

	ErrProductInUse = NewBaseError(
		http.StatusConflict,
		"PRODUCT_IN_USE",
		"Product is referenced by existing orders.",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Not enough stock for the requested product.",
		"",
	)

	ErrTagNotFound = NewBaseError(
		http.StatusNotFound,
		"TAG_NOT_FOUND",
		"Tag not found.",
		"",
	)

	ErrTagAlreadyExists = NewBaseError(
		http.StatusConflict,
		"TAG_ALREADY_EXISTS",
		"Tag already exists.",
		"",
	)

	ErrCatalogUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CATALOG_UNAVAILABLE",
		"Product catalog import is not configured.",
		"",
	)

	ErrCatalogDocumentInvalid = NewBaseError(
		http.StatusBadRequest,
		"CATALOG_DOCUMENT_INVALID",
		"The product catalog document is invalid.",
		"",
	)

	ErrCatalogDocumentNotFound = NewBaseError(
		http.StatusNotFound,
		"CATALOG_DOCUMENT_NOT_FOUND",
		"The product catalog document was not found.",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found.",
		"",
	)

	ErrOrderDetailNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_DETAIL_NOT_FOUND",
		"OrderDetail not found.",
		"",
	)

	ErrOrderOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"ORDER_OWNERSHIP_VIOLATION",
		"You are not authorized to cancel this order.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed.",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found.",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
