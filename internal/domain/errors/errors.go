package errors

import (
	"net/http"

	"authhub/internal/errors"
)

// Kind is the closed set of failure categories surfaced at the HTTP boundary.
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindInvalidNonce
	KindRateLimited
	KindUpstream
	KindInternal
)

var kindNames = map[Kind]string{
	KindBadRequest:   "BadRequest",
	KindUnauthorized: "Unauthorized",
	KindForbidden:    "Forbidden",
	KindNotFound:     "NotFound",
	KindInvalidNonce: "InvalidNonce",
	KindRateLimited:  "RateLimited",
	KindUpstream:     "UpstreamError",
	KindInternal:     "InternalError",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "InternalError"
}

// HTTPCode maps the kind onto its response status.
func (k Kind) HTTPCode() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidNonce:
		return http.StatusUnprocessableEntity
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Server-side context, never sent to clients
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

func NewBaseError(kind Kind, errorCode, message string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
	}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + " [" + e.details + "]"
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// Is matches predefined errors by business code so WithDetails copies still compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails returns a copy carrying server-side context such as an identity id.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrBadRequest       = NewBaseError(KindBadRequest, "BAD_REQUEST", "Bad request")
	ErrValidationFailed = NewBaseError(KindBadRequest, "VALIDATION_FAILED", "Invalid request payload")

	// Session
	ErrUnauthorized   = NewBaseError(KindUnauthorized, "UNAUTHORIZED", "Unauthorized")
	ErrSessionExpired = NewBaseError(KindUnauthorized, "SESSION_EXPIRED", "Session expired")
	ErrForbidden      = NewBaseError(KindForbidden, "FORBIDDEN", "Forbidden")

	// EVM
	ErrInvalidSIWEMessage = NewBaseError(KindBadRequest, "INVALID_SIWE_MESSAGE", "Invalid SIWE message")
	ErrUnsupportedChain   = NewBaseError(KindBadRequest, "UNSUPPORTED_CHAIN", "Unsupported chain")
	ErrInvalidSignature   = NewBaseError(KindUnauthorized, "INVALID_SIGNATURE", "Unauthorized")
	ErrInvalidNonce       = NewBaseError(KindInvalidNonce, "INVALID_NONCE", "Invalid nonce")

	// X
	ErrXNotConfigured       = NewBaseError(KindInternal, "X_NOT_CONFIGURED", "X client not initialized")
	ErrRefreshTokenNotFound = NewBaseError(KindNotFound, "REFRESH_TOKEN_NOT_FOUND", "Refresh token not found")
	ErrAccessTokenNotFound  = NewBaseError(KindNotFound, "ACCESS_TOKEN_NOT_FOUND", "Access token not found")

	// WhatsApp
	ErrWhatsAppNotConfigured = NewBaseError(KindInternal, "WHATSAPP_NOT_CONFIGURED", "WhatsApp client not initialized")
	ErrInvalidPhoneNumber    = NewBaseError(KindBadRequest, "INVALID_PHONE_NUMBER", "Invalid phone number format. Use international format, e.g. +1234567890")
	ErrOTPRequired           = NewBaseError(KindBadRequest, "OTP_REQUIRED", "OTP code is required")
	ErrNoOTP                 = NewBaseError(KindBadRequest, "NO_OTP", "No OTP found. Please request a new OTP")
	ErrOTPExpired            = NewBaseError(KindBadRequest, "OTP_EXPIRED", "OTP has expired. Please request a new OTP")
	ErrInvalidOTP            = NewBaseError(KindBadRequest, "INVALID_OTP", "Invalid OTP code")
	ErrTooManyOTPRequests    = NewBaseError(KindRateLimited, "TOO_MANY_OTP_REQUESTS", "Too many OTP requests. Please try again later")
	ErrTooManyOTPAttempts    = NewBaseError(KindRateLimited, "TOO_MANY_OTP_ATTEMPTS", "Too many invalid attempts. Please request a new OTP")

	// Identity
	ErrUserNotFound      = NewBaseError(KindNotFound, "USER_NOT_FOUND", "User not found")
	ErrAPISecretNotFound = NewBaseError(KindNotFound, "API_SECRET_NOT_FOUND", "API secret not found")
	ErrNotFound          = NewBaseError(KindNotFound, "NOT_FOUND", "Not found")

	// General errors
	ErrUpstream      = NewBaseError(KindUpstream, "UPSTREAM_ERROR", "Upstream service error")
	ErrInternalError = NewBaseError(KindInternal, "INTERNAL_ERROR", "Internal server error")
)

// causedError is an AppError that keeps the underlying failure for logs.
type causedError struct {
	*BaseError
	cause error
}

func (e *causedError) Error() string {
	return errors.Wrap(e.cause, e.BaseError.Error()).Error()
}

func (e *causedError) Unwrap() error {
	return e.cause
}

// NewUpstreamError reports a provider, chain or messaging API failure.
func NewUpstreamError(err error, details string) AppError {
	return &causedError{BaseError: ErrUpstream.WithDetails(details), cause: err}
}

// NewInternalError reports a storage or encryption failure.
func NewInternalError(err error, details string) AppError {
	return &causedError{BaseError: ErrInternalError.WithDetails(details), cause: err}
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &causedError{
		BaseError: NewBaseError(KindInternal, "DATABASE_EXECUTE_FAILED", "Internal server error").WithDetails(details),
		cause:     err,
	}
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
