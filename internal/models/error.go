package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Shirt-specific errors
	ErrShirtNotFound    = "SHIRT_NOT_FOUND"
	ErrShirtInvalidData = "SHIRT_INVALID_DATA"

	// Auth errors (RFC 6749 compatible codes where applicable)
	ErrInvalidClient       = "invalid_client"
	ErrInvalidGrant        = "invalid_grant"
	ErrInvalidRefreshToken = "invalid_refresh_token"
	ErrInsufficientScope   = "insufficient_scope"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
