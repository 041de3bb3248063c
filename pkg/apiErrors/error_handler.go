package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes grouped by concern
const (
	// Authentication errors
	ErrInvalidCredentials    = "AUTH_001" // Invalid e-mail or password
	ErrUserDisabled          = "AUTH_002" // User deactivated
	ErrUserNotFound          = "AUTH_003" // User not found
	ErrInvalidToken          = "AUTH_004" // Invalid token
	ErrExpiredToken          = "AUTH_005" // Expired token
	ErrInsufficientPrivilege = "AUTH_006" // Insufficient privileges
	ErrUserAlreadyExists     = "AUTH_007" // User already exists

	// Validation errors
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Required data absent
	ErrInvalidFormat       = "VAL_003" // Invalid data format

	// Resource errors
	ErrAPIKeyNotFound = "KEY_001" // Unknown API key id

	// Server errors
	ErrInternalServer    = "SRV_001" // Internal server error
	ErrDatabaseOperation = "SRV_002" // Database operation failed
	ErrSteamAPI          = "SRV_003" // Steam partner API failure
	ErrKeystore          = "SRV_004" // Secure key store failure
)

// httpStatusMap maps error codes to HTTP status codes
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrAPIKeyNotFound:        http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrSteamAPI:              http.StatusBadGateway,
	ErrKeystore:              http.StatusInternalServerError,
}

// APIError is the standard error body returned to clients
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes a standardized error response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error into an APIError with the given code
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
