package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned by the admin API.
const (
	// Authentication errors (1000-1999)
	ErrInvalidAPIKey = "AUTH_001" // missing or wrong API key

	// Validation errors (2000-2999)
	ErrInvalidRequest      = "VAL_001" // invalid request
	ErrMissingRequiredData = "VAL_002" // required data absent

	// Server errors (5000-5999)
	ErrInternalServer    = "SRV_001" // internal server error
	ErrDatabaseOperation = "SRV_002" // database operation failed
	ErrExternalService   = "SRV_003" // external service failed
)

var httpStatusMap = map[string]int{
	ErrInvalidAPIKey:       http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError is the standard error payload of the admin API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error payload to the HTTP response.
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
