package models

// APIError is the JSON body of every failed API response
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes returned in APIError.Code
const (
	ErrBadRequest     = "BAD_REQUEST"
	ErrForbidden      = "FORBIDDEN"
	ErrNotFound       = "NOT_FOUND"
	ErrConflict       = "CONFLICT"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"

	ErrPizzaNotFound    = "PIZZA_NOT_FOUND"
	ErrPizzaInvalidData = "PIZZA_INVALID_DATA"
	ErrOfferNotFound    = "OFFER_NOT_FOUND"
	ErrClientNotFound   = "CLIENT_NOT_FOUND"
)

// NewAPIError builds an APIError; only the first details map is kept
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	apiErr := APIError{Code: code, Message: message}
	if len(details) > 0 {
		apiErr.Details = details[0]
	}
	return apiErr
}
