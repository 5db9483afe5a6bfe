package dto

import "time"

// ErrorResponse is the standardized JSON error envelope returned by the API.
//
// Fields:
//   - Message: human-readable description of the failure.
//   - ErrorDetails: optional underlying error text (omitted when empty).
//   - Timestamp: when the error response was built.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid asset_type"`
	ErrorDetails string    `json:"error,omitempty" example:"pq: connection refused"`
	Timestamp    time.Time `json:"timestamp" example:"2025-09-01T12:00:00Z"`
}

// Error implements the error interface so an ErrorResponse can be passed
// where an error is expected.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
