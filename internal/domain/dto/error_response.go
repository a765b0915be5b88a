package dto

import "time"

// ErrorResponse is the standardized JSON error envelope returned by the API.
//
// Fields:
//   - Message: human-readable description of what failed ("error" key, per API contract).
//   - ErrorDetails: underlying error text, omitted when there is no inner error.
//   - Timestamp: when the error response was built.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"error" example:"failed to fetch income statements"`
	ErrorDetails string    `json:"details,omitempty" example:"unexpected status 403"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// inner error.
//
// Parameters:
//   - message (string): Human-readable summary.
//   - err (error): Underlying cause; may be nil.
//
// Returns:
//   - ErrorResponse: envelope ready for serialization.
func NewErrorResponse(message string, err error) ErrorResponse {
	e := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		e.ErrorDetails = err.Error()
	}
	return e
}
