package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// endpoint. It carries a human-readable message plus optional detail from
// the underlying error, so clients can distinguish failure kinds without
// parsing free text.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"error" example:"invalid date range"`
	ErrorDetails string    `json:"details,omitempty" example:"start_date must not be after end_date"`
	Timestamp    time.Time `json:"timestamp" example:"2023-01-01T12:00:00Z"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error chain.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// inner error whose text becomes the details field.
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
