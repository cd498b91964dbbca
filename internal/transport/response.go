// Package transport contains the HTTP router, middleware chain, and all
// request handlers for the gateway API.
package transport

import (
	"encoding/json"
	"net/http"

	"github.com/apilooter/gateway/model"
)

// statusForCode maps ErrorEnvelope codes to HTTP status codes.
var statusForCode = map[string]int{
	model.ErrBadRequest:      http.StatusBadRequest,
	model.ErrNotFound:        http.StatusNotFound,
	model.ErrValidationError: http.StatusUnprocessableEntity,
	model.ErrRateLimited:     http.StatusTooManyRequests,
	model.ErrInternalError:   http.StatusInternalServerError,
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

// WriteError writes an ErrorEnvelope as a JSON response with the correct
// HTTP status code. If err is not an *ErrorEnvelope, a generic 500 is returned.
func WriteError(w http.ResponseWriter, err error) {
	ee, ok := err.(*model.ErrorEnvelope)
	if !ok {
		ee = model.NewInternalError()
	}

	status := statusForCode[ee.Code]
	if status == 0 {
		status = http.StatusInternalServerError
	}

	type errorResponse struct {
		Error *model.ErrorEnvelope `json:"error"`
	}
	WriteJSON(w, status, errorResponse{Error: ee})
}

// WriteNotFound writes a 404 error response.
func WriteNotFound(w http.ResponseWriter, msg string) {
	WriteError(w, model.NewNotFoundError(msg))
}

// rateLimitedResponse is the flat body written for 429 responses. It is not
// wrapped in the standard error envelope; rate limiting predates dispatch and
// clients key off the retry hint.
type rateLimitedResponse struct {
	Error             string `json:"error"`
	Message           string `json:"message"`
	RetryAfterSeconds int    `json:"retry_after_seconds"`
}

// WriteRateLimited writes the flat 429 response with a retry hint.
func WriteRateLimited(w http.ResponseWriter, retryAfterSeconds int) {
	WriteJSON(w, http.StatusTooManyRequests, rateLimitedResponse{
		Error:             "rate_limited",
		Message:           "Rate limit exceeded. Please try again later.",
		RetryAfterSeconds: retryAfterSeconds,
	})
}
