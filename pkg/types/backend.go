package types

import "encoding/json"

// BackendEnvelope is the outer object returned by the REST backend, e.g. {message, data}.
type BackendEnvelope struct {
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// HasData reports whether the envelope carried a non-null data field.
func (e BackendEnvelope) HasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}

// SuccessEnvelope wraps every 2xx body of the room-builder API.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the error body of the room-builder API. Message is what the
// client shows; the backend client reads it back through the same field.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
