package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrSessionExpired is returned after the auth interception cleared the stored token
// and redirected to the login path.
var ErrSessionExpired = errors.New("session expired")

const (
	fallbackTransportMessage = "unable to reach the server"
	fallbackDecodeMessage    = "unexpected response from the server"
)

// authFailurePhrases are matched case-insensitively against error bodies.
var authFailurePhrases = []string{
	"invalid token",
	"token invalide",
	"user not found",
	"utilisateur non trouvé",
}

// Error is the single human-readable failure surfaced by the façades.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusOf returns the HTTP status carried by err, or 0 for transport failures.
func StatusOf(err error) int {
	var be *Error
	if errors.As(err, &be) {
		return be.Status
	}
	return 0
}

func isAuthFailure(status int, body []byte) bool {
	if status == 401 {
		return true
	}
	if len(body) == 0 {
		return false
	}
	lowered := strings.ToLower(string(body))
	for _, phrase := range authFailurePhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}

// translate builds the façade error for a non-2xx response: the server's
// message, detail or error field wins, otherwise a generic message.
func translate(status int, body []byte) *Error {
	msg := messageFromBody(body)
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}
	return &Error{Status: status, Message: msg}
}

func messageFromBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, field := range []string{"message", "detail", "error"} {
		raw, ok := payload[field]
		if !ok {
			continue
		}
		if msg := textFromRaw(raw); msg != "" {
			return msg
		}
	}
	return ""
}

// textFromRaw accepts a plain string, an object with a message/msg field, or a list
// of either (validation errors).
func textFromRaw(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		for _, key := range []string{"message", "msg"} {
			if inner, ok := obj[key]; ok {
				if msg := textFromRaw(inner); msg != "" {
					return msg
				}
			}
		}
		return ""
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			if msg := textFromRaw(item); msg != "" {
				parts = append(parts, msg)
			}
		}
		return strings.Join(parts, "; ")
	}
	return ""
}
