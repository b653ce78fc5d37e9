// Package errors defines the failure taxonomy shared by the backend client
// and the use cases, and the display-message extraction used by the shell.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired marks a 401 received on a call that carried a credential.
// It is produced only by the backend client's expiry path and is never shown
// to the user as text.
var ErrSessionExpired = errors.New("session expired")

// ErrInvalidCredentials marks empty login or password before any network call.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports a missing required field. It is resolved locally
// and never reaches the network.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field is empty: %s", e.Field)
}

// TransportError means no response was received from the server, including
// timeouts and connectivity failures.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError means the server responded with a failure status.
type HTTPError struct {
	Status int
	Body   []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http status %d", e.Status)
}

// AppError means the transport succeeded but the response envelope's code
// signalled an application-level failure.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Code)
}

const (
	genericTransportMessage = "connection error, check your network"
	genericRequestMessage   = "request failed"
)

// UserMessage extracts a display message from a classified error, in priority
// order: server-provided message field, server-provided error field, then a
// generic per-kind fallback. Expired sessions produce no text - the forced
// navigation handles them.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrSessionExpired) {
		return ""
	}

	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation.Error()
	}

	var app *AppError
	if errors.As(err, &app) {
		if app.Message != "" {
			return app.Message
		}
		return genericRequestMessage
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if msg := messageFromBody(httpErr.Body); msg != "" {
			return msg
		}
		return fmt.Sprintf("%s (status %d)", genericRequestMessage, httpErr.Status)
	}

	var transport *TransportError
	if errors.As(err, &transport) {
		return genericTransportMessage
	}

	return genericRequestMessage
}

// LoginMessage maps login failures to the fixed messages shown on the login
// form. During login no token is attached, so a 401 here is a plain
// authentication failure, not expiry.
func LoginMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrInvalidCredentials) {
		return "invalid credentials"
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.Status == http.StatusUnauthorized:
			return "invalid credentials"
		case httpErr.Status == http.StatusBadRequest:
			return "invalid input"
		case httpErr.Status >= 500:
			return "server error, retry later"
		}
		return UserMessage(err)
	}

	var transport *TransportError
	if errors.As(err, &transport) {
		return genericTransportMessage
	}

	return UserMessage(err)
}

// messageFromBody probes a JSON error body for the message and error fields.
func messageFromBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
