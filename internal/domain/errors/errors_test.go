package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestUserMessagePrefersServerMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "http error with message field",
			err:  &HTTPError{Status: 409, Body: []byte(`{"message":"receipt already exists"}`)},
			want: "receipt already exists",
		},
		{
			name: "http error with error field",
			err:  &HTTPError{Status: 500, Body: []byte(`{"error":"database down"}`)},
			want: "database down",
		},
		{
			name: "http error message wins over error",
			err:  &HTTPError{Status: 500, Body: []byte(`{"message":"primary","error":"secondary"}`)},
			want: "primary",
		},
		{
			name: "http error with unparseable body",
			err:  &HTTPError{Status: 503, Body: []byte("<html>")},
			want: "request failed (status 503)",
		},
		{
			name: "transport error",
			err:  &TransportError{Err: errors.New("dial tcp: timeout")},
			want: "connection error, check your network",
		},
		{
			name: "application error with message",
			err:  &AppError{Code: 2, Message: "unknown customer"},
			want: "unknown customer",
		},
		{
			name: "application error without message",
			err:  &AppError{Code: 2},
			want: "request failed",
		},
		{
			name: "validation error",
			err:  &ValidationError{Field: "customerId"},
			want: "required field is empty: customerId",
		},
		{
			name: "expired session has no text",
			err:  ErrSessionExpired,
			want: "",
		},
		{
			name: "wrapped expired session has no text",
			err:  fmt.Errorf("fetch orders: %w", ErrSessionExpired),
			want: "",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := UserMessage(tc.err); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLoginMessageMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"unauthorized", &HTTPError{Status: 401}, "invalid credentials"},
		{"bad request", &HTTPError{Status: 400}, "invalid input"},
		{"server error", &HTTPError{Status: 500}, "server error, retry later"},
		{"bad gateway", &HTTPError{Status: 502}, "server error, retry later"},
		{"transport", &TransportError{Err: errors.New("refused")}, "connection error, check your network"},
		{"empty credentials", ErrInvalidCredentials, "invalid credentials"},
		{"nil", nil, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LoginMessage(tc.err); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTransportErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("login: %w", &TransportError{Err: cause})

	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatal("expected TransportError in chain")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable via errors.Is")
	}
}
