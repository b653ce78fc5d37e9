package dto

import "github.com/qdryclean/qadmin/internal/domain/model"

// LoginRequest describes login/password payload.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// SessionResponse reports the current session to the views.
type SessionResponse struct {
	Authenticated bool               `json:"authenticated"`
	User          *model.UserProfile `json:"user,omitempty"`
}

// ErrorResponse carries a display message for a failed operation.
type ErrorResponse struct {
	Error string `json:"error"`
}
