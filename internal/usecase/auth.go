package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/qdryclean/qadmin/internal/adapter/backend"
	domainErrors "github.com/qdryclean/qadmin/internal/domain/errors"
	"github.com/qdryclean/qadmin/internal/domain/model"
	"github.com/qdryclean/qadmin/internal/session"
)

// AuthUseCase drives the login flow and owns nothing beyond it: session
// state lives in the store, which is replaced wholesale on success.
type AuthUseCase struct {
	client   backend.Client
	sessions session.Store
	logger   *slog.Logger
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(client backend.Client, sessions session.Store, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{client: client, sessions: sessions, logger: logger}
}

// SignIn authenticates against the API and stores the returned session
// atomically. On any failure the store is left untouched.
func (u *AuthUseCase) SignIn(ctx context.Context, login, password string) (*model.UserProfile, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	token, user, err := u.client.Login(ctx, login, password)
	if err != nil {
		return nil, err
	}

	if err := u.sessions.Login(token, user); err != nil {
		return nil, err
	}

	u.logger.Info("signed in", slog.String("login", user.Login))
	return user, nil
}

// SignOut clears the session. Signing out of an empty session is a no-op.
func (u *AuthUseCase) SignOut() error {
	cleared, err := u.sessions.Logout()
	if err != nil {
		return err
	}
	if cleared {
		u.logger.Info("signed out")
	}
	return nil
}

// CurrentUser returns the profile held by the session store, if any.
func (u *AuthUseCase) CurrentUser() *model.UserProfile {
	return u.sessions.CurrentUser()
}
