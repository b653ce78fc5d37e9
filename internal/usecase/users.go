package usecase

import (
	"context"

	"github.com/qdryclean/qadmin/internal/adapter/backend"
	"github.com/qdryclean/qadmin/internal/domain/model"
)

// UserUseCase exposes the employee directory.
type UserUseCase struct {
	client backend.Client
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(client backend.Client) *UserUseCase {
	return &UserUseCase{client: client}
}

// List returns all user profiles.
func (u *UserUseCase) List(ctx context.Context) ([]model.UserProfile, error) {
	return u.client.Users(ctx)
}
