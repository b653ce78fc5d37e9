package handlers

import (
	"context"

	"github.com/qdryclean/qadmin/internal/domain/model"
	"github.com/qdryclean/qadmin/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	SignIn(ctx context.Context, login, password string) (*model.UserProfile, error)
	SignOut() error
	CurrentUser() *model.UserProfile
}

// OrderFacade exposes the order list controller to the shell.
type OrderFacade interface {
	EnsureOrdersLoaded(ctx context.Context) error
	SetDraftSearch(text string)
	ApplyOrderSearch(ctx context.Context) error
	GoToOrderPage(ctx context.Context, page int) error
	RefreshOrders(ctx context.Context) error
	OpenOrderForm()
	CloseOrderForm()
	CreateOrder(ctx context.Context, draft model.OrderDraft) error
	OrdersView() usecase.OrderView
}

// UserFacade provides the account listing.
type UserFacade interface {
	Users(ctx context.Context) ([]model.UserProfile, error)
}

// AdminFacade aggregates the full set of operations used across handlers.
type AdminFacade interface {
	AuthFacade
	OrderFacade
	UserFacade
}
