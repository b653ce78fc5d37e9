package app

import (
	"context"

	"github.com/qdryclean/qadmin/internal/domain/model"
	"github.com/qdryclean/qadmin/internal/usecase"
)

// AdminFacade aggregates the use cases behind the single surface the HTTP
// shell talks to.
type AdminFacade struct {
	auth   *usecase.AuthUseCase
	orders *usecase.OrderUseCase
	users  *usecase.UserUseCase
}

// NewAdminFacade creates the facade over the application use cases.
func NewAdminFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, users *usecase.UserUseCase) *AdminFacade {
	return &AdminFacade{auth: auth, orders: orders, users: users}
}

func (f *AdminFacade) SignIn(ctx context.Context, login, password string) (*model.UserProfile, error) {
	return f.auth.SignIn(ctx, login, password)
}

func (f *AdminFacade) SignOut() error {
	return f.auth.SignOut()
}

func (f *AdminFacade) CurrentUser() *model.UserProfile {
	return f.auth.CurrentUser()
}

func (f *AdminFacade) EnsureOrdersLoaded(ctx context.Context) error {
	return f.orders.EnsureLoaded(ctx)
}

func (f *AdminFacade) SetDraftSearch(text string) {
	f.orders.SetDraftSearch(text)
}

func (f *AdminFacade) ApplyOrderSearch(ctx context.Context) error {
	return f.orders.ApplySearch(ctx)
}

func (f *AdminFacade) GoToOrderPage(ctx context.Context, page int) error {
	return f.orders.GoToPage(ctx, page)
}

func (f *AdminFacade) RefreshOrders(ctx context.Context) error {
	return f.orders.Refresh(ctx)
}

func (f *AdminFacade) OpenOrderForm() {
	f.orders.OpenForm()
}

func (f *AdminFacade) CloseOrderForm() {
	f.orders.CloseForm()
}

func (f *AdminFacade) CreateOrder(ctx context.Context, draft model.OrderDraft) error {
	f.orders.SetForm(draft)
	return f.orders.Create(ctx)
}

func (f *AdminFacade) OrdersView() usecase.OrderView {
	return f.orders.Snapshot()
}

func (f *AdminFacade) Users(ctx context.Context) ([]model.UserProfile, error) {
	return f.users.List(ctx)
}
