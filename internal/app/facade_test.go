package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/qdryclean/qadmin/internal/domain/model"
	"github.com/qdryclean/qadmin/internal/session"
	testhelpers "github.com/qdryclean/qadmin/internal/test"
	"github.com/qdryclean/qadmin/internal/usecase"
)

func newFacade(stub *testhelpers.BackendStub) (*AdminFacade, session.Store) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := session.NewMemoryStore()
	auth := usecase.NewAuthUseCase(stub, store, logger)
	orders := usecase.NewOrderUseCase(stub, 10, logger)
	users := usecase.NewUserUseCase(stub)
	return NewAdminFacade(auth, orders, users), store
}

func TestAdminFacadeAuth(t *testing.T) {
	facade, store := newFacade(&testhelpers.BackendStub{})

	user, err := facade.SignIn(context.Background(), "admin", "pw")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if user == nil || user.Login != "admin" {
		t.Fatalf("user = %+v", user)
	}
	if !store.IsAuthenticated() {
		t.Fatal("store must hold the session after sign-in")
	}
	if got := facade.CurrentUser(); got == nil || got.Login != "admin" {
		t.Fatalf("CurrentUser = %+v", got)
	}

	if err := facade.SignOut(); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if store.IsAuthenticated() {
		t.Fatal("store must be cleared after sign-out")
	}
}

func TestAdminFacadeOrders(t *testing.T) {
	stub := &testhelpers.BackendStub{}
	facade, _ := newFacade(stub)
	ctx := context.Background()

	if err := facade.EnsureOrdersLoaded(ctx); err != nil {
		t.Fatalf("EnsureOrdersLoaded: %v", err)
	}
	facade.SetDraftSearch("widget")
	if err := facade.ApplyOrderSearch(ctx); err != nil {
		t.Fatalf("ApplyOrderSearch: %v", err)
	}

	queries := stub.Queries()
	if len(queries) != 2 {
		t.Fatalf("len(queries) = %d, want 2", len(queries))
	}
	if queries[1].Search != "widget" || queries[1].Page != 1 {
		t.Fatalf("search query = %+v", queries[1])
	}

	view := facade.OrdersView()
	if view.AppliedSearch != "widget" {
		t.Fatalf("view = %+v", view)
	}
}

func TestAdminFacadeCreateOrder(t *testing.T) {
	stub := &testhelpers.BackendStub{}
	facade, _ := newFacade(stub)

	err := facade.CreateOrder(context.Background(), model.OrderDraft{CustomerID: 3, ReceiptNumber: 42})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	drafts := stub.Drafts()
	if len(drafts) != 1 || drafts[0].ReceiptNumber != 42 {
		t.Fatalf("drafts = %+v", drafts)
	}
}

func TestAdminFacadeUsers(t *testing.T) {
	facade, _ := newFacade(&testhelpers.BackendStub{})

	users, err := facade.Users(context.Background())
	if err != nil {
		t.Fatalf("Users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("users = %+v", users)
	}
}
