// Package test holds shared stubs for unit tests across packages.
package test

import (
	"context"
	"sync"

	"github.com/qdryclean/qadmin/internal/domain/model"
)

// BackendStub provides controllable behaviour for the API client interface.
// Zero-value functions fall back to benign defaults.
type BackendStub struct {
	LoginFn  func(context.Context, string, string) (string, *model.UserProfile, error)
	UsersFn  func(context.Context) ([]model.UserProfile, error)
	OrdersFn func(context.Context, model.PageQuery) (*model.PageResult, error)
	CreateFn func(context.Context, model.OrderDraft) error

	mu      sync.Mutex
	queries []model.PageQuery
	drafts  []model.OrderDraft
}

// Login delegates to LoginFn or returns a fixed session.
func (s *BackendStub) Login(ctx context.Context, login, password string) (string, *model.UserProfile, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, login, password)
	}
	return "stub-token", &model.UserProfile{ID: 1, Login: login}, nil
}

// Users delegates to UsersFn or returns one profile.
func (s *BackendStub) Users(ctx context.Context) ([]model.UserProfile, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.UserProfile{{ID: 1, Login: "alice"}}, nil
}

// Orders records the query and delegates to OrdersFn or echoes an empty page.
func (s *BackendStub) Orders(ctx context.Context, query model.PageQuery) (*model.PageResult, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()

	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, query)
	}
	return &model.PageResult{Page: query.Page, PageSize: query.PageSize, TotalPages: 1}, nil
}

// CreateOrder records the draft and delegates to CreateFn.
func (s *BackendStub) CreateOrder(ctx context.Context, draft model.OrderDraft) error {
	s.mu.Lock()
	s.drafts = append(s.drafts, draft)
	s.mu.Unlock()

	if s.CreateFn != nil {
		return s.CreateFn(ctx, draft)
	}
	return nil
}

// Queries returns a copy of all recorded list queries.
func (s *BackendStub) Queries() []model.PageQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.PageQuery, len(s.queries))
	copy(out, s.queries)
	return out
}

// Drafts returns a copy of all recorded creation payloads.
func (s *BackendStub) Drafts() []model.OrderDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.OrderDraft, len(s.drafts))
	copy(out, s.drafts)
	return out
}
