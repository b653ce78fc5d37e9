// Package backend is the single choke point for calls to the QDryClean API.
// It injects the current session credential, classifies failures and detects
// session expiry.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	domainErrors "github.com/qdryclean/qadmin/internal/domain/errors"
	"github.com/qdryclean/qadmin/internal/domain/model"
	"github.com/qdryclean/qadmin/internal/session"
)

// Client exposes the QDryClean API operations used by the admin shell.
type Client interface {
	Login(ctx context.Context, login, password string) (string, *model.UserProfile, error)
	Users(ctx context.Context) ([]model.UserProfile, error)
	Orders(ctx context.Context, query model.PageQuery) (*model.PageResult, error)
	CreateOrder(ctx context.Context, draft model.OrderDraft) error
}

// HTTPClient implements Client over JSON HTTP.
type HTTPClient struct {
	baseURL     *url.URL
	httpClient  *http.Client
	sessions    session.Store
	invalidated *session.Invalidation
	logger      *slog.Logger
}

// envelope wraps list/create responses. A non-zero code is an application
// failure even when the transport status is 200.
type envelope struct {
	Code     int             `json:"code"`
	Message  string          `json:"message"`
	Response json.RawMessage `json:"response"`
}

type loginResponse struct {
	Token string             `json:"token"`
	User  *model.UserProfile `json:"user"`
}

// NewHTTPClient creates the API client. The base URL must be absolute; the
// timeout bounds every call and resolves through the transport-failure path.
func NewHTTPClient(baseURL string, timeout time.Duration, sessions session.Store, invalidated *session.Invalidation, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse API base url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("API base url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:     parsed,
		sessions:    sessions,
		invalidated: invalidated,
		logger:      logger,
		httpClient:  &http.Client{Timeout: timeout},
	}, nil
}

// Login performs POST /auth. No credential is attached, so a 401 here is an
// ordinary authentication failure, never expiry. The returned session is not
// stored; that is the caller's decision.
func (c *HTTPClient) Login(ctx context.Context, login, password string) (string, *model.UserProfile, error) {
	payload := map[string]string{"login": login, "password": password}

	body, err := c.do(ctx, http.MethodPost, "/auth", nil, payload)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	var result loginResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", nil, fmt.Errorf("login: decode response: %w", err)
	}
	if result.Token == "" || result.User == nil {
		return "", nil, fmt.Errorf("login: server returned incomplete session")
	}
	return result.Token, result.User, nil
}

// Users performs GET /users.
func (c *HTTPClient) Users(ctx context.Context) ([]model.UserProfile, error) {
	body, err := c.do(ctx, http.MethodGet, "/users", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var users []model.UserProfile
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("list users: decode response: %w", err)
	}
	return users, nil
}

// Orders performs GET /orders for one page.
func (c *HTTPClient) Orders(ctx context.Context, query model.PageQuery) (*model.PageResult, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("pageSize", strconv.Itoa(query.PageSize))
	if query.Search != "" {
		params.Set("search", query.Search)
	}

	body, err := c.do(ctx, http.MethodGet, "/orders", params, nil)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	var result model.PageResult
	if err := json.Unmarshal(env.Response, &result); err != nil {
		return nil, fmt.Errorf("list orders: decode page: %w", err)
	}
	return &result, nil
}

// CreateOrder performs POST /orders.
func (c *HTTPClient) CreateOrder(ctx context.Context, draft model.OrderDraft) error {
	body, err := c.do(ctx, http.MethodPost, "/orders", nil, draft)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	if _, err := decodeEnvelope(body); err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// do performs one call and classifies the outcome. The session credential is
// read at call time, never cached, so a login or logout between calls always
// takes effect on the next request.
func (c *HTTPClient) do(ctx context.Context, method, endpoint string, params url.Values, payload any) ([]byte, error) {
	target := *c.baseURL
	target.Path = path.Join(target.Path, endpoint)
	if params != nil {
		target.RawQuery = params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token := c.sessions.Token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domainErrors.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domainErrors.TransportError{Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		c.expire()
		return nil, domainErrors.ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("api request failed",
			slog.String("method", method),
			slog.String("path", endpoint),
			slog.Int("status", resp.StatusCode),
		)
		return nil, &domainErrors.HTTPError{Status: resp.StatusCode, Body: body}
	}

	return body, nil
}

// expire handles a 401 observed while a credential was attached. Logout
// reports whether this observer actually cleared the session, so concurrent
// observers of the same expiry collapse into a single signal.
func (c *HTTPClient) expire() {
	cleared, err := c.sessions.Logout()
	if err != nil {
		c.logger.Error("failed to clear expired session", slog.String("error", err.Error()))
		return
	}
	if cleared {
		c.logger.Info("session expired, invalidation signalled")
		c.invalidated.Notify()
	}
}

func decodeEnvelope(body []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Code != 0 {
		return nil, &domainErrors.AppError{Code: env.Code, Message: env.Message}
	}
	return &env, nil
}
