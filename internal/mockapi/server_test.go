package mockapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/qdryclean/qadmin/internal/domain/model"
)

func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv, err := NewServer("test-secret", slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv, srv.Router()
}

func performJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := performJSON(router, http.MethodPost, "/api/v1/auth", "", map[string]string{
		"login":    "admin",
		"password": "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("auth status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string            `json:"token"`
		User  model.UserProfile `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode auth response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty token")
	}
	if resp.User.Login != "admin" {
		t.Fatalf("user login = %q, want admin", resp.User.Login)
	}
	return resp.Token
}

type ordersEnvelope struct {
	Code     int              `json:"code"`
	Message  string           `json:"message"`
	Response model.PageResult `json:"response"`
}

func TestAuthRejectsBadCredentials(t *testing.T) {
	_, router := newTestServer(t)

	w := performJSON(router, http.MethodPost, "/api/v1/auth", "", map[string]string{
		"login":    "admin",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthRejectsMalformedRequest(t *testing.T) {
	_, router := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	_, router := newTestServer(t)

	for _, path := range []string{"/api/v1/users", "/api/v1/orders"} {
		w := performJSON(router, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s status = %d, want 401", path, w.Code)
		}
	}

	w := performJSON(router, http.MethodGet, "/api/v1/orders", "not-a-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token status = %d, want 401", w.Code)
	}
}

func TestUsersListsSeededAccounts(t *testing.T) {
	_, router := newTestServer(t)
	token := loginAdmin(t, router)

	w := performJSON(router, http.MethodGet, "/api/v1/users", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var users []model.UserProfile
	if err := json.Unmarshal(w.Body.Bytes(), &users); err != nil {
		t.Fatalf("decode users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len(users) = %d, want 2", len(users))
	}
}

func TestOrdersPaging(t *testing.T) {
	_, router := newTestServer(t)
	token := loginAdmin(t, router)

	w := performJSON(router, http.MethodGet, "/api/v1/orders?page=3&pageSize=10", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var env ordersEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Code != 0 {
		t.Fatalf("envelope code = %d", env.Code)
	}
	if env.Response.TotalCount != 25 || env.Response.TotalPages != 3 {
		t.Fatalf("totals = %d/%d, want 25/3", env.Response.TotalCount, env.Response.TotalPages)
	}
	if len(env.Response.Items) != 5 {
		t.Fatalf("len(items) on last page = %d, want 5", len(env.Response.Items))
	}
}

func TestOrdersSearchFiltersByReceipt(t *testing.T) {
	_, router := newTestServer(t)
	token := loginAdmin(t, router)

	w := performJSON(router, http.MethodGet, "/api/v1/orders?search=1007", token, nil)
	var env ordersEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Response.TotalCount != 1 {
		t.Fatalf("total = %d, want 1", env.Response.TotalCount)
	}
	if env.Response.Items[0].ReceiptNumber != 1007 {
		t.Fatalf("receipt = %d, want 1007", env.Response.Items[0].ReceiptNumber)
	}
}

func TestOrdersClampOutOfRangePage(t *testing.T) {
	_, router := newTestServer(t)
	token := loginAdmin(t, router)

	w := performJSON(router, http.MethodGet, "/api/v1/orders?page=99", token, nil)
	var env ordersEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Response.Page != 3 {
		t.Fatalf("page = %d, want clamp to 3", env.Response.Page)
	}
}

func TestCreateOrderAppends(t *testing.T) {
	_, router := newTestServer(t)
	token := loginAdmin(t, router)

	w := performJSON(router, http.MethodPost, "/api/v1/orders", token, model.OrderDraft{
		CustomerID:    4,
		ReceiptNumber: 9001,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var env struct {
		Code     int         `json:"code"`
		Response model.Order `json:"response"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Code != 0 {
		t.Fatalf("code = %d", env.Code)
	}
	if env.Response.ID != 26 || env.Response.ReceiptNumber != 9001 {
		t.Fatalf("created order = %+v", env.Response)
	}

	list := performJSON(router, http.MethodGet, "/api/v1/orders", token, nil)
	var listEnv ordersEnvelope
	if err := json.Unmarshal(list.Body.Bytes(), &listEnv); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if listEnv.Response.TotalCount != 26 {
		t.Fatalf("total after create = %d, want 26", listEnv.Response.TotalCount)
	}
}

func TestCreateOrderRejectsDuplicateReceipt(t *testing.T) {
	_, router := newTestServer(t)
	token := loginAdmin(t, router)

	w := performJSON(router, http.MethodPost, "/api/v1/orders", token, model.OrderDraft{
		CustomerID:    4,
		ReceiptNumber: 1001,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, app errors ride the envelope", w.Code)
	}
	var env struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Code == 0 || env.Message == "" {
		t.Fatalf("envelope = %+v, want non-zero code with message", env)
	}
}

func TestCreateOrderValidatesFields(t *testing.T) {
	_, router := newTestServer(t)
	token := loginAdmin(t, router)

	w := performJSON(router, http.MethodPost, "/api/v1/orders", token, model.OrderDraft{
		CustomerID:    0,
		ReceiptNumber: 9002,
	})
	var env struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Code == 0 {
		t.Fatal("want validation failure code")
	}
}
