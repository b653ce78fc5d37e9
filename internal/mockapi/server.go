// Package mockapi is a stand-in QDryClean backend for local development and
// integration tests. It speaks the same wire contract as the production API:
// bearer auth, the {code, message, response} envelope and paged order lists.
package mockapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/qdryclean/qadmin/internal/domain/model"
	pkgAuth "github.com/qdryclean/qadmin/internal/pkg/auth"
)

const userIDContextKey = "userID"

type account struct {
	profile      model.UserProfile
	passwordHash string
}

// Server holds the in-memory tables behind the mock API.
type Server struct {
	tokens pkgAuth.Strategy
	hasher pkgAuth.PasswordHasher
	logger *slog.Logger

	mu       sync.Mutex
	accounts []account
	orders   []model.Order
	nextID   int64
}

// NewServer creates a server with seeded accounts and orders. The default
// operator credentials are admin/admin123.
func NewServer(secret string, logger *slog.Logger) (*Server, error) {
	s := &Server{
		tokens: pkgAuth.NewJWTStrategy(secret, pkgAuth.Options{}),
		hasher: pkgAuth.NewBcryptHasher(0),
		logger: logger,
	}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

// Router builds the gin engine serving the API under /api/v1.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	api := engine.Group("/api/v1")
	api.POST("/auth", s.handleAuth)

	authed := api.Group("")
	authed.Use(s.requireBearer())
	authed.GET("/users", s.handleUsers)
	authed.GET("/orders", s.handleListOrders)
	authed.POST("/orders", s.handleCreateOrder)

	return engine
}

func (s *Server) seed() error {
	seedHash, err := s.hasher.Hash("admin123")
	if err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}

	s.accounts = []account{
		{profile: model.UserProfile{ID: 1, FirstName: "Quentin", LastName: "Reiner", Login: "admin", UserRole: "admin"}, passwordHash: seedHash},
		{profile: model.UserProfile{ID: 2, FirstName: "Mila", LastName: "Ortiz", Login: "mila", UserRole: "operator"}, passwordHash: seedHash},
	}

	date := func(d string) *string { return &d }
	for i := int64(1); i <= 25; i++ {
		order := model.Order{
			ID:            i,
			CustomerID:    (i % 7) + 1,
			ReceiptNumber: 1000 + i,
			ProcessStatus: model.ProcessStatus(i % 6),
			Notes:         []string{},
			Items:         []model.OrderItem{{ID: i, Name: "coat", Quantity: 1}},
		}
		if i%3 == 0 {
			order.ExpectedCompletionDate = date("2026-09-15")
		}
		s.orders = append(s.orders, order)
	}
	s.nextID = int64(len(s.orders)) + 1
	return nil
}

type authRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (s *Server) handleAuth(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Login == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "login and password are required"})
		return
	}

	s.mu.Lock()
	var found *account
	for i := range s.accounts {
		if s.accounts[i].profile.Login == req.Login {
			found = &s.accounts[i]
			break
		}
	}
	s.mu.Unlock()

	if found == nil || s.hasher.Compare(found.passwordHash, req.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid login or password"})
		return
	}

	token, err := s.tokens.IssueToken(found.profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to issue token"})
		return
	}

	s.logger.Info("issued token", slog.String("login", req.Login))
	c.JSON(http.StatusOK, gin.H{"token": token, "user": found.profile})
}

func (s *Server) requireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		userID, err := s.tokens.ParseToken(strings.TrimSpace(header[7:]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(userIDContextKey, userID)
		c.Next()
	}
}

func (s *Server) handleUsers(c *gin.Context) {
	s.mu.Lock()
	users := make([]model.UserProfile, 0, len(s.accounts))
	for _, a := range s.accounts {
		users = append(users, a.profile)
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, users)
}

func (s *Server) handleListOrders(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}
	search := strings.TrimSpace(c.Query("search"))

	s.mu.Lock()
	matched := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if matchesSearch(o, search) {
			matched = append(matched, o)
		}
	}
	s.mu.Unlock()

	totalCount := len(matched)
	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	writeEnvelope(c, model.PageResult{
		Items:      matched[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	})
}

func (s *Server) handleCreateOrder(c *gin.Context) {
	var draft model.OrderDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed order payload"})
		return
	}

	if draft.CustomerID <= 0 || draft.ReceiptNumber <= 0 {
		writeEnvelopeError(c, 2, "customerId and receiptNumber must be positive")
		return
	}

	s.mu.Lock()
	for _, o := range s.orders {
		if o.ReceiptNumber == draft.ReceiptNumber {
			s.mu.Unlock()
			writeEnvelopeError(c, 3, "receipt number already registered")
			return
		}
	}

	order := model.Order{
		ID:                     s.nextID,
		CustomerID:             draft.CustomerID,
		ReceiptNumber:          draft.ReceiptNumber,
		ProcessStatus:          draft.ProcessStatus,
		ExpectedCompletionDate: draft.ExpectedCompletionDate,
		Notes:                  draft.Notes,
		Items:                  draft.Items,
	}
	if order.Notes == nil {
		order.Notes = []string{}
	}
	if order.Items == nil {
		order.Items = []model.OrderItem{}
	}
	s.nextID++
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	s.logger.Info("order created", slog.Int64("id", order.ID), slog.Int64("receipt", order.ReceiptNumber))
	writeEnvelope(c, order)
}

func matchesSearch(o model.Order, search string) bool {
	if search == "" {
		return true
	}
	for _, field := range []string{
		strconv.FormatInt(o.ID, 10),
		strconv.FormatInt(o.CustomerID, 10),
		strconv.FormatInt(o.ReceiptNumber, 10),
	} {
		if strings.Contains(field, search) {
			return true
		}
	}
	return false
}

func writeEnvelope(c *gin.Context, response any) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "", "response": response})
}

func writeEnvelopeError(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, gin.H{"code": code, "message": message, "response": nil})
}
