package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/qdryclean/qadmin/internal/domain/errors"
	"github.com/qdryclean/qadmin/internal/server/http/dto"
)

// AuthHandler processes sign-in, sign-out and the session views.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: false})
}

// Login handles POST /login. A successful sign-in always lands on the
// dashboard.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid input"})
		return
	}

	if _, err := h.facade.SignIn(c.Request.Context(), req.Login, req.Password); err != nil {
		c.JSON(loginStatus(err), dto.ErrorResponse{Error: domainErrors.LoginMessage(err)})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.facade.SignOut(); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to clear session"})
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// Dashboard handles GET /dashboard.
func (h *AuthHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SessionResponse{
		Authenticated: true,
		User:          h.facade.CurrentUser(),
	})
}

func loginStatus(err error) int {
	if errors.Is(err, domainErrors.ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}
	var httpErr *domainErrors.HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.Status == http.StatusUnauthorized:
			return http.StatusUnauthorized
		case httpErr.Status == http.StatusBadRequest:
			return http.StatusBadRequest
		default:
			return http.StatusBadGateway
		}
	}
	var transport *domainErrors.TransportError
	if errors.As(err, &transport) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
