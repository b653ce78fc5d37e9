package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qdryclean/qadmin/internal/session"
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
)

// RequireSession guards protected routes. The decision is derived from the
// store on every request and has no side effects: unauthenticated requests
// are redirected to the login page.
func RequireSession(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.IsAuthenticated() {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated keeps authenticated operators off the login page.
func RedirectIfAuthenticated(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions.IsAuthenticated() {
			c.Redirect(http.StatusFound, dashboardPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
