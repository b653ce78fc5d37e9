package middleware

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// Navigator records a forced navigation to the login page. The invalidation
// listener latches it when the backend reports an expired session; the next
// response consumes the latch and redirects exactly once.
type Navigator struct {
	pending atomic.Bool
}

// NewNavigator creates an empty navigation latch.
func NewNavigator() *Navigator {
	return &Navigator{}
}

// ForceLogin latches a pending redirect to the login page. Latching while a
// redirect is already pending collapses into a single navigation.
func (n *Navigator) ForceLogin() {
	n.pending.Store(true)
}

// Consume reports and clears the pending redirect.
func (n *Navigator) Consume() bool {
	return n.pending.Swap(false)
}

// ForcedNavigation redirects the first request after a session invalidation
// to the login page. Requests already headed there just clear the latch; the
// session guard keeps the state stable afterwards.
func ForcedNavigation(nav *Navigator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !nav.Consume() {
			c.Next()
			return
		}
		if c.Request.URL.Path == loginPath {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
	}
}
