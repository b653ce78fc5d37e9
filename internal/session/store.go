// Package session owns the client-held authentication state: an opaque token
// and the matching user profile, always written and cleared together.
package session

import (
	"errors"

	"github.com/qdryclean/qadmin/internal/domain/model"
)

// ErrPartialSession is returned when a login attempt would leave the store
// with exactly one of token/user present.
var ErrPartialSession = errors.New("token and user must be set together")

// Store holds the current session. Mutation is atomic: readers always observe
// a fully-set or a fully-cleared session, never an intermediate state.
// Implementations must be safe for concurrent use.
type Store interface {
	// Login replaces the session wholesale.
	Login(token string, user *model.UserProfile) error
	// Logout clears the session and reports whether anything was cleared.
	// Clearing an empty session is a no-op.
	Logout() (bool, error)
	// IsAuthenticated reports whether a token is present.
	IsAuthenticated() bool
	// CurrentUser returns the stored profile, or nil without a session.
	CurrentUser() *model.UserProfile
	// Token returns the stored credential, or empty without a session.
	Token() string
}
