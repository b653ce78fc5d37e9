package model

// Session holds the client-side authenticated identity and credential.
// Token and User are always set or cleared together; a session with exactly
// one of them present must never be observable.
type Session struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

// Active reports whether the session carries a credential.
func (s Session) Active() bool {
	return s.Token != ""
}
