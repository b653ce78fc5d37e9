package app

import (
	"log/slog"

	"github.com/qdryclean/qadmin/internal/server/http/middleware"
	"github.com/qdryclean/qadmin/internal/session"
)

// InvalidationListener consumes session invalidation signals and latches a
// single forced navigation to the login page per event. The backend client
// fires the signal at most once per expiry, so a burst of concurrent 401s
// still produces one navigation.
type InvalidationListener struct {
	signal *session.Invalidation
	nav    *middleware.Navigator
	logger *slog.Logger

	stop chan struct{}
	done chan struct{}
}

// NewInvalidationListener creates a stopped listener.
func NewInvalidationListener(signal *session.Invalidation, nav *middleware.Navigator, logger *slog.Logger) *InvalidationListener {
	return &InvalidationListener{signal: signal, nav: nav, logger: logger}
}

// Start launches the consuming goroutine.
func (l *InvalidationListener) Start() {
	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	go l.run()
}

func (l *InvalidationListener) run() {
	defer close(l.done)
	for {
		select {
		case <-l.stop:
			return
		case <-l.signal.C():
			l.logger.Warn("session invalidated by backend, forcing login")
			l.nav.ForceLogin()
		}
	}
}

// Stop terminates the goroutine and waits for it to exit.
func (l *InvalidationListener) Stop() {
	if l.stop == nil {
		return
	}
	close(l.stop)
	<-l.done
	l.stop = nil
}
