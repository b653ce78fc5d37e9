package session

// Invalidation carries the session-invalidated signal from the backend client
// to the application shell. The channel is buffered with capacity one and
// Notify never blocks, so a burst of concurrent expiry observers collapses
// into a single pending navigation.
type Invalidation struct {
	ch chan struct{}
}

// NewInvalidation creates the signal.
func NewInvalidation() *Invalidation {
	return &Invalidation{ch: make(chan struct{}, 1)}
}

// Notify signals that the session was invalidated. Non-blocking; a signal
// already pending absorbs the new one.
func (i *Invalidation) Notify() {
	select {
	case i.ch <- struct{}{}:
	default:
	}
}

// C exposes the signal channel for the single shell subscriber.
func (i *Invalidation) C() <-chan struct{} {
	return i.ch
}
