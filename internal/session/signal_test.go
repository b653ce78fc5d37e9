package session

import "testing"

func TestInvalidationNotifyNeverBlocks(t *testing.T) {
	inv := NewInvalidation()

	for i := 0; i < 10; i++ {
		inv.Notify()
	}

	select {
	case <-inv.C():
	default:
		t.Fatal("expected a pending signal")
	}

	select {
	case <-inv.C():
		t.Fatal("burst of notifies must collapse into one signal")
	default:
	}
}

func TestInvalidationSignalsAgainAfterConsume(t *testing.T) {
	inv := NewInvalidation()

	inv.Notify()
	<-inv.C()

	inv.Notify()
	select {
	case <-inv.C():
	default:
		t.Fatal("expected signal after previous one was consumed")
	}
}
