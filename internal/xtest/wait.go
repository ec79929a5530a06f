package xtest

import (
	"testing"
	"time"
)

// WaitChannelClosed fails the test if ch is not closed within the common timeout
func WaitChannelClosed(t testing.TB, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-time.After(commonWaitTimeout):
		t.Fatal("failed to wait channel closed")
	case <-ch:
		// pass
	}
}
