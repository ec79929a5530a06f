package xsync

import (
	"sync"
)

// Mutex is a sync.Mutex with scoped locking helper
type Mutex struct { //nolint:gocritic
	sync.Mutex
}

func (l *Mutex) WithLock(f func()) {
	l.Lock()
	defer l.Unlock()

	f()
}

// WithLock returns result of f called under l
func WithLock[T any](l sync.Locker, f func() T) T {
	l.Lock()
	defer l.Unlock()

	return f()
}
