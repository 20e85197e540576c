package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fulfillment_service/internal/infrastructure/metrics"
	"fulfillment_service/internal/usecase/interfaces"
)

// MemoryLocker is a keyed mutex for single-process deployments. Waiters honor
// ctx cancellation and idle keys are dropped once nobody holds or waits on them.
type MemoryLocker struct {
	mu      sync.Mutex
	slots   map[string]*slot
	metrics *metrics.Metrics
}

type slot struct {
	ch   chan struct{}
	refs int
}

var _ interfaces.IOrderLocker = (*MemoryLocker)(nil)

func NewMemoryLocker(m *metrics.Metrics) *MemoryLocker {
	return &MemoryLocker{slots: make(map[string]*slot), metrics: m}
}

func (l *MemoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	start := time.Now()

	l.mu.Lock()
	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	l.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(key, s)
		return nil, fmt.Errorf("%w: %s: %w", ErrNotAcquired, key, ctx.Err())
	}
	l.metrics.ObserveLockWait(time.Since(start))

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.release(key, s)
		})
	}, nil
}

func (l *MemoryLocker) release(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}
