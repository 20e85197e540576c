// Package lock provides the per-order single-writer locks used by the stage
// tracker and the payment ledger.
package lock

import "errors"

// ErrNotAcquired is returned when ctx ends before the lock could be taken.
var ErrNotAcquired = errors.New("lock not acquired")
