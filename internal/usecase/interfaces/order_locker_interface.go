package interfaces

import "context"

// IOrderLocker serializes writers of the same order. Lock blocks until the key is
// free or ctx is done; the returned func releases it and is safe to call once.
type IOrderLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
