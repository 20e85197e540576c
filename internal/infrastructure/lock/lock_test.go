package lock

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"fulfillment_service/internal/infrastructure/logger"
)

func TestMemoryLocker_SerializesSameKey(t *testing.T) {
	l := NewMemoryLocker(nil)

	unlock, err := l.Lock(context.Background(), "order:1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := l.Lock(ctx, "order:1"); !errors.Is(err, ErrNotAcquired) {
		t.Fatalf("expected ErrNotAcquired, got %v", err)
	}

	other, err := l.Lock(context.Background(), "order:2")
	if err != nil {
		t.Fatalf("independent key should not block: %v", err)
	}
	other()

	unlock()
	unlock()

	again, err := l.Lock(context.Background(), "order:1")
	if err != nil {
		t.Fatalf("expected lock after release: %v", err)
	}
	again()

	if n := len(l.slots); n != 0 {
		t.Fatalf("expected idle slots to be dropped, got %d", n)
	}
}

func TestMemoryLocker_MutualExclusion(t *testing.T) {
	l := NewMemoryLocker(nil)
	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), "order:1")
			if err != nil {
				t.Errorf("lock: %v", err)
				return
			}
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
			unlock()
		}()
	}
	wg.Wait()
	if counter != 50 {
		t.Fatalf("expected 50 serialized increments, got %d", counter)
	}
}

type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
	// evalErr, when set, is returned by every script call.
	evalErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value any, _ time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.data[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	f.data[key] = value.(string)
	return redis.NewBoolResult(true, nil)
}

// compareAndDelete mirrors releaseScript.
func (f *fakeRedis) compareAndDelete(keys []string, args []any) *redis.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.evalErr != nil {
		return redis.NewCmdResult(nil, f.evalErr)
	}
	if v, ok := f.data[keys[0]]; ok && v == args[0].(string) {
		delete(f.data, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func (f *fakeRedis) Eval(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.compareAndDelete(keys, args)
}

func (f *fakeRedis) EvalSha(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.compareAndDelete(keys, args)
}

func (f *fakeRedis) EvalRO(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.compareAndDelete(keys, args)
}

func (f *fakeRedis) EvalShaRO(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.compareAndDelete(keys, args)
}

func (f *fakeRedis) ScriptExists(_ context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (f *fakeRedis) ScriptLoad(_ context.Context, _ string) *redis.StringCmd {
	return redis.NewStringResult(releaseScript.Hash(), nil)
}

func TestRedisLocker_AcquireAndRelease(t *testing.T) {
	store := newFakeRedis()
	l, err := NewRedisLocker(store, time.Second, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.retryDelay = time.Millisecond

	unlock, err := l.Lock(context.Background(), "order:1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.data[keyNamespace+"order:1"]; !ok {
		t.Fatalf("expected key to be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := l.Lock(ctx, "order:1"); !errors.Is(err, ErrNotAcquired) {
		t.Fatalf("expected ErrNotAcquired, got %v", err)
	}

	unlock()
	if _, ok := store.data[keyNamespace+"order:1"]; ok {
		t.Fatalf("expected key to be released")
	}
}

func TestRedisLocker_DoesNotReleaseForeignOwner(t *testing.T) {
	store := newFakeRedis()
	l, _ := NewRedisLocker(store, time.Second, nil, nil)

	unlock, err := l.Lock(context.Background(), "order:1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// simulate TTL expiry followed by another holder
	store.data[keyNamespace+"order:1"] = "someone-else"
	unlock()

	if store.data[keyNamespace+"order:1"] != "someone-else" {
		t.Fatalf("foreign owner must keep the lock")
	}
}

func TestNewRedisLockerRequiresClient(t *testing.T) {
	if _, err := NewRedisLocker(nil, 0, nil, nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRedisLocker_ReleaseFailureIsLogged(t *testing.T) {
	store := newFakeRedis()
	var buf bytes.Buffer
	l, _ := NewRedisLocker(store, time.Second, nil, logger.New(logger.Options{ServiceName: "test", Output: &buf}))

	unlock, err := l.Lock(context.Background(), "order:1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.evalErr = errors.New("connection reset")
	unlock()

	if !strings.Contains(buf.String(), "[lock] release failed") || !strings.Contains(buf.String(), "connection reset") {
		t.Fatalf("expected release failure to be logged, got %q", buf.String())
	}
	if _, ok := store.data[keyNamespace+"order:1"]; !ok {
		t.Fatalf("key must stay until it expires")
	}
}
