package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/internal/infrastructure/metrics"
	"fulfillment_service/internal/usecase/interfaces"
)

const (
	keyNamespace      = "fulfillment:lock:"
	defaultLockTTL    = 10 * time.Second
	defaultRetryDelay = 25 * time.Millisecond
	releaseTimeout    = 2 * time.Second
)

// releaseScript deletes KEYS[1] only while it still holds ARGV[1].
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisStore defines the operations used by RedisLocker.
type redisStore interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

// RedisLocker serializes order writers across replicas with SET NX + TTL. The TTL
// bounds how long a crashed holder can block an order.
type RedisLocker struct {
	client     redisStore
	ttl        time.Duration
	retryDelay time.Duration
	metrics    *metrics.Metrics
	log        *logger.Logger
}

var _ interfaces.IOrderLocker = (*RedisLocker)(nil)

func NewRedisLocker(client redisStore, ttl time.Duration, m *metrics.Metrics, log *logger.Logger) (*RedisLocker, error) {
	if client == nil {
		return nil, errors.New("redis client required for lock")
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisLocker{client: client, ttl: ttl, retryDelay: defaultRetryDelay, metrics: m, log: log}, nil
}

// NewRedisClient parses a redis:// URL and verifies connectivity.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	start := time.Now()
	redisKey := keyNamespace + key
	owner := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, owner, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("setnx %s: %w", redisKey, err)
		}
		if ok {
			break
		}
		timer := time.NewTimer(l.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%w: %s: %w", ErrNotAcquired, key, ctx.Err())
		case <-timer.C:
		}
	}
	l.metrics.ObserveLockWait(time.Since(start))

	released := false
	return func() {
		if released {
			return
		}
		released = true
		l.release(redisKey, owner)
	}, nil
}

// release frees the key only if the owner value still matches. A lock that
// expired and was taken by another writer is left alone.
func (l *RedisLocker) release(key, owner string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	deleted, err := releaseScript.Run(ctx, l.client, []string{key}, owner).Int64()
	if err != nil {
		l.log.Error(l.log.WithField(ctx, "lock_key", key), "[lock] release failed", err)
		return
	}
	if deleted == 0 {
		l.log.Warn(l.log.WithField(ctx, "lock_key", key), "[lock] lock expired before release")
	}
}
