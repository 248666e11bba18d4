package redis

import (
	"camera-rental-service/config"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

func SetupClient(cfg *config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("error ping redis: %v", err)
	}

	return client
}

type Locker interface {
	// Lock blocks until key is held or ctx is done. The returned func releases it.
	Lock(ctx context.Context, key string, ttl time.Duration) (func(), error)
}

type locker struct {
	rs *redsync.Redsync
}

func NewLocker(client *redis.Client) Locker {
	return &locker{rs: redsync.New(goredis.NewPool(client))}
}

func (l *locker) Lock(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	mutex := l.rs.NewMutex(key, redsync.WithExpiry(ttl), redsync.WithTries(32), redsync.WithRetryDelay(50*time.Millisecond))
	if err := mutex.LockContext(ctx); err != nil {
		return func() {}, err
	}

	return func() {
		// background ctx: the caller's ctx may already be cancelled
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}

type RateLimiter interface {
	// Allow counts one hit on key and reports whether it is within limit for the current window.
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, error)
}

type fixedWindow struct {
	client *redis.Client
}

func NewRateLimiter(client *redis.Client) RateLimiter {
	return &fixedWindow{client: client}
}

func (f *fixedWindow) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, error) {
	slot := time.Now().UnixNano() / int64(window)
	key = fmt.Sprintf("ratelimit:%s:%d", key, slot)

	pipe := f.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, err
	}
	return incr.Val() <= limit, nil
}
