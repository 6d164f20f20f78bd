package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle counts failed login attempts per username and locks the
// account out for a window once the limit is hit.
type LoginThrottle interface {
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

type redisLoginThrottle struct {
	client      *redis.Client
	maxAttempts int
	lockout     time.Duration
}

func NewLoginThrottle(client *redis.Client, maxAttempts int, lockout time.Duration) LoginThrottle {
	return &redisLoginThrottle{
		client:      client,
		maxAttempts: maxAttempts,
		lockout:     lockout,
	}
}

func attemptsKey(username string) string {
	return fmt.Sprintf("login:attempts:%s", username)
}

func (t *redisLoginThrottle) Blocked(ctx context.Context, username string) (bool, error) {
	count, err := t.client.Get(ctx, attemptsKey(username)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read login attempts: %w", err)
	}
	return count >= t.maxAttempts, nil
}

func (t *redisLoginThrottle) RecordFailure(ctx context.Context, username string) error {
	key := attemptsKey(username)
	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}
	// Start the lockout window on the first failure
	if count == 1 {
		if err := t.client.Expire(ctx, key, t.lockout).Err(); err != nil {
			return fmt.Errorf("failed to set lockout window: %w", err)
		}
	}
	return nil
}

func (t *redisLoginThrottle) Reset(ctx context.Context, username string) error {
	return t.client.Del(ctx, attemptsKey(username)).Err()
}
