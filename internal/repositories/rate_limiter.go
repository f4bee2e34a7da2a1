package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginRateLimiter throttles staff login attempts per email with a sliding
// window kept in a redis sorted set. Each attempt is scored by its unix
// timestamp; entries older than the window are dropped before counting.
type LoginRateLimiter interface {
	// Allow records an attempt and reports whether it is within the limit,
	// along with how long to wait when it is not.
	Allow(ctx context.Context, email string) (bool, time.Duration, error)
}

type loginRateLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

func NewLoginRateLimiter(client *redis.Client, maxAttempts int64, window time.Duration) LoginRateLimiter {
	return &loginRateLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

func loginAttemptsKey(email string) string {
	return "login_attempts:" + strings.ToLower(strings.TrimSpace(email))
}

func (l *loginRateLimiter) Allow(ctx context.Context, email string) (bool, time.Duration, error) {
	key := loginAttemptsKey(email)
	now := time.Now().Unix()
	windowStart := now - int64(l.window.Seconds())

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("failed to record login attempt for %s: %w", email, err)
	}

	if count.Val() <= l.maxAttempts {
		return true, 0, nil
	}

	oldest, err := l.client.ZRange(ctx, key, 0, 0).Result()
	if err != nil || len(oldest) == 0 {
		return false, l.window, err
	}

	oldestTime, err := strconv.ParseInt(oldest[0], 10, 64)
	if err != nil {
		return false, l.window, nil
	}

	retryAfter := int64(l.window.Seconds()) - (now - oldestTime)
	if retryAfter < 0 {
		retryAfter = 0
	}

	return false, time.Duration(retryAfter) * time.Second, nil
}
