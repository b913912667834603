package ratelimit

import (
	"context"
	"strconv"
	"time"

	"natours/internal/errors"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript increments the window counter and starts its clock on first use.
var fixedWindowScript = redis.NewScript(`
	local count = redis.call('INCR', KEYS[1])
	if count == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	local ttl = redis.call('PTTL', KEYS[1])
	if ttl < 0 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
		ttl = tonumber(ARGV[1])
	end
	return { count, ttl }
`)

type redisLimiter struct {
	client redis.Scripter
	prefix string
	max    int
	window time.Duration
}

// NewRedisLimiter counts requests in Redis so every instance shares one window.
func NewRedisLimiter(client redis.Scripter, prefix string, limit int, window time.Duration) Limiter {
	return &redisLimiter{client: client, prefix: prefix, max: limit, window: window}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	vals, err := fixedWindowScript.Run(ctx, l.client, []string{l.prefix + ":" + key}, l.window.Milliseconds()).Result()
	if err != nil {
		return Result{}, errors.Wrap(err, "rate limit script failed")
	}

	count, ttl, err := parseScriptResult(vals)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Allowed:    count <= int64(l.max),
		Limit:      l.max,
		Remaining:  max(l.max-int(count), 0),
		ResetAfter: time.Duration(ttl) * time.Millisecond,
	}, nil
}

func parseScriptResult(vals any) (count, ttlMillis int64, err error) {
	arr, ok := vals.([]any)
	if !ok || len(arr) != 2 {
		return 0, 0, errors.Errorf("unexpected rate limit script result: %#v", vals)
	}

	count, ok = asInt64(arr[0])
	if !ok {
		return 0, 0, errors.Errorf("unexpected rate limit count: %#v", arr[0])
	}
	ttlMillis, ok = asInt64(arr[1])
	if !ok {
		return 0, 0, errors.Errorf("unexpected rate limit ttl: %#v", arr[1])
	}

	return count, ttlMillis, nil
}

func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case string:
		n, err := strconv.ParseInt(t, 10, 64)

		return n, err == nil
	default:
		return 0, false
	}
}
