package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Fixed-window counter: the first hit in a window sets its expiry.
const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

const redisKeyPrefix = "intake:ratelimit:"

// RedisLimiter shares a per-key budget across every instance pointed at the
// same Redis. When Redis cannot answer the request is let through.
type RedisLimiter struct {
	client  redis.Scripter
	script  *redis.Script
	limit   int
	window  time.Duration
	timeout time.Duration
	log     *slog.Logger
}

// NewRedisLimiter allows limit requests per key per window.
func NewRedisLimiter(client redis.Scripter, limit int, window time.Duration, log *slog.Logger) *RedisLimiter {
	return &RedisLimiter{
		client:  client,
		script:  redis.NewScript(rateLimitScript),
		limit:   limit,
		window:  window,
		timeout: 250 * time.Millisecond,
		log:     log.With("limiter", "redis"),
	}
}

// Allow counts one hit against key.
func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	if key == "" || l.limit <= 0 || l.window <= 0 {
		return true
	}
	ttl := max(l.window.Milliseconds(), 1)

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	allowed, err := l.script.Run(ctx, l.client, []string{redisKeyPrefix + key}, ttl, l.limit).Int64()
	if err != nil {
		l.log.WarnContext(ctx, "rate limit check failed, allowing request", slog.String("error", err.Error()))
		return true
	}
	return allowed == 1
}
