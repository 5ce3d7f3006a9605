package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iciso/iciso-z6/internal/config"
	"github.com/iciso/iciso-z6/internal/metrics"
	"github.com/iciso/iciso-z6/internal/transport/middleware"
)

// newSubmitLimit builds the rate limiter guarding the submission route. It
// returns a nil middleware when limiting is disabled. The close function is
// never nil.
func newSubmitLimit(ctx context.Context, cfg config.RateLimitConfig, m *metrics.Metrics, log *slog.Logger) (middleware.Middleware, func(), error) {
	if !cfg.Enabled {
		log.Info("submission rate limit disabled")
		return nil, func() {}, nil
	}

	var onLimited func(*http.Request)
	if m != nil {
		onLimited = func(*http.Request) { m.Submission(metrics.OutcomeRateLimited) }
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect to redis %s: %w", cfg.RedisAddr, err)
		}

		limit := cfg.RequestsPerMinute + cfg.Burst
		log.Info("submission rate limit shared via redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("per_minute", limit),
		)
		limiter := middleware.NewRedisLimiter(client, limit, time.Minute, log)
		return middleware.RateLimit(limiter, time.Minute, onLimited), func() { _ = client.Close() }, nil
	}

	limiter := middleware.NewRateLimiter(cfg.RequestsPerMinute, cfg.Burst, time.Minute)
	log.Info("submission rate limit in process",
		slog.Int("per_minute", cfg.RequestsPerMinute),
		slog.Int("burst", cfg.Burst),
	)
	retryAfter := time.Minute / time.Duration(cfg.RequestsPerMinute)
	return middleware.RateLimit(limiter, retryAfter, onLimited), limiter.Stop, nil
}
