package ratelimit

import (
	"context"
	"fmt"
	"time"

	"soundreach-server/internal/clients/redis"
	"soundreach-server/internal/observability"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"resetAt"`
	RetryAfterMs int       `json:"retryAfterMs,omitempty"`
}

// Service enforces a per-user request budget over a one-minute sliding
// window backed by Redis. Without Redis every request is allowed.
type Service struct {
	redis             *redis.Client
	requestsPerMinute int
	logger            *observability.Logger
	now               func() time.Time
}

// NewService creates a rate limiting service
func NewService(redisClient *redis.Client, requestsPerMinute int, logger *observability.Logger) *Service {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 120
	}
	return &Service{
		redis:             redisClient,
		requestsPerMinute: requestsPerMinute,
		logger:            logger,
		now:               time.Now,
	}
}

// Check records one request for the user and reports whether it is within
// the budget
func (s *Service) Check(ctx context.Context, userID uuid.UUID) (Result, error) {
	client := s.redis.GetClient()
	if client == nil {
		return Result{Allowed: true, Limit: s.requestsPerMinute, Remaining: s.requestsPerMinute}, nil
	}

	key := fmt.Sprintf("rl:%s", userID.String())
	now := s.now()
	windowStartMs := now.Add(-time.Minute).UnixMilli()

	if err := client.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStartMs)).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to trim rate limit window: %w", err)
	}

	count, err := client.ZCard(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= s.requestsPerMinute {
		oldest, err := client.ZRangeWithScores(ctx, key, 0, 0).Result()
		resetAt := now.Add(time.Minute)
		if err == nil && len(oldest) > 0 {
			resetAt = time.UnixMilli(int64(oldest[0].Score)).Add(time.Minute)
		}
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{
			Allowed:      false,
			Limit:        s.requestsPerMinute,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	// Member must be unique per request; two requests landing in the same
	// millisecond would otherwise collapse into one sorted-set entry.
	nowMs := now.UnixMilli()
	err = client.ZAdd(ctx, key, goredis.Z{
		Score:  float64(nowMs),
		Member: fmt.Sprintf("%d:%s", nowMs, uuid.NewString()),
	}).Err()
	if err != nil {
		return Result{}, fmt.Errorf("failed to record request: %w", err)
	}
	if err := client.Expire(ctx, key, 2*time.Minute).Err(); err != nil {
		s.logger.Warn(ctx, "failed to set expiration on rate limit key",
			observability.Field{Key: "key", Value: key})
	}

	return Result{
		Allowed:   true,
		Limit:     s.requestsPerMinute,
		Remaining: s.requestsPerMinute - int(count) - 1,
		ResetAt:   now.Add(time.Minute),
	}, nil
}
