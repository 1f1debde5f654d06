package ratelimit

import (
	"fmt"

	"soundreach-server/internal/apierrors"
	authHandler "soundreach-server/internal/auth/handler"
	"soundreach-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware enforces the per-user request budget on authenticated routes.
// Requests without a user in context pass through untouched.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		userID, ok := authHandler.CurrentUserID(c)
		if !ok {
			c.Next()
			return
		}

		result, err := s.Check(ctx, userID)
		if err != nil {
			// Rate limiting must not take the API down with it.
			s.logger.Error(ctx, "rate limit check failed", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", result.RetryAfterMs/1000))
			s.logger.Warn(ctx, "rate limit exceeded",
				observability.Field{Key: "user_id", Value: userID.String()},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs})
			apierrors.RespondWithError(c, apierrors.RateLimited("Rate limit exceeded. Please slow down."))
			c.Abort()
			return
		}

		c.Next()
	}
}
