package directory

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"custodia/internal/deletion"
)

// PolicySource is what the cache decorates; satisfied by *PolicyClient.
type PolicySource interface {
	StudyPolicy(ctx context.Context, studyName string) (deletion.StudyPolicy, error)
}

// CachedPolicySource is a read-through Redis cache for study policies.
// Policies change rarely and are read on every create, so a short TTL removes
// most registry round trips. Cache failures degrade to the source; a missing
// study is never cached.
type CachedPolicySource struct {
	source PolicySource
	redis  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedPolicySource(source PolicySource, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedPolicySource {
	return &CachedPolicySource{source: source, redis: rdb, ttl: ttl, logger: logger}
}

func cacheKey(studyName string) string {
	return "custodia:policy:" + studyName
}

func (c *CachedPolicySource) StudyPolicy(ctx context.Context, studyName string) (deletion.StudyPolicy, error) {
	if c.redis != nil {
		raw, err := c.redis.Get(ctx, cacheKey(studyName)).Bytes()
		switch {
		case err == nil:
			var policy deletion.StudyPolicy
			if json.Unmarshal(raw, &policy) == nil {
				return policy, nil
			}
		case !errors.Is(err, redis.Nil):
			c.logger.WarnContext(ctx, "policy cache read failed",
				"study", studyName,
				"error", err,
			)
		}
	}

	policy, err := c.source.StudyPolicy(ctx, studyName)
	if err != nil {
		return deletion.StudyPolicy{}, err
	}

	if c.redis != nil {
		if raw, err := json.Marshal(policy); err == nil {
			if err := c.redis.Set(ctx, cacheKey(studyName), raw, c.ttl).Err(); err != nil {
				c.logger.WarnContext(ctx, "policy cache write failed",
					"study", studyName,
					"error", err,
				)
			}
		}
	}
	return policy, nil
}
