// internal/agent/cache.go
package agent

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"support-agent/internal/agent/classifier"
	"support-agent/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "agent:classify:"

// ClassificationCache memoizes classifier results in Redis. Classification
// is a pure function of the query text, so a cached result is always
// equivalent to recomputing it. Cache failures degrade to recomputation.
type ClassificationCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewClassificationCache(client *redis.Client, ttl time.Duration, log logger.Logger) *ClassificationCache {
	return &ClassificationCache{
		client: client,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "classification-cache"}),
	}
}

func (c *ClassificationCache) Get(ctx context.Context, text string) (classifier.Result, bool) {
	val, err := c.client.Get(ctx, cacheKey(text)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache get failed", map[string]interface{}{"error": err.Error()})
		}
		return classifier.Result{}, false
	}

	var result classifier.Result
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return classifier.Result{}, false
	}
	return result, true
}

func (c *ClassificationCache) Set(ctx context.Context, text string, result classifier.Result) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(text), data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", map[string]interface{}{"error": err.Error()})
	}
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
