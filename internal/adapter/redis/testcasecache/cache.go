// package testcasecache puts a read-through Redis cache in front of the test
// case store. Dispatch reads the full case set of a problem on every
// submission, so the hot path is worth keeping off Postgres.
package testcasecache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/algoarena.net/internal/core/ports/primary"
	"gitlab.com/algoarena.net/internal/core/ports/secondary"
	"gitlab.com/algoarena.net/internal/domain"
)

const (
	testCaseKeyPrefix = "testcases:problem:"
	defaultExpiration = 5 * time.Minute
)

var _ secondary.TestCasePort = (*TestCaseCache)(nil)

type TestCaseCache struct {
	redisClient *redis.Client
	next        secondary.TestCasePort
	logger      primary.Logger
	expiration  time.Duration
}

func New(redisClient *redis.Client, next secondary.TestCasePort, logger primary.Logger) *TestCaseCache {
	return &TestCaseCache{
		redisClient: redisClient,
		next:        next,
		logger:      logger,
		expiration:  defaultExpiration,
	}
}

// FindByProblem serves from Redis when possible and falls back to the
// underlying store on a miss or on any Redis failure. A cache problem must
// never fail a dispatch.
func (c *TestCaseCache) FindByProblem(ctx context.Context, problemID uuid.UUID) ([]*domain.TestCase, error) {
	key := testCaseKeyPrefix + problemID.String()

	data, err := c.redisClient.Get(ctx, key).Bytes()
	if err == nil {
		var testCases []*domain.TestCase
		if err := json.Unmarshal(data, &testCases); err == nil {
			return testCases, nil
		}
		c.logger.Warn("Discarding undecodable test case cache entry", "key", key)
	} else if err != redis.Nil {
		c.logger.Warn("Test case cache read failed", "key", key, "error", err)
	}

	testCases, err := c.next.FindByProblem(ctx, problemID)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(testCases); err == nil {
		if err := c.redisClient.Set(ctx, key, encoded, c.expiration).Err(); err != nil {
			c.logger.Warn("Test case cache write failed", "key", key, "error", err)
		}
	}

	return testCases, nil
}
