package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis parses REDIS_URL into a client used for the product catalog cache
// and the closing-report job queue. Connectivity is checked up front so a
// misconfigured URL fails the boot instead of the first BRPop.
func NewRedis(redisURL string, poolSize int) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	if poolSize > 0 {
		opts.PoolSize = poolSize
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
