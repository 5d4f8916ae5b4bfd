package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"

	"github.com/dtroode/statementbox/internal/model"
)

const redisKeyPrefix = "statementbox:ratelimit:"

// Redis is a sliding window limiter shared between instances. Each key is a
// sorted set of hit timestamps.
type Redis struct {
	client *redis.Client
	window time.Duration
	max    int
	now    func() time.Time
}

var _ model.RateLimiter = (*Redis)(nil)

// RedisConfig contains Redis connection parameters.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedis connects to Redis and creates a shared limiter.
func NewRedis(ctx context.Context, cfg RedisConfig, window time.Duration, max int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return NewRedisWithClient(client, window, max), nil
}

// NewRedisWithClient creates a limiter on an existing client.
func NewRedisWithClient(client *redis.Client, window time.Duration, max int) *Redis {
	if window <= 0 {
		window = DefaultWindow
	}
	if max <= 0 {
		max = DefaultMax
	}
	return &Redis{client: client, window: window, max: max, now: time.Now}
}

// RecordAndCheck records a hit and reports whether key exceeded the limit.
func (r *Redis) RecordAndCheck(ctx context.Context, key string) (bool, error) {
	now := r.now()
	redisKey := redisKeyPrefix + key
	cutoff := now.Add(-r.window).UnixNano()

	pipe := r.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "-inf", strconv.FormatInt(cutoff, 10))
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: uuid.NewString()})
	count := pipe.ZCard(ctx, redisKey)
	pipe.PExpire(ctx, redisKey, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to record hit: %w", err)
	}

	return count.Val() > int64(r.max), nil
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
