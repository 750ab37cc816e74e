package ratelimit

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisStore is a fixed-window counter shared across processes. Keys live
// under ratelimit:{route}:{client} with a millisecond TTL equal to the window.
type RedisStore struct {
	client *goredis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRedisStore(client *goredis.Client, prefix string, limit int, windowDur time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: windowDur,
	}
}

// Allow performs an atomic increment-and-check using a Lua script so
// concurrent requests cannot both slip under the limit.
func (s *RedisStore) Allow(ctx context.Context, key string) (*Result, error) {
	script := goredis.NewScript(`
		local key = KEYS[1]
		local limit = tonumber(ARGV[1])
		local window = tonumber(ARGV[2])

		local current = redis.call('GET', key)
		if current == false then
			current = 0
		else
			current = tonumber(current)
		end

		local ttl = redis.call('PTTL', key)
		if ttl < 0 then
			ttl = window
		end

		if current < limit then
			redis.call('INCR', key)
			if ttl == window then
				redis.call('PEXPIRE', key, window)
			end
			return {1, limit - current - 1, ttl}
		else
			return {0, 0, ttl}
		end
	`)

	fullKey := fmt.Sprintf("ratelimit:%s:%s", s.prefix, key)
	result, err := script.Run(ctx, s.client, []string{fullKey}, s.limit, s.window.Milliseconds()).Result()
	if err != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}

	resultSlice, ok := result.([]interface{})
	if !ok || len(resultSlice) < 3 {
		return nil, fmt.Errorf("unexpected rate limit result format")
	}

	return &Result{
		Allowed:   resultSlice[0].(int64) == 1,
		Limit:     s.limit,
		Remaining: int(resultSlice[1].(int64)),
		ResetIn:   time.Duration(resultSlice[2].(int64)) * time.Millisecond,
	}, nil
}
