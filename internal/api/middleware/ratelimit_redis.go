package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "pitch:rl"

// INCR и установка TTL атомарно; TTL ставится только первым запросом окна
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisStore счетчики в Redis, общие для всех экземпляров сервиса
type RedisStore struct {
	client redis.Scripter
	prefix string
}

func NewRedisStore(client redis.Scripter, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, s.client, []string{s.prefix + ":" + key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, fmt.Errorf("redis rate limit: %w", err)
	}

	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("redis rate limit: %w", err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("redis rate limit: unexpected script result %T", res)
	}
}
