package limiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrWindow increments the per-identity counter and pins the window expiry
// on first hit, so reset happens atomically with key expiration.
var incrWindow = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
return {n, ttl}
`)

// RedisStore enforces the same fixed-window algorithm as MemoryStore but
// against a shared counter, so the ceiling holds across replicas.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore pings the server and returns a store backed by it.
func NewRedisStore(ctx context.Context, client *redis.Client) (*RedisStore, error) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

var _ Store = (*RedisStore)(nil)

// Allow runs the counter script. The counter may exceed the ceiling (rejected
// requests still INCR, which is how the atomicity is kept cheap); the decision
// is taken on the returned value, so admitted traffic never exceeds the limit.
func (s *RedisStore) Allow(ctx context.Context, id Identity, rule Rule) (Decision, error) {
	key := "ratelimit:" + id.String()
	result, err := incrWindow.Run(ctx, s.client, []string{key}, rule.Window.Milliseconds()).Result()
	if err != nil {
		return Decision{}, err
	}

	values, ok := result.([]interface{})
	if !ok || len(values) != 2 {
		return Decision{}, errors.New("limiter: unexpected script reply")
	}
	count, _ := values[0].(int64)
	ttlMs, _ := values[1].(int64)

	if count > int64(rule.Limit) {
		return Decision{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: time.Duration(ttlMs) * time.Millisecond,
		}, nil
	}
	return Decision{Allowed: true, Remaining: rule.Limit - int(count)}, nil
}
