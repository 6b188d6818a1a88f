package redis

import (
	"context"
	"fmt"
	"time"
)

// FixedWindowLimiter counts hits per key in a fixed window. The INCR and the
// first-hit PEXPIRE run in one Lua script so the window cannot be left
// without a TTL if the client dies between the two calls.
type FixedWindowLimiter struct {
	client *Client
	prefix string
	limit  int
	window time.Duration
}

// NewFixedWindowLimiter builds a limiter scoped by prefix (one per guarded
// route). A nil client disables limiting: every request is allowed.
func NewFixedWindowLimiter(c *Client, prefix string, limit int, window time.Duration) *FixedWindowLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &FixedWindowLimiter{client: c, prefix: prefix, limit: limit, window: window}
}

type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration // 0 if allowed
	Count      int
}

const incrWithExpire = `
local c = redis.call("INCR", KEYS[1])
if c == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {c, ttl}
`

// Allow records a hit for identity (usually the client IP or account email)
// and reports whether it is still under the limit.
func (l *FixedWindowLimiter) Allow(ctx context.Context, identity string) (Decision, error) {
	if l.limit <= 0 || l.client == nil || l.client.rdb == nil {
		return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit}, nil
	}

	key := fmt.Sprintf("rl:%s:%s", l.prefix, identity)
	res, err := l.client.rdb.Eval(ctx, incrWithExpire, []string{key}, l.window.Milliseconds()).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit redis eval: %w", err)
	}

	arr, ok := res.([]any)
	if !ok || len(arr) != 2 {
		return Decision{}, fmt.Errorf("ratelimit redis eval: unexpected result type")
	}

	count := int(arr[0].(int64))
	ttl := time.Duration(arr[1].(int64)) * time.Millisecond

	d := Decision{
		Allowed: count <= l.limit,
		Limit:   l.limit,
		Count:   count,
	}
	if remaining := l.limit - count; remaining > 0 {
		d.Remaining = remaining
	}
	if !d.Allowed {
		d.RetryAfter = ttl
		if d.RetryAfter <= 0 {
			d.RetryAfter = l.window
		}
	}
	return d, nil
}
