package checkers

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultTimeout bounds a single dependency ping.
const DefaultTimeout = time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PostgresChecker struct {
	pool    Pinger
	timeout time.Duration
}

func NewPostgresChecker(pool Pinger) *PostgresChecker {
	return &PostgresChecker{pool: pool, timeout: DefaultTimeout}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.pool.Ping(ctx)
}

type RedisChecker struct {
	client  goredis.Cmdable
	timeout time.Duration
}

func NewRedisChecker(client goredis.Cmdable) *RedisChecker {
	return &RedisChecker{client: client, timeout: DefaultTimeout}
}

func (c *RedisChecker) Name() string { return "redis" }

func (c *RedisChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.Ping(ctx).Err()
}
