package probes

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/ports"
)

var _ ports.Probe = (*RedisProbe)(nil)

// RedisPinger is the subset of the go-redis client used by RedisProbe.
// *redis.Client, *redis.ClusterClient, and *redis.Ring implement it.
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisProbe checks a Redis server with PING.
type RedisProbe struct {
	name   string
	addr   string
	client RedisPinger
}

// NewRedisProbe creates a probe named "redis" for the server at addr.
func NewRedisProbe(client RedisPinger, addr string) *RedisProbe {
	return &RedisProbe{name: "redis", addr: addr, client: client}
}

// NewRedisClient opens a go-redis client from connection settings. The
// client connects lazily, so an unreachable server is reported by the probe
// rather than at startup.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Call implements ports.Probe.
func (p *RedisProbe) Call(ctx context.Context) (health.Response, error) {
	b := health.Named(p.name).WithData(keyAddr, p.addr)

	if err := p.client.Ping(ctx).Err(); err != nil {
		return b.Down().WithData(keyError, err.Error()).Build(), nil
	}
	return b.Up().Build(), nil
}
