package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/qiniu/pulseboard/internal/config"
	"github.com/qiniu/pulseboard/internal/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

// DefaultChannel is the pub/sub channel status transitions are published on.
const DefaultChannel = "pulseboard:monitor:transitions"

// RedisClient is the subset of *redis.Client the publisher needs.
type RedisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Redis publishes each transition as JSON. Calls go through a circuit breaker so an
// unreachable server costs one fast failure per tick once the breaker is open.
type Redis struct {
	client  RedisClient
	channel string
	cb      *gobreaker.CircuitBreaker
	retries uint
	delay   time.Duration
}

func NewRedisClientFromConfig(c *config.RedisConfig) *redis.Client {
	if c == nil || !c.Enabled {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
}

func NewRedis(client RedisClient, channel string) *Redis {
	if channel == "" {
		channel = DefaultChannel
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "redis-publisher",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})
	return &Redis{client: client, channel: channel, cb: cb, retries: 2, delay: 50 * time.Millisecond}
}

// State reports the circuit breaker state.
func (r *Redis) State() gobreaker.State { return r.cb.State() }

func (r *Redis) Publish(ctx context.Context, t Tick) error {
	if len(t.Transitions) == 0 {
		return nil
	}
	payloads := make([][]byte, 0, len(t.Transitions))
	for _, tr := range t.Transitions {
		b, err := json.Marshal(tr)
		if err != nil {
			return fmt.Errorf("encode transition %s: %w", tr.MonitorID, err)
		}
		payloads = append(payloads, b)
	}

	_, err := r.cb.Execute(func() (interface{}, error) {
		for _, p := range payloads {
			rt := retry.New(
				retry.Context(ctx),
				retry.Attempts(r.retries),
				retry.Delay(r.delay),
			)
			if err := rt.Do(func() error {
				return r.client.Publish(ctx, r.channel, p).Err()
			}); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		metrics.PublishErrors.WithLabelValues("redis").Inc()
		return fmt.Errorf("publish to %s: %w", r.channel, err)
	}
	return nil
}
