package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/pulseboard/internal/config"
	"github.com/qiniu/pulseboard/internal/dashboard/agent"
	"github.com/qiniu/pulseboard/internal/dashboard/api"
	"github.com/qiniu/pulseboard/internal/dashboard/clock"
	"github.com/qiniu/pulseboard/internal/dashboard/fixture"
	"github.com/qiniu/pulseboard/internal/dashboard/publisher"
	"github.com/qiniu/pulseboard/internal/dashboard/service"
	"github.com/qiniu/pulseboard/internal/dashboard/simulation"
	"github.com/qiniu/pulseboard/internal/dashboard/store"
	"github.com/qiniu/pulseboard/internal/logging"
	"github.com/qiniu/pulseboard/internal/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

func main() {
	// load config first
	log.Info().Msg("Starting pulseboard api server")
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	closer, err := logging.Setup(cfg.Logging)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer closer.Close()

	seed := fixture.Load()
	if cfg.Fixtures.SeedFile != "" {
		if seed, err = fixture.LoadFile(cfg.Fixtures.SeedFile); err != nil {
			log.Fatal().Err(err).Str("file", cfg.Fixtures.SeedFile).Msg("failed to load fixtures")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := clock.Real{}
	state := store.New(seed, clk)

	hub := publisher.NewHub(0)
	sinks := publisher.Multi{hub}
	if rdb := publisher.NewRedisClientFromConfig(&cfg.Redis); rdb != nil {
		defer rdb.Close()
		sinks = append(sinks, publisher.NewRedis(rdb, cfg.Redis.Channel))
		log.Info().Str("addr", cfg.Redis.Addr).Str("channel", cfg.Redis.Channel).Msg("redis publisher enabled")
	}

	engine := simulation.New(state,
		simulation.WithClock(clk),
		simulation.WithPublisher(sinks),
		simulation.WithInterval(parseDuration(cfg.Simulation.Interval, simulation.DefaultInterval)),
	)
	if cfg.Simulation.AutoStart {
		engine.Start(ctx)
	}
	defer engine.Stop()

	session := agent.NewSession(clk)
	defer session.Close()

	var limiter *rate.Limiter
	if cfg.Server.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst)
	}

	router := gin.New()
	router.Use(middleware.RequestID)
	router.Use(middleware.AccessLog)
	router.Use(gin.Recovery())
	api.NewApi(router, api.Deps{
		BaseCtx: ctx,
		Service: service.New(state, service.WithClock(clk), service.WithLatency(cfg.Simulation.Latency)),
		Engine:  engine,
		Hub:     hub,
		Agent:   session,
		Limiter: limiter,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("Starting server on %s", cfg.Server.BindAddr)
		errCh <- router.Run(cfg.Server.BindAddr)
	}()
	select {
	case err := <-errCh:
		log.Error().Err(err).Msg("start pulseboard api server failed.")
	case <-ctx.Done():
	}
	log.Info().Msg("pulseboard api server exit...")
}

func parseDuration(s string, d time.Duration) time.Duration {
	if s == "" {
		return d
	}
	if v, err := time.ParseDuration(s); err == nil {
		return v
	}
	log.Warn().Str("value", s).Dur("default", d).Msg("invalid duration, using default")
	return d
}
