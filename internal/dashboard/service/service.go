// Package service is the dashboard facade. Every call waits a fixed, per-operation latency
// before touching the state so the UI can exercise its loading paths.
package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/qiniu/pulseboard/internal/dashboard/clock"
	"github.com/qiniu/pulseboard/internal/dashboard/store"
)

// Per-call latencies.
const (
	latencyProjects     = 200 * time.Millisecond
	latencyAddProject   = 300 * time.Millisecond
	latencyMonitors     = 500 * time.Millisecond
	latencyAddMonitor   = 300 * time.Millisecond
	latencyMonitorByID  = 0
	latencyAlertList    = 300 * time.Millisecond
	latencyAlertWrite   = 300 * time.Millisecond
	latencyAlertDelete  = 200 * time.Millisecond
	latencyLogs         = 400 * time.Millisecond
	latencyMetricSeries = 300 * time.Millisecond
	latencySeriesBatch  = 400 * time.Millisecond
)

// baseTime anchors generated logs and metric series.
var baseTime = time.Date(2026, 2, 27, 14, 25, 0, 0, time.UTC)

// Rand is the uniform [0,1) source used by the generators.
type Rand interface {
	Float64() float64
}

type Service struct {
	state   *store.State
	clk     clock.Clock
	latency bool

	rndMu sync.Mutex
	rnd   Rand
}

type Option func(*Service)

func WithClock(c clock.Clock) Option { return func(s *Service) { s.clk = c } }

// WithLatency turns the artificial per-call delay on or off. It is on by default.
func WithLatency(enabled bool) Option { return func(s *Service) { s.latency = enabled } }

func WithRand(r Rand) Option { return func(s *Service) { s.rnd = r } }

func New(state *store.State, opts ...Option) *Service {
	s := &Service{state: state, clk: clock.Real{}, latency: true}
	for _, o := range opts {
		o(s)
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewSource(s.clk.Now().UnixNano()))
	}
	return s
}

// State exposes the backing application state.
func (s *Service) State() *store.State { return s.state }

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if !s.latency {
		return ctx.Err()
	}
	return s.clk.Sleep(ctx, d)
}

func (s *Service) float64() float64 {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return s.rnd.Float64()
}
