// Package simulation perturbs monitor state on a fixed interval so the dashboard looks live.
package simulation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/qiniu/pulseboard/internal/dashboard/clock"
	"github.com/qiniu/pulseboard/internal/dashboard/model"
	"github.com/qiniu/pulseboard/internal/dashboard/publisher"
	"github.com/qiniu/pulseboard/internal/dashboard/store"
	"github.com/qiniu/pulseboard/internal/metrics"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultInterval is the time between two simulation passes.
	DefaultInterval = 3 * time.Second
	// SyntheticError is the event prepended when a draw lands on error.
	SyntheticError = "Simulated Error: connection drop"

	maxEvents      = 5
	switchFlipGate = 0.95
	changeGate     = 0.7
	errorCut       = 0.9
	slowCut        = 0.8
)

// Rand is the uniform [0,1) source the engine draws from.
type Rand interface {
	Float64() float64
}

// Engine runs simulation passes over the monitors held by a store.State.
type Engine struct {
	state    *store.State
	clk      clock.Clock
	rnd      Rand
	pub      publisher.Publisher
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	seq    atomic.Int64
}

type Option func(*Engine)

func WithClock(c clock.Clock) Option { return func(e *Engine) { e.clk = c } }

// WithRand replaces the random source. The engine only draws while holding the store
// write lock, so r need not be safe for concurrent use.
func WithRand(r Rand) Option { return func(e *Engine) { e.rnd = r } }

func WithPublisher(p publisher.Publisher) Option { return func(e *Engine) { e.pub = p } }

func WithInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

func New(state *store.State, opts ...Option) *Engine {
	e := &Engine{state: state, clk: clock.Real{}, interval: DefaultInterval}
	for _, o := range opts {
		o(e)
	}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewSource(e.clk.Now().UnixNano()))
	}
	return e
}

// Start begins ticking every interval until Stop is called or ctx is done. It reports
// whether the engine was started; a running engine is left alone.
func (e *Engine) Start(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		return false
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	e.cancel, e.done = cancel, done
	t := e.clk.NewTicker(e.interval)

	go func() {
		defer close(done)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C():
				e.Tick(ctx)
			}
		}
	}()
	log.Info().Dur("interval", e.interval).Msg("simulation started")
	return true
}

// Stop cancels future ticks and waits for an in-flight tick to finish. Stopping a stopped
// engine is a no-op.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel, done := e.cancel, e.done
	e.cancel, e.done = nil, nil
	e.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	log.Info().Int64("ticks", e.seq.Load()).Msg("simulation stopped")
}

func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cancel != nil
}

// Ticks returns the number of passes run so far.
func (e *Engine) Ticks() int64 { return e.seq.Load() }

func (e *Engine) Interval() time.Duration { return e.interval }

// Tick runs one simulation pass and publishes its transitions.
func (e *Engine) Tick(ctx context.Context) publisher.Tick {
	now := e.clk.Now()
	var transitions []model.StatusTransition
	counts := map[model.MonitorStatus]int{}

	e.state.UpdateMonitors(func(monitors []*model.Monitor) {
		for _, m := range monitors {
			from := m.Status
			e.step(m)
			counts[m.Status]++
			if m.Status != from {
				transitions = append(transitions, model.StatusTransition{
					MonitorID: m.ID,
					ProjectID: m.ProjectID,
					Type:      m.Type,
					From:      from,
					To:        m.Status,
					At:        now.UnixMilli(),
				})
			}
		}
	})

	tick := publisher.Tick{Seq: e.seq.Add(1), At: now, Transitions: transitions}
	metrics.SimulationTicks.Inc()
	metrics.MonitorsByStatus.Reset()
	for s, n := range counts {
		metrics.MonitorsByStatus.WithLabelValues(string(s)).Set(float64(n))
	}
	for _, tr := range transitions {
		metrics.StatusTransitions.WithLabelValues(string(tr.Type), string(tr.To)).Inc()
	}

	if e.pub != nil {
		if err := e.pub.Publish(ctx, tick); err != nil {
			log.Warn().Err(err).Int64("seq", tick.Seq).Msg("publish simulation tick failed")
		}
	}
	log.Debug().Int64("seq", tick.Seq).Int("transitions", len(transitions)).Msg("simulation tick")
	return tick
}

// step mutates a single monitor. Monitors whose gate is not passed are left untouched.
func (e *Engine) step(m *model.Monitor) {
	if m.Type == model.TypeSwitch {
		if e.rnd.Float64() > switchFlipGate {
			if m.Status == model.StatusOn {
				m.Status = model.StatusOff
			} else {
				m.Status = model.StatusOn
			}
			m.PushHistory(m.Status)
		}
		return
	}

	if e.rnd.Float64() <= changeGate {
		return
	}
	status := e.drawStatus()
	m.Status = status
	m.PushHistory(status)

	if m.Type == model.TypeAPI {
		base := 30.0
		if status == model.StatusSlow {
			base = 200
		}
		if m.Metrics == nil {
			m.Metrics = model.Metrics{}
		}
		m.Metrics.SetValue("latency", fmt.Sprintf("%dms", int(math.Floor(base+e.rnd.Float64()*50))))
	}

	if status == model.StatusError && (len(m.Events) == 0 || m.Events[0].Message != SyntheticError) {
		m.Events = append([]model.Event{{Time: "Just now", Message: SyntheticError}}, m.Events...)
		if len(m.Events) > maxEvents {
			m.Events = m.Events[:maxEvents]
		}
	}
}

func (e *Engine) drawStatus() model.MonitorStatus {
	r := e.rnd.Float64()
	switch {
	case r > errorCut:
		return model.StatusError
	case r > slowCut:
		return model.StatusSlow
	}
	return model.StatusOK
}
