package simulation

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/qiniu/pulseboard/internal/dashboard/clock"
	"github.com/qiniu/pulseboard/internal/dashboard/fixture"
	"github.com/qiniu/pulseboard/internal/dashboard/model"
	"github.com/qiniu/pulseboard/internal/dashboard/publisher"
	"github.com/qiniu/pulseboard/internal/dashboard/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 2, 27, 14, 25, 0, 0, time.UTC)

// scripted replays a fixed sequence of draws, wrapping around.
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func newState(monitors ...model.Monitor) *store.State {
	seed := fixture.Load()
	if len(monitors) > 0 {
		seed.Monitors = monitors
	}
	return store.New(seed, clock.NewFake(epoch))
}

func apiMonitor() model.Monitor {
	return model.Monitor{
		ID:        "api",
		ProjectID: "1",
		Status:    model.StatusOK,
		Type:      model.TypeAPI,
		Metrics: model.Metrics{
			"uptime":  {Label: "uptime", Value: "99%", Order: 0},
			"latency": {Label: "latency", Value: "45ms", Order: 1},
		},
		History: []model.MonitorStatus{model.StatusOK, model.StatusOK, model.StatusOK},
	}
}

func TestTick_HistoryLengthIsInvariant(t *testing.T) {
	st := newState()
	before := map[string]int{}
	for _, m := range st.Monitors("") {
		before[m.ID] = len(m.History)
	}

	e := New(st, WithClock(clock.NewFake(epoch)), WithRand(rand.New(rand.NewSource(7))))
	for i := 0; i < 200; i++ {
		e.Tick(context.Background())
	}
	for _, m := range st.Monitors("") {
		assert.Len(t, m.History, before[m.ID], "monitor %s", m.ID)
		assert.LessOrEqual(t, len(m.Events), 5, "monitor %s", m.ID)
	}
	assert.Equal(t, int64(200), e.Ticks())
}

func TestTick_UnselectedMonitorsUntouched(t *testing.T) {
	st := newState()
	before := st.Monitors("")

	// 0.5 passes neither the change gate nor the switch gate.
	e := New(st, WithRand(&scripted{vals: []float64{0.5}}))
	tick := e.Tick(context.Background())

	assert.Empty(t, tick.Transitions)
	assert.Equal(t, before, st.Monitors(""))
}

func TestTick_StatusDraws(t *testing.T) {
	tests := []struct {
		name    string
		draws   []float64
		status  model.MonitorStatus
		latency string
	}{
		{"ok", []float64{0.8, 0.5, 0.2}, model.StatusOK, "40ms"},
		{"slow", []float64{0.8, 0.85, 0.5}, model.StatusSlow, "225ms"},
		{"error", []float64{0.71, 0.95, 0.99}, model.StatusError, "79ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newState(apiMonitor())
			e := New(st, WithRand(&scripted{vals: tt.draws}))
			e.Tick(context.Background())

			m, err := st.MonitorByID("api")
			require.NoError(t, err)
			assert.Equal(t, tt.status, m.Status)
			assert.Equal(t, []model.MonitorStatus{model.StatusOK, model.StatusOK, tt.status}, m.History)
			assert.Equal(t, tt.latency, m.Metrics["latency"].Value)
			assert.Equal(t, "99%", m.Metrics["uptime"].Value)
		})
	}
}

func TestTick_SyntheticErrorIsDeduplicated(t *testing.T) {
	st := newState(apiMonitor())
	e := New(st, WithRand(&scripted{vals: []float64{0.8, 0.95, 0.5}}))
	e.Tick(context.Background())
	e.Tick(context.Background())

	m, err := st.MonitorByID("api")
	require.NoError(t, err)
	require.Len(t, m.Events, 1)
	assert.Equal(t, model.Event{Time: "Just now", Message: SyntheticError}, m.Events[0])
}

func TestTick_EventsCappedAtFive(t *testing.T) {
	mon := apiMonitor()
	mon.Type = model.TypeMQ
	for i := 0; i < 5; i++ {
		mon.Events = append(mon.Events, model.Event{Time: "earlier", Message: "Connection refused"})
	}
	st := newState(mon)
	e := New(st, WithRand(&scripted{vals: []float64{0.8, 0.95}}))
	e.Tick(context.Background())

	m, err := st.MonitorByID("api")
	require.NoError(t, err)
	require.Len(t, m.Events, 5)
	assert.Equal(t, SyntheticError, m.Events[0].Message)
	assert.Equal(t, "45ms", m.Metrics["latency"].Value)
}

func TestTick_SwitchFlipsAboutFivePercent(t *testing.T) {
	sw := model.Monitor{
		ID:        "sw",
		ProjectID: "3",
		Status:    model.StatusOff,
		Type:      model.TypeSwitch,
		History:   []model.MonitorStatus{model.StatusOff, model.StatusOff, model.StatusOff},
	}
	st := newState(sw)
	e := New(st, WithRand(rand.New(rand.NewSource(42))))

	flips := 0
	for i := 0; i < 1000; i++ {
		tick := e.Tick(context.Background())
		for _, tr := range tick.Transitions {
			assert.NotEqual(t, tr.From, tr.To)
			assert.Contains(t, []model.MonitorStatus{model.StatusOn, model.StatusOff}, tr.To)
			flips++
		}
	}
	assert.InDelta(t, 50, flips, 25)

	m, err := st.MonitorByID("sw")
	require.NoError(t, err)
	assert.Len(t, m.History, 3)
	assert.Equal(t, m.Status, m.History[2])
}

func TestTick_PublishesTransitions(t *testing.T) {
	hub := publisher.NewHub(4)
	sub := hub.Subscribe()
	defer sub.Close()

	st := newState(apiMonitor())
	e := New(st, WithClock(clock.NewFake(epoch)), WithPublisher(hub), WithRand(&scripted{vals: []float64{0.8, 0.95, 0.5}}))
	e.Tick(context.Background())

	got := <-sub.C()
	assert.Equal(t, int64(1), got.Seq)
	require.Len(t, got.Transitions, 1)
	assert.Equal(t, model.StatusTransition{
		MonitorID: "api", ProjectID: "1", Type: model.TypeAPI,
		From: model.StatusOK, To: model.StatusError, At: epoch.UnixMilli(),
	}, got.Transitions[0])
}

func TestEngine_StartStop(t *testing.T) {
	clk := clock.NewFake(epoch)
	st := newState(apiMonitor())
	e := New(st, WithClock(clk), WithRand(&scripted{vals: []float64{0.5}}))

	require.True(t, e.Start(context.Background()))
	assert.False(t, e.Start(context.Background()))
	assert.True(t, e.Running())

	clk.Advance(2 * time.Second)
	assert.Equal(t, int64(0), e.Ticks())

	clk.Advance(time.Second)
	assert.Eventually(t, func() bool { return e.Ticks() == 1 }, time.Second, time.Millisecond)
	clk.Advance(DefaultInterval)
	assert.Eventually(t, func() bool { return e.Ticks() == 2 }, time.Second, time.Millisecond)

	e.Stop()
	e.Stop()
	assert.False(t, e.Running())
	assert.Equal(t, 0, clk.Waiters())
	clk.Advance(10 * DefaultInterval)
	assert.Equal(t, int64(2), e.Ticks())

	require.True(t, e.Start(context.Background()))
	e.Stop()
}

func TestEngine_StopsWithContext(t *testing.T) {
	clk := clock.NewFake(epoch)
	e := New(newState(), WithClock(clk))
	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, e.Start(ctx))
	cancel()
	assert.Eventually(t, func() bool { return clk.Waiters() == 0 }, time.Second, time.Millisecond)
	e.Stop()
	assert.False(t, e.Running())
}
