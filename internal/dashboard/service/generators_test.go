package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogs_TemplatesCycle(t *testing.T) {
	svc, _ := newService()
	for _, id := range []string{"api-gateway", "rabbitmq", "order-flow", "support-chatbot", "unknown"} {
		t.Run(id, func(t *testing.T) {
			logs, err := svc.Logs(context.Background(), id, model.LogFilter{})
			require.NoError(t, err)
			require.Len(t, logs, 50)

			typ := model.TypeAPI
			if m, err := svc.State().MonitorByID(id); err == nil {
				typ = m.Type
			}
			tpl := LogTemplates(typ)
			for i, l := range logs {
				assert.Equal(t, tpl[i%len(tpl)], l.Message)
				assert.Equal(t, "log-"+id+"-"+strconv.Itoa(i), l.ID)
				if l.TraceID != "" {
					assert.Regexp(t, `^trace-[0-9a-z]{8}$`, l.TraceID)
				}
			}
			assert.Equal(t, "2026-02-27 14:25:00", logs[0].Time)
			assert.Equal(t, "2026-02-27 14:24:45", logs[1].Time)
		})
	}
}

func TestLogs_LevelsAndSource(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	mq, err := svc.Logs(ctx, "rabbitmq", model.LogFilter{})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Equal(t, model.LevelError, mq[i].Level)
	}
	assert.Equal(t, model.LevelWarn, mq[4].Level)
	assert.Equal(t, "192.168.1.102:5672", mq[0].Source)

	unknown, err := svc.Logs(ctx, "ghost", model.LogFilter{})
	require.NoError(t, err)
	assert.Equal(t, "ghost", unknown[0].Source)
	assert.Equal(t, model.LevelInfo, unknown[0].Level)
}

func TestLogs_Filter(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	errs, err := svc.Logs(ctx, "api-gateway", model.LogFilter{Level: model.LevelError})
	require.NoError(t, err)
	assert.Len(t, errs, 5)
	for _, l := range errs {
		assert.Equal(t, model.LevelError, l.Level)
	}

	kw, err := svc.Logs(ctx, "api-gateway", model.LogFilter{Keyword: "TLS"})
	require.NoError(t, err)
	assert.Len(t, kw, 5)
	for _, l := range kw {
		assert.Contains(t, l.Message, "TLS handshake")
	}

	none, err := svc.Logs(ctx, "api-gateway", model.LogFilter{Level: model.LevelDebug, Keyword: "TLS"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMetricHistory_Shapes(t *testing.T) {
	svc, _ := newService()
	tests := []struct {
		rng      string
		points   int
		interval time.Duration
	}{
		{"", 60, time.Minute},
		{"1h", 60, time.Minute},
		{"6h", 72, 5 * time.Minute},
		{"24h", 96, 15 * time.Minute},
		{"1d", 96, 15 * time.Minute},
		{"7d", 84, 2 * time.Hour},
	}
	for _, tt := range tests {
		t.Run("range="+tt.rng, func(t *testing.T) {
			s, err := svc.MetricHistory(context.Background(), "api-gateway", "latency", tt.rng)
			require.NoError(t, err)
			require.Len(t, s.Data, tt.points)
			assert.Equal(t, "ms", s.Unit)
			assert.Equal(t, "latency", s.MetricKey)

			var prev time.Time
			for i, p := range s.Data {
				at, err := time.Parse(time.RFC3339Nano, p.Time)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, p.Value, 0.0)
				if i > 0 {
					assert.Equal(t, tt.interval, at.Sub(prev))
				}
				prev = at
			}
			assert.Equal(t, baseTime.Add(-tt.interval), prev)
		})
	}
}

func TestMetricHistory_Values(t *testing.T) {
	svc, _ := newService(WithRand(constRand(0.5)))
	s, err := svc.MetricHistory(context.Background(), "x", "throughput", "1h")
	require.NoError(t, err)
	assert.Equal(t, 250.0, s.Data[0].Value)
	assert.Equal(t, "req/min", s.Unit)

	spiky, _ := newService(WithRand(constRand(0.95)))
	s, err = spiky.MetricHistory(context.Background(), "x", "unknownKey", "1h")
	require.NoError(t, err)
	// 50 + 0.9*20 + 2*20
	assert.Equal(t, 108.0, s.Data[0].Value)
	assert.Equal(t, "", s.Unit)

	low, _ := newService(WithRand(constRand(0)))
	s, err = low.MetricHistory(context.Background(), "x", "errorRate", "1h")
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Data[0].Value)
}

func TestMetricHistory_InvalidRange(t *testing.T) {
	svc, _ := newService()
	for _, rng := range []string{"2h", "bogus", "-1h"} {
		_, err := svc.MetricHistory(context.Background(), "api-gateway", "latency", rng)
		assert.ErrorIs(t, err, model.ErrInvalidRange, rng)
	}
}

func TestMonitorMetricSeries_KeysPerType(t *testing.T) {
	svc, _ := newService()
	tests := map[string][]string{
		"order-flow":         {"successRate", "avgDuration", "throughput"},
		"payment-ecs":        {"runningCount", "errorRate", "latency"},
		"maintenance-switch": {"throughput", "errorRate"},
		"ghost":              {"latency", "throughput", "errorRate"},
	}
	for id, want := range tests {
		series, err := svc.MonitorMetricSeries(context.Background(), id, "6h")
		require.NoError(t, err)
		got := []string{}
		for _, s := range series {
			got = append(got, s.MetricKey)
			assert.Len(t, s.Data, 72)
		}
		assert.Equal(t, want, got, id)
	}
}

type constRand float64

func (c constRand) Float64() float64 { return float64(c) }
