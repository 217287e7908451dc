package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
	prommodel "github.com/prometheus/common/model"
)

// seriesShape is the sampling of one chart range.
type seriesShape struct {
	Points   int
	Interval time.Duration
}

var seriesShapes = map[time.Duration]seriesShape{
	time.Hour:          {Points: 60, Interval: time.Minute},
	6 * time.Hour:      {Points: 72, Interval: 5 * time.Minute},
	24 * time.Hour:     {Points: 96, Interval: 15 * time.Minute},
	7 * 24 * time.Hour: {Points: 84, Interval: 2 * time.Hour},
}

type metricBase struct {
	Base     float64
	Variance float64
	Unit     string
}

var metricBases = map[string]metricBase{
	"latency":        {45, 30, "ms"},
	"uptime":         {99, 2, "%"},
	"successRate":    {92, 8, "%"},
	"avgDuration":    {1800, 500, "ms"},
	"throughput":     {250, 80, "req/min"},
	"errorRate":      {3, 5, "%"},
	"runningCount":   {4, 2, "count"},
	"pageLoadTime":   {3000, 1500, "ms"},
	"responseTime":   {1800, 600, "ms"},
	"activeSessions": {150, 50, "count"},
	"queueDepth":     {5000, 4000, "count"},
}

var fallbackBase = metricBase{Base: 50, Variance: 20}

var metricsByType = map[model.MonitorType][]string{
	model.TypeAPI:     {"latency", "throughput", "errorRate"},
	model.TypeMQ:      {"latency", "throughput", "errorRate"},
	model.TypeSearch:  {"latency", "throughput", "errorRate"},
	model.TypeOrder:   {"successRate", "avgDuration", "throughput"},
	model.TypeDB:      {"latency", "throughput", "errorRate"},
	model.TypeCache:   {"latency", "throughput", "errorRate"},
	model.TypeECS:     {"runningCount", "errorRate", "latency"},
	model.TypeCrawler: {"pageLoadTime", "throughput", "errorRate"},
	model.TypeSwitch:  {"throughput", "errorRate"},
	model.TypeChatbot: {"responseTime", "activeSessions", "errorRate"},
}

// parseRange resolves a chart range such as "1h" or "7d". An empty range means one hour.
func parseRange(r string) (seriesShape, error) {
	if r == "" {
		r = "1h"
	}
	d, err := prommodel.ParseDuration(r)
	if err != nil {
		return seriesShape{}, fmt.Errorf("range %q: %w", r, model.ErrInvalidRange)
	}
	shape, ok := seriesShapes[time.Duration(d)]
	if !ok {
		return seriesShape{}, fmt.Errorf("range %q is not one of 1h, 6h, 24h, 7d: %w", r, model.ErrInvalidRange)
	}
	return shape, nil
}

// MetricHistory generates a chart series for one metric of a monitor.
func (s *Service) MetricHistory(ctx context.Context, monitorID, metricKey, rng string) (model.MetricSeries, error) {
	if err := s.wait(ctx, latencyMetricSeries); err != nil {
		return model.MetricSeries{}, err
	}
	shape, err := parseRange(rng)
	if err != nil {
		return model.MetricSeries{}, err
	}
	return s.series(metricKey, shape), nil
}

// MonitorMetricSeries generates the series of every chart metric of the monitor's type.
func (s *Service) MonitorMetricSeries(ctx context.Context, monitorID, rng string) ([]model.MetricSeries, error) {
	if err := s.wait(ctx, latencySeriesBatch); err != nil {
		return nil, err
	}
	shape, err := parseRange(rng)
	if err != nil {
		return nil, err
	}
	typ := model.TypeAPI
	if m, err := s.state.MonitorByID(monitorID); err == nil && m.Type != "" {
		typ = m.Type
	}
	keys, ok := metricsByType[typ]
	if !ok {
		keys = metricsByType[model.TypeAPI]
	}
	out := make([]model.MetricSeries, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.series(k, shape))
	}
	return out, nil
}

func (s *Service) series(metricKey string, shape seriesShape) model.MetricSeries {
	cfg, ok := metricBases[metricKey]
	if !ok {
		cfg = fallbackBase
	}
	data := make([]model.TimeSeriesPoint, shape.Points)
	for i := range data {
		at := baseTime.Add(-time.Duration(shape.Points-i) * shape.Interval)
		noise := (s.float64() - 0.5) * 2 * cfg.Variance
		spike := 0.0
		if s.float64() > 0.92 {
			spike = cfg.Variance * 2
		}
		data[i] = model.TimeSeriesPoint{
			Time:  at.Format("2006-01-02T15:04:05.000Z07:00"),
			Value: math.Max(0, math.Round((cfg.Base+noise+spike)*10)/10),
		}
	}
	return model.MetricSeries{MetricKey: metricKey, Unit: cfg.Unit, Data: data}
}
