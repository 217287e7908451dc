package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
)

const (
	logCount     = 50
	logStep      = 15 * time.Second
	logTimestamp = "2006-01-02 15:04:05"
)

var logLevels = []model.LogLevel{
	model.LevelInfo, model.LevelInfo, model.LevelInfo, model.LevelInfo,
	model.LevelWarn, model.LevelWarn, model.LevelError,
	model.LevelDebug, model.LevelDebug, model.LevelInfo,
}

// LogTemplates returns the message table used for a monitor type, falling back to api.
func LogTemplates(t model.MonitorType) []string {
	if tpl, ok := logTemplates[t]; ok {
		return tpl
	}
	return logTemplates[model.TypeAPI]
}

// Logs generates 50 log lines for a monitor, newest first, then applies filter. Unknown
// monitors get api lines with the id as source.
func (s *Service) Logs(ctx context.Context, monitorID string, filter model.LogFilter) ([]model.LogEntry, error) {
	if err := s.wait(ctx, latencyLogs); err != nil {
		return nil, err
	}
	typ := model.TypeAPI
	source := monitorID
	if m, err := s.state.MonitorByID(monitorID); err == nil {
		if m.Type != "" {
			typ = m.Type
		}
		if m.Description != "" {
			source = m.Description
		}
	}
	templates := LogTemplates(typ)
	keyword := strings.ToLower(filter.Keyword)

	out := make([]model.LogEntry, 0, logCount)
	for i := 0; i < logCount; i++ {
		level := logLevels[i%len(logLevels)]
		if typ == model.TypeMQ && i < 3 {
			level = model.LevelError
		}
		e := model.LogEntry{
			ID:      "log-" + monitorID + "-" + strconv.Itoa(i),
			Time:    baseTime.Add(-time.Duration(i) * logStep).Format(logTimestamp),
			Level:   level,
			Message: templates[i%len(templates)],
			Source:  source,
		}
		if s.float64() > 0.5 {
			e.TraceID = "trace-" + s.base36(8)
		}
		if filter.Level != "" && e.Level != filter.Level {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(e.Message), keyword) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *Service) base36(n int) string {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	for i := range b {
		b[i] = digits[int(s.float64()*float64(len(digits)))%len(digits)]
	}
	return string(b)
}
