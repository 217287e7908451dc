package model

// LogLevel of a generated log line.
type LogLevel string

const (
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
	LevelDebug LogLevel = "debug"
)

// ParseLogLevel validates a level filter value.
func ParseLogLevel(s string) (LogLevel, bool) {
	switch l := LogLevel(s); l {
	case LevelInfo, LevelWarn, LevelError, LevelDebug:
		return l, true
	}
	return "", false
}

// LogEntry is one generated log line.
type LogEntry struct {
	ID      string   `json:"id"`
	Time    string   `json:"time"`
	Level   LogLevel `json:"level"`
	Message string   `json:"message"`
	Source  string   `json:"source"`
	TraceID string   `json:"traceId,omitempty"`
}

// LogFilter narrows generated logs. Zero values match everything.
type LogFilter struct {
	Level   LogLevel
	Keyword string
}

// TimeSeriesPoint is one chart sample; Time is RFC3339 with milliseconds.
type TimeSeriesPoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// MetricSeries is a generated chart series for one metric key.
type MetricSeries struct {
	MetricKey string            `json:"metricKey"`
	Unit      string            `json:"unit"`
	Data      []TimeSeriesPoint `json:"data"`
}
