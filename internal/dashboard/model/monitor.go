package model

import "sort"

// MonitorStatus is the health state of a monitor. Switch monitors use on/off.
type MonitorStatus string

const (
	StatusOK    MonitorStatus = "ok"
	StatusError MonitorStatus = "error"
	StatusSlow  MonitorStatus = "slow"
	StatusOn    MonitorStatus = "on"
	StatusOff   MonitorStatus = "off"
)

// MonitorType selects log templates, metric sets and card layouts.
type MonitorType string

const (
	TypeAPI     MonitorType = "api"
	TypeMQ      MonitorType = "mq"
	TypeSearch  MonitorType = "search"
	TypeOrder   MonitorType = "order"
	TypeDB      MonitorType = "db"
	TypeCache   MonitorType = "cache"
	TypeECS     MonitorType = "ecs"
	TypeCrawler MonitorType = "crawler"
	TypeSwitch  MonitorType = "switch"
	TypeChatbot MonitorType = "chatbot"
)

// Category is the dashboard group a monitor is rendered in.
type Category string

const (
	CategoryInfrastructure Category = "infrastructure"
	CategoryBusiness       Category = "business"
	CategoryService        Category = "service"
	CategorySwitch         Category = "switch"
)

// ParseCategory validates a dashboard group name.
func ParseCategory(s string) (Category, bool) {
	switch c := Category(s); c {
	case CategoryInfrastructure, CategoryBusiness, CategoryService, CategorySwitch:
		return c, true
	}
	return "", false
}

// MetricStatus marks a metric value as good or bad for rendering.
type MetricStatus string

const (
	MetricGood MetricStatus = "good"
	MetricBad  MetricStatus = "bad"
)

// Metric is one card metric. Order only controls display position.
type Metric struct {
	Label  string       `json:"label" yaml:"label"`
	Value  string       `json:"value" yaml:"value"`
	Status MetricStatus `json:"status,omitempty" yaml:"status"`
	Order  int          `json:"order" yaml:"order"`
}

// Metrics maps metric key (uptime, latency, ...) to its current value.
type Metrics map[string]Metric

// Keys returns metric keys in display order.
func (m Metrics) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := m[keys[i]], m[keys[j]]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return keys[i] < keys[j]
	})
	return keys
}

// SetValue updates the value of an existing metric, or adds it at the end.
func (m Metrics) SetValue(key, value string) {
	met, ok := m[key]
	if !ok {
		met = Metric{Label: key, Order: len(m)}
	}
	met.Value = value
	m[key] = met
}

// FlowState is the status of a business flow stage.
type FlowState string

const (
	FlowOK      FlowState = "ok"
	FlowError   FlowState = "error"
	FlowPending FlowState = "pending"
)

// FlowMark is the compact per-stage status attached to an event.
type FlowMark struct {
	Name   string    `json:"name" yaml:"name"`
	Status FlowState `json:"status" yaml:"status"`
}

// Event is a timeline entry on a monitor card, newest first.
type Event struct {
	Time    string     `json:"time" yaml:"time"`
	Message string     `json:"msg" yaml:"msg"`
	ID      string     `json:"id,omitempty" yaml:"id"`
	Flow    []FlowMark `json:"flow,omitempty" yaml:"flow"`
}

// AnalysisStep is one step the diagnostic agent took.
type AnalysisStep struct {
	Title string `json:"title" yaml:"title"`
	Desc  string `json:"desc" yaml:"desc"`
}

// RootCause is the agent's conclusion.
type RootCause struct {
	Title      string `json:"title" yaml:"title"`
	Desc       string `json:"desc" yaml:"desc"`
	Confidence string `json:"confidence,omitempty" yaml:"confidence"`
}

// AgentAnalysis holds the diagnostic agent output for a monitor.
type AgentAnalysis struct {
	Steps     []AnalysisStep `json:"steps,omitempty" yaml:"steps"`
	RootCause *RootCause     `json:"rootCause,omitempty" yaml:"rootCause"`
}

// FlowStep is one stage of a multi-stage business transaction.
type FlowStep struct {
	Name         string    `json:"name" yaml:"name"`
	Status       FlowState `json:"status" yaml:"status"`
	Duration     string    `json:"duration,omitempty" yaml:"duration"`
	Endpoint     string    `json:"endpoint,omitempty" yaml:"endpoint"`
	Threshold    string    `json:"threshold,omitempty" yaml:"threshold"`
	StartedAt    string    `json:"startedAt,omitempty" yaml:"startedAt"`
	Retries      int       `json:"retries" yaml:"retries"`
	Throughput   string    `json:"throughput,omitempty" yaml:"throughput"`
	P99          string    `json:"p99,omitempty" yaml:"p99"`
	ErrorMessage string    `json:"errorMessage,omitempty" yaml:"errorMessage"`
}

// HistorySnapshot is the captured flow/event/agent state at one history position.
type HistorySnapshot struct {
	FlowSteps []FlowStep     `json:"flowSteps,omitempty" yaml:"flowSteps"`
	Events    []Event        `json:"events,omitempty" yaml:"events"`
	Agent     *AgentAnalysis `json:"agent,omitempty" yaml:"agent"`
}

// Monitor is a tracked health check. History is a fixed-length window of recent statuses,
// oldest first.
type Monitor struct {
	ID               string            `json:"id" yaml:"id"`
	ProjectID        string            `json:"projectId" yaml:"projectId"`
	Name             string            `json:"name" yaml:"name"`
	Description      string            `json:"description" yaml:"description"`
	Status           MonitorStatus     `json:"status" yaml:"status"`
	Type             MonitorType       `json:"type" yaml:"type"`
	Category         Category          `json:"category,omitempty" yaml:"category"`
	Metrics          Metrics           `json:"metrics" yaml:"metrics"`
	History          []MonitorStatus   `json:"history" yaml:"history"`
	Events           []Event           `json:"events,omitempty" yaml:"events"`
	Agent            *AgentAnalysis    `json:"agent,omitempty" yaml:"agent"`
	FlowSteps        []FlowStep        `json:"flowSteps,omitempty" yaml:"flowSteps"`
	HistorySnapshots []HistorySnapshot `json:"historySnapshots,omitempty" yaml:"historySnapshots"`
}

// PushHistory slides the window: the oldest sample is dropped and s appended.
// The window length never changes.
func (m *Monitor) PushHistory(s MonitorStatus) {
	n := len(m.History)
	if n == 0 {
		return
	}
	copy(m.History, m.History[1:])
	m.History[n-1] = s
}

// IsInfrastructure reports whether the monitor belongs to the infrastructure group.
// Monitors without a category fall back to their type.
func (m *Monitor) IsInfrastructure() bool {
	if m.Category != "" {
		return m.Category == CategoryInfrastructure
	}
	switch m.Type {
	case TypeAPI, TypeMQ, TypeSearch, TypeDB, TypeCache:
		return true
	}
	return false
}

// IsBusiness reports whether the monitor belongs to the business group.
func (m *Monitor) IsBusiness() bool {
	if m.Category != "" {
		return m.Category == CategoryBusiness
	}
	return m.Type == TypeOrder
}

// MonitorRef is the compact monitor descriptor used by the alert rule editor.
type MonitorRef struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	MetricKeys []string `json:"metricKeys"`
}

// StatusTransition records a status change made by the simulation.
type StatusTransition struct {
	MonitorID string        `json:"monitorId"`
	ProjectID string        `json:"projectId"`
	Type      MonitorType   `json:"type"`
	From      MonitorStatus `json:"from"`
	To        MonitorStatus `json:"to"`
	At        int64         `json:"at"`
}
