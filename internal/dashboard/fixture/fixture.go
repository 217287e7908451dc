// Package fixture holds the seed collections the dashboard starts from.
package fixture

import (
	"fmt"
	"os"
	"time"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
	"gopkg.in/yaml.v3"
)

// Seed is a full set of dashboard collections.
type Seed struct {
	Projects      []model.Project      `yaml:"projects"`
	Monitors      []model.Monitor      `yaml:"monitors"`
	AlertRules    []model.AlertRule    `yaml:"alertRules"`
	AlertChannels []model.AlertChannel `yaml:"alertChannels"`
	AlertEvents   []model.AlertEvent   `yaml:"alertEvents"`
}

// Load returns a deep copy of the built-in seed, so callers may mutate it freely.
func Load() *Seed {
	s := &Seed{
		Projects:      projects(),
		AlertRules:    alertRules(),
		AlertChannels: alertChannels(),
		AlertEvents:   alertEvents(),
	}
	s.Monitors = append(s.Monitors, infrastructure()...)
	s.Monitors = append(s.Monitors, business()...)
	s.Monitors = append(s.Monitors, production()...)
	return s.Clone()
}

// LoadFile reads a YAML seed file and overlays every non-empty collection onto the
// built-in seed.
func LoadFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	var override Seed
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	s := Load()
	if len(override.Projects) > 0 {
		s.Projects = override.Projects
	}
	if len(override.Monitors) > 0 {
		s.Monitors = override.Monitors
	}
	if len(override.AlertRules) > 0 {
		s.AlertRules = override.AlertRules
	}
	if len(override.AlertChannels) > 0 {
		s.AlertChannels = override.AlertChannels
	}
	if len(override.AlertEvents) > 0 {
		s.AlertEvents = override.AlertEvents
	}
	return s.Clone(), nil
}

// Clone deep-copies every collection of the seed.
func (s *Seed) Clone() *Seed {
	out := &Seed{
		Projects:      append([]model.Project(nil), s.Projects...),
		Monitors:      make([]model.Monitor, len(s.Monitors)),
		AlertRules:    make([]model.AlertRule, len(s.AlertRules)),
		AlertChannels: make([]model.AlertChannel, len(s.AlertChannels)),
		AlertEvents:   make([]model.AlertEvent, len(s.AlertEvents)),
	}
	for i := range s.Monitors {
		out.Monitors[i] = *s.Monitors[i].Clone()
	}
	for i := range s.AlertRules {
		out.AlertRules[i] = *s.AlertRules[i].Clone()
	}
	for i := range s.AlertChannels {
		out.AlertChannels[i] = *s.AlertChannels[i].Clone()
	}
	for i := range s.AlertEvents {
		out.AlertEvents[i] = *s.AlertEvents[i].Clone()
	}
	return out
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func metrics(kv ...model.Metric) model.Metrics {
	out := make(model.Metrics, len(kv))
	for i, m := range kv {
		m.Order = i
		out[m.Label] = m
	}
	return out
}

// metric builds a card metric whose label doubles as its key.
func metric(key, value string, status model.MetricStatus) model.Metric {
	return model.Metric{Label: key, Value: value, Status: status}
}

func history(s ...model.MonitorStatus) []model.MonitorStatus { return s }
