package service

import (
	"context"
	"fmt"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
)

// MonitorInput holds the caller supplied fields of a new monitor. Zero values take defaults.
type MonitorInput struct {
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description"`
	Status      model.MonitorStatus   `json:"status"`
	Type        model.MonitorType     `json:"type"`
	Metrics     model.Metrics         `json:"metrics"`
	History     []model.MonitorStatus `json:"history"`
}

const defaultHistoryLen = 10

func (s *Service) Monitors(ctx context.Context, projectID string) ([]model.Monitor, error) {
	if err := s.wait(ctx, latencyMonitors); err != nil {
		return nil, err
	}
	return s.state.Monitors(projectID), nil
}

func (s *Service) Infrastructure(ctx context.Context, projectID string) ([]model.Monitor, error) {
	return s.filtered(ctx, projectID, (*model.Monitor).IsInfrastructure)
}

func (s *Service) Business(ctx context.Context, projectID string) ([]model.Monitor, error) {
	return s.filtered(ctx, projectID, (*model.Monitor).IsBusiness)
}

func (s *Service) filtered(ctx context.Context, projectID string, keep func(*model.Monitor) bool) ([]model.Monitor, error) {
	all, err := s.Monitors(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for i := range all {
		if keep(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (s *Service) MonitorByID(ctx context.Context, id string) (model.Monitor, error) {
	if err := s.wait(ctx, latencyMonitorByID); err != nil {
		return model.Monitor{}, err
	}
	return s.state.MonitorByID(id)
}

// AddMonitor creates a monitor in the given dashboard group of a project.
func (s *Service) AddMonitor(ctx context.Context, in MonitorInput, group model.Category, projectID string) (model.Monitor, error) {
	if err := s.wait(ctx, latencyAddMonitor); err != nil {
		return model.Monitor{}, err
	}
	if _, ok := model.ParseCategory(string(group)); !ok {
		return model.Monitor{}, fmt.Errorf("monitor group %q: %w", group, model.ErrInvalidArgument)
	}
	if _, err := s.state.ProjectByID(projectID); err != nil {
		return model.Monitor{}, err
	}

	m := model.Monitor{
		ProjectID:   projectID,
		Name:        in.Name,
		Description: "No description",
		Status:      model.StatusOK,
		Type:        model.TypeAPI,
		Category:    group,
		Metrics: model.Metrics{
			"uptime":  {Label: "uptime", Value: "100%", Status: model.MetricGood, Order: 0},
			"latency": {Label: "latency", Value: "20ms", Order: 1},
		},
	}
	if group == model.CategorySwitch {
		m.Status = model.StatusOff
	}
	if in.Description != "" {
		m.Description = in.Description
	}
	if in.Status != "" {
		m.Status = in.Status
	}
	if in.Type != "" {
		m.Type = in.Type
	}
	if len(in.Metrics) > 0 {
		m.Metrics = in.Metrics
	}
	if len(in.History) > 0 {
		m.History = append([]model.MonitorStatus(nil), in.History...)
	} else {
		m.History = make([]model.MonitorStatus, defaultHistoryLen)
		for i := range m.History {
			m.History[i] = m.Status
		}
	}
	return s.state.AddMonitor(m), nil
}

// MonitorRefs lists the monitors of a project with their metric keys, for the rule editor.
func (s *Service) MonitorRefs(ctx context.Context, projectID string) ([]model.MonitorRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	monitors := s.state.Monitors(projectID)
	out := make([]model.MonitorRef, 0, len(monitors))
	for _, m := range monitors {
		name := m.Name
		if name == "" {
			name = m.ID
		}
		out = append(out, model.MonitorRef{ID: m.ID, Name: name, MetricKeys: m.Metrics.Keys()})
	}
	return out, nil
}
