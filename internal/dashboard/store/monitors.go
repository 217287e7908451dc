package store

import (
	"fmt"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
)

// Monitors returns copies of the monitors of a project, or every monitor when
// projectID is empty.
func (s *State) Monitors(projectID string) []model.Monitor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Monitor, 0, len(s.monitors))
	for _, m := range s.monitors {
		if projectID == "" || m.ProjectID == projectID {
			out = append(out, *m.Clone())
		}
	}
	return out
}

func (s *State) MonitorByID(id string) (model.Monitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.monitors {
		if m.ID == id {
			return *m.Clone(), nil
		}
	}
	return model.Monitor{}, fmt.Errorf("monitor %q: %w", id, model.ErrNotFound)
}

// AddMonitor assigns an id to m and appends it.
func (s *State) AddMonitor(m model.Monitor) model.Monitor {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.nextID("")
	stored := m.Clone()
	s.monitors = append(s.monitors, stored)
	return *stored.Clone()
}

// UpdateMonitors runs fn with exclusive access to the live monitors. fn must not
// retain the pointers.
func (s *State) UpdateMonitors(fn func(monitors []*model.Monitor)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.monitors)
}
