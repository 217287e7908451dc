// Package store holds the mutable dashboard state: the collections seeded from fixtures and
// the active project. Readers get deep copies; writers hold the lock for the whole change.
package store

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/qiniu/pulseboard/internal/dashboard/clock"
	"github.com/qiniu/pulseboard/internal/dashboard/fixture"
	"github.com/qiniu/pulseboard/internal/dashboard/model"
)

// DefaultProjectID is the project that is active before any route is resolved.
const DefaultProjectID = "1"

// ActiveProject identifies the project the dashboard is currently showing.
type ActiveProject struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

// State is the explicit application state shared by the service facade, the simulation
// engine and the API.
type State struct {
	mu       sync.RWMutex
	clk      clock.Clock
	projects []model.Project
	monitors []*model.Monitor
	rules    []*model.AlertRule
	channels []*model.AlertChannel
	events   []model.AlertEvent
	active   ActiveProject
	lastID   int64
}

// New builds a state from a seed. The seed is copied.
func New(seed *fixture.Seed, clk clock.Clock) *State {
	seed = seed.Clone()
	s := &State{
		clk:      clk,
		projects: seed.Projects,
		events:   seed.AlertEvents,
		active:   ActiveProject{ID: DefaultProjectID},
	}
	for i := range seed.Monitors {
		s.monitors = append(s.monitors, &seed.Monitors[i])
	}
	for i := range seed.AlertRules {
		s.rules = append(s.rules, &seed.AlertRules[i])
	}
	for i := range seed.AlertChannels {
		s.channels = append(s.channels, &seed.AlertChannels[i])
	}
	for _, p := range s.projects {
		if p.ID == DefaultProjectID {
			s.active.Code = p.Code
		}
	}
	return s
}

// nextID returns a millisecond timestamp id that is unique within the process.
// Callers must hold the write lock.
func (s *State) nextID(prefix string) string {
	id := s.clk.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return prefix + strconv.FormatInt(id, 10)
}

func (s *State) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Project(nil), s.projects...)
}

func (s *State) ProjectByCode(code string) (model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.Code == code {
			return p, nil
		}
	}
	return model.Project{}, fmt.Errorf("project %q: %w", code, model.ErrNotFound)
}

func (s *State) ProjectByID(id string) (model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Project{}, fmt.Errorf("project id %q: %w", id, model.ErrNotFound)
}

// AddProject stores a new project whose code is base, or base-1, base-2, ... when
// base is already taken.
func (s *State) AddProject(base, name, desc string) model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	taken := make(map[string]bool, len(s.projects))
	for _, p := range s.projects {
		taken[p.Code] = true
	}
	code := base
	for n := 1; taken[code]; n++ {
		code = base + "-" + strconv.Itoa(n)
	}
	p := model.Project{
		ID:          s.nextID(""),
		Code:        code,
		Name:        name,
		Description: desc,
		Status:      model.ProjectStatusOK,
	}
	s.projects = append(s.projects, p)
	return p
}

func (s *State) ActiveProject() ActiveProject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *State) SetActiveProject(p model.Project) {
	s.mu.Lock()
	s.active = ActiveProject{ID: p.ID, Code: p.Code}
	s.mu.Unlock()
}
