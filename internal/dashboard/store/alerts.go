package store

import (
	"fmt"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
)

func (s *State) AlertRules() []model.AlertRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.AlertRule, len(s.rules))
	for i, r := range s.rules {
		out[i] = *r.Clone()
	}
	return out
}

// AddAlertRule stamps id and timestamps on r and appends it.
func (s *State) AddAlertRule(r model.AlertRule) model.AlertRule {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clk.Now().UTC()
	r.ID = s.nextID("rule-")
	r.CreatedAt, r.UpdatedAt = now, now
	stored := r.Clone()
	s.rules = append(s.rules, stored)
	return *stored.Clone()
}

// UpdateAlertRule applies patch to rule id and bumps UpdatedAt.
func (s *State) UpdateAlertRule(id string, patch model.AlertRulePatch) (model.AlertRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rules {
		if r.ID == id {
			patch.Apply(r)
			r.UpdatedAt = s.clk.Now().UTC()
			return *r.Clone(), nil
		}
	}
	return model.AlertRule{}, fmt.Errorf("alert rule %q: %w", id, model.ErrNotFound)
}

func (s *State) DeleteAlertRule(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rules {
		if r.ID == id {
			s.rules = append(s.rules[:i], s.rules[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("alert rule %q: %w", id, model.ErrNotFound)
}

func (s *State) AlertChannels() []model.AlertChannel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.AlertChannel, len(s.channels))
	for i, c := range s.channels {
		out[i] = *c.Clone()
	}
	return out
}

// AddAlertChannel stamps id and creation time on c, enables it and appends it.
func (s *State) AddAlertChannel(c model.AlertChannel) model.AlertChannel {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextID("ch-")
	c.CreatedAt = s.clk.Now().UTC()
	c.Enabled = true
	stored := c.Clone()
	s.channels = append(s.channels, stored)
	return *stored.Clone()
}

func (s *State) UpdateAlertChannel(id string, patch model.AlertChannelPatch) (model.AlertChannel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.channels {
		if c.ID == id {
			patch.Apply(c)
			return *c.Clone(), nil
		}
	}
	return model.AlertChannel{}, fmt.Errorf("alert channel %q: %w", id, model.ErrNotFound)
}

func (s *State) DeleteAlertChannel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.channels {
		if c.ID == id {
			s.channels = append(s.channels[:i], s.channels[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("alert channel %q: %w", id, model.ErrNotFound)
}

func (s *State) AlertEvents() []model.AlertEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.AlertEvent, len(s.events))
	for i := range s.events {
		out[i] = *s.events[i].Clone()
	}
	return out
}
