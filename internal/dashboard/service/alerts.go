package service

import (
	"context"
	"fmt"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
)

func (s *Service) AlertRules(ctx context.Context) ([]model.AlertRule, error) {
	if err := s.wait(ctx, latencyAlertList); err != nil {
		return nil, err
	}
	return s.state.AlertRules(), nil
}

// CreateAlertRule stores a new rule. MonitorName is filled from the monitor when omitted.
// Monitor and channel references are not checked.
func (s *Service) CreateAlertRule(ctx context.Context, in model.AlertRuleInput) (model.AlertRule, error) {
	if err := s.wait(ctx, latencyAlertWrite); err != nil {
		return model.AlertRule{}, err
	}
	if !in.Operator.Valid() {
		return model.AlertRule{}, fmt.Errorf("operator %q: %w", in.Operator, model.ErrInvalidArgument)
	}
	r := model.AlertRule{
		Name:        in.Name,
		MonitorID:   in.MonitorID,
		MonitorName: in.MonitorName,
		MetricKey:   in.MetricKey,
		Operator:    in.Operator,
		Threshold:   in.Threshold,
		Unit:        in.Unit,
		Severity:    in.Severity,
		Status:      in.Status,
		ChannelIDs:  append([]string{}, in.ChannelIDs...),
	}
	if r.Severity == "" {
		r.Severity = model.SeverityWarning
	}
	if r.Status == "" {
		r.Status = model.RuleEnabled
	}
	if r.MonitorName == "" {
		if m, err := s.state.MonitorByID(r.MonitorID); err == nil {
			r.MonitorName = m.Name
		}
	}
	return s.state.AddAlertRule(r), nil
}

func (s *Service) UpdateAlertRule(ctx context.Context, id string, patch model.AlertRulePatch) (model.AlertRule, error) {
	if err := s.wait(ctx, latencyAlertWrite); err != nil {
		return model.AlertRule{}, err
	}
	if patch.Operator != nil && !patch.Operator.Valid() {
		return model.AlertRule{}, fmt.Errorf("operator %q: %w", *patch.Operator, model.ErrInvalidArgument)
	}
	return s.state.UpdateAlertRule(id, patch)
}

func (s *Service) DeleteAlertRule(ctx context.Context, id string) error {
	if err := s.wait(ctx, latencyAlertDelete); err != nil {
		return err
	}
	return s.state.DeleteAlertRule(id)
}

func (s *Service) AlertChannels(ctx context.Context) ([]model.AlertChannel, error) {
	if err := s.wait(ctx, latencyAlertList); err != nil {
		return nil, err
	}
	return s.state.AlertChannels(), nil
}

// CreateAlertChannel stores a new, enabled channel. Nothing is ever delivered to it.
func (s *Service) CreateAlertChannel(ctx context.Context, in model.AlertChannelInput) (model.AlertChannel, error) {
	if err := s.wait(ctx, latencyAlertWrite); err != nil {
		return model.AlertChannel{}, err
	}
	switch in.Type {
	case model.ChannelFeishu, model.ChannelWebhook, model.ChannelEmail:
	default:
		return model.AlertChannel{}, fmt.Errorf("channel type %q: %w", in.Type, model.ErrInvalidArgument)
	}
	c := model.AlertChannel{Name: in.Name, Type: in.Type, Config: in.Config}
	if c.Config == nil {
		c.Config = map[string]string{}
	}
	return s.state.AddAlertChannel(c), nil
}

func (s *Service) UpdateAlertChannel(ctx context.Context, id string, patch model.AlertChannelPatch) (model.AlertChannel, error) {
	if err := s.wait(ctx, latencyAlertWrite); err != nil {
		return model.AlertChannel{}, err
	}
	return s.state.UpdateAlertChannel(id, patch)
}

func (s *Service) DeleteAlertChannel(ctx context.Context, id string) error {
	if err := s.wait(ctx, latencyAlertDelete); err != nil {
		return err
	}
	return s.state.DeleteAlertChannel(id)
}

func (s *Service) AlertEvents(ctx context.Context) ([]model.AlertEvent, error) {
	if err := s.wait(ctx, latencyAlertList); err != nil {
		return nil, err
	}
	return s.state.AlertEvents(), nil
}
