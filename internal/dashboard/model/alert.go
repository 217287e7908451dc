package model

import "time"

// Severity of an alert rule or event.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// RuleStatus enables or disables an alert rule.
type RuleStatus string

const (
	RuleEnabled  RuleStatus = "enabled"
	RuleDisabled RuleStatus = "disabled"
)

// EventStatus is the lifecycle state of an alert event.
type EventStatus string

const (
	EventFiring   EventStatus = "firing"
	EventResolved EventStatus = "resolved"
)

// ChannelType is the delivery integration of an alert channel.
type ChannelType string

const (
	ChannelFeishu  ChannelType = "feishu"
	ChannelWebhook ChannelType = "webhook"
	ChannelEmail   ChannelType = "email"
)

// Operator compares a metric value to a rule threshold.
type Operator string

const (
	OpGT Operator = ">"
	OpLT Operator = "<"
	OpGE Operator = ">="
	OpLE Operator = "<="
	OpEQ Operator = "=="
)

// Valid reports whether op is one of the supported comparison operators.
func (op Operator) Valid() bool {
	switch op {
	case OpGT, OpLT, OpGE, OpLE, OpEQ:
		return true
	}
	return false
}

// AlertRule is a threshold condition over a monitor metric. MonitorName is denormalized
// and no referential integrity against monitors or channels is enforced.
type AlertRule struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	MonitorID   string     `json:"monitorId" yaml:"monitorId"`
	MonitorName string     `json:"monitorName" yaml:"monitorName"`
	MetricKey   string     `json:"metricKey" yaml:"metricKey"`
	Operator    Operator   `json:"operator" yaml:"operator"`
	Threshold   float64    `json:"threshold" yaml:"threshold"`
	Unit        string     `json:"unit" yaml:"unit"`
	Severity    Severity   `json:"severity" yaml:"severity"`
	Status      RuleStatus `json:"status" yaml:"status"`
	ChannelIDs  []string   `json:"channelIds" yaml:"channelIds"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" yaml:"updatedAt"`
}

// AlertRuleInput carries the caller supplied fields of a new rule.
type AlertRuleInput struct {
	Name        string     `json:"name" binding:"required"`
	MonitorID   string     `json:"monitorId" binding:"required"`
	MonitorName string     `json:"monitorName"`
	MetricKey   string     `json:"metricKey" binding:"required"`
	Operator    Operator   `json:"operator" binding:"required"`
	Threshold   float64    `json:"threshold"`
	Unit        string     `json:"unit"`
	Severity    Severity   `json:"severity"`
	Status      RuleStatus `json:"status"`
	ChannelIDs  []string   `json:"channelIds"`
}

// AlertRulePatch is a partial update; nil fields are left untouched.
type AlertRulePatch struct {
	Name        *string     `json:"name"`
	MonitorID   *string     `json:"monitorId"`
	MonitorName *string     `json:"monitorName"`
	MetricKey   *string     `json:"metricKey"`
	Operator    *Operator   `json:"operator"`
	Threshold   *float64    `json:"threshold"`
	Unit        *string     `json:"unit"`
	Severity    *Severity   `json:"severity"`
	Status      *RuleStatus `json:"status"`
	ChannelIDs  []string    `json:"channelIds"`
}

// Apply merges the patch into r.
func (p *AlertRulePatch) Apply(r *AlertRule) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.MonitorID != nil {
		r.MonitorID = *p.MonitorID
	}
	if p.MonitorName != nil {
		r.MonitorName = *p.MonitorName
	}
	if p.MetricKey != nil {
		r.MetricKey = *p.MetricKey
	}
	if p.Operator != nil {
		r.Operator = *p.Operator
	}
	if p.Threshold != nil {
		r.Threshold = *p.Threshold
	}
	if p.Unit != nil {
		r.Unit = *p.Unit
	}
	if p.Severity != nil {
		r.Severity = *p.Severity
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.ChannelIDs != nil {
		r.ChannelIDs = append([]string(nil), p.ChannelIDs...)
	}
}

// AlertChannel is a notification target. Delivery is not performed.
type AlertChannel struct {
	ID        string            `json:"id" yaml:"id"`
	Name      string            `json:"name" yaml:"name"`
	Type      ChannelType       `json:"type" yaml:"type"`
	Config    map[string]string `json:"config" yaml:"config"`
	Enabled   bool              `json:"enabled" yaml:"enabled"`
	CreatedAt time.Time         `json:"createdAt" yaml:"createdAt"`
}

// AlertChannelInput carries the caller supplied fields of a new channel.
type AlertChannelInput struct {
	Name   string            `json:"name" binding:"required"`
	Type   ChannelType       `json:"type" binding:"required"`
	Config map[string]string `json:"config"`
}

// AlertChannelPatch is a partial update; nil fields are left untouched.
type AlertChannelPatch struct {
	Name    *string           `json:"name"`
	Type    *ChannelType      `json:"type"`
	Config  map[string]string `json:"config"`
	Enabled *bool             `json:"enabled"`
}

// Apply merges the patch into c.
func (p *AlertChannelPatch) Apply(c *AlertChannel) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Config != nil {
		c.Config = cloneStringMap(p.Config)
	}
	if p.Enabled != nil {
		c.Enabled = *p.Enabled
	}
}

// AlertEvent is an entry of the static alert log.
type AlertEvent struct {
	ID          string      `json:"id" yaml:"id"`
	RuleID      string      `json:"ruleId" yaml:"ruleId"`
	RuleName    string      `json:"ruleName" yaml:"ruleName"`
	MonitorID   string      `json:"monitorId" yaml:"monitorId"`
	MonitorName string      `json:"monitorName" yaml:"monitorName"`
	Severity    Severity    `json:"severity" yaml:"severity"`
	Status      EventStatus `json:"status" yaml:"status"`
	Message     string      `json:"message" yaml:"message"`
	Value       float64     `json:"value" yaml:"value"`
	Threshold   float64     `json:"threshold" yaml:"threshold"`
	FiredAt     time.Time   `json:"firedAt" yaml:"firedAt"`
	ResolvedAt  *time.Time  `json:"resolvedAt,omitempty" yaml:"resolvedAt"`
}
