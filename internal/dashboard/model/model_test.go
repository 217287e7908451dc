package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonitor_PushHistoryKeepsLength(t *testing.T) {
	m := &Monitor{History: []MonitorStatus{StatusOK, StatusSlow, StatusError}}
	m.PushHistory(StatusOK)
	assert.Equal(t, []MonitorStatus{StatusSlow, StatusError, StatusOK}, m.History)

	empty := &Monitor{}
	empty.PushHistory(StatusOK)
	assert.Empty(t, empty.History)
}

func TestMetrics_KeysAndSetValue(t *testing.T) {
	m := Metrics{
		"latency": {Label: "latency", Value: "45ms", Order: 1},
		"uptime":  {Label: "uptime", Value: "99%", Order: 0},
	}
	assert.Equal(t, []string{"uptime", "latency"}, m.Keys())

	m.SetValue("latency", "60ms")
	assert.Equal(t, "60ms", m["latency"].Value)
	assert.Equal(t, 1, m["latency"].Order)

	m.SetValue("errorRate", "1%")
	assert.Equal(t, []string{"uptime", "latency", "errorRate"}, m.Keys())
}

func TestMonitor_Groups(t *testing.T) {
	tests := []struct {
		name     string
		m        Monitor
		infra    bool
		business bool
	}{
		{"category wins", Monitor{Type: TypeAPI, Category: CategoryService}, false, false},
		{"db without category", Monitor{Type: TypeDB}, true, false},
		{"order without category", Monitor{Type: TypeOrder}, false, true},
		{"business category", Monitor{Type: TypeAPI, Category: CategoryBusiness}, false, true},
		{"switch", Monitor{Type: TypeSwitch}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.infra, tt.m.IsInfrastructure())
			assert.Equal(t, tt.business, tt.m.IsBusiness())
		})
	}
}

func TestMonitor_CloneIsDeep(t *testing.T) {
	m := &Monitor{
		ID:      "a",
		Metrics: Metrics{"uptime": {Label: "uptime", Value: "1%"}},
		History: []MonitorStatus{StatusOK},
		Events:  []Event{{Message: "x", Flow: []FlowMark{{Name: "Create", Status: FlowOK}}}},
		Agent:   &AgentAnalysis{RootCause: &RootCause{Desc: "d"}},
	}
	c := m.Clone()
	c.Metrics.SetValue("uptime", "2%")
	c.History[0] = StatusError
	c.Events[0].Flow[0].Status = FlowError
	c.Agent.RootCause.Desc = "changed"

	assert.Equal(t, "1%", m.Metrics["uptime"].Value)
	assert.Equal(t, StatusOK, m.History[0])
	assert.Equal(t, FlowOK, m.Events[0].Flow[0].Status)
	assert.Equal(t, "d", m.Agent.RootCause.Desc)
}

func TestPatches_Apply(t *testing.T) {
	r := &AlertRule{Name: "old", Threshold: 1, ChannelIDs: []string{"ch-1"}}
	name := "new"
	(&AlertRulePatch{Name: &name}).Apply(r)
	assert.Equal(t, "new", r.Name)
	assert.Equal(t, float64(1), r.Threshold)
	assert.Equal(t, []string{"ch-1"}, r.ChannelIDs)

	c := &AlertChannel{Name: "c", Enabled: true}
	off := false
	(&AlertChannelPatch{Enabled: &off, Config: map[string]string{"url": "u"}}).Apply(c)
	assert.False(t, c.Enabled)
	assert.Equal(t, "u", c.Config["url"])
	assert.Equal(t, "c", c.Name)
}

func TestOperator_Valid(t *testing.T) {
	for _, op := range []Operator{OpGT, OpLT, OpGE, OpLE, OpEQ} {
		assert.True(t, op.Valid(), op)
	}
	assert.False(t, Operator("!=").Valid())
}
