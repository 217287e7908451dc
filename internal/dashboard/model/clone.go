package model

// Clone returns a deep copy of the monitor.
func (m *Monitor) Clone() *Monitor {
	if m == nil {
		return nil
	}
	out := *m
	if m.Metrics != nil {
		out.Metrics = make(Metrics, len(m.Metrics))
		for k, v := range m.Metrics {
			out.Metrics[k] = v
		}
	}
	out.History = append([]MonitorStatus(nil), m.History...)
	out.Events = cloneEvents(m.Events)
	out.Agent = m.Agent.Clone()
	out.FlowSteps = append([]FlowStep(nil), m.FlowSteps...)
	if m.HistorySnapshots != nil {
		out.HistorySnapshots = make([]HistorySnapshot, len(m.HistorySnapshots))
		for i, s := range m.HistorySnapshots {
			out.HistorySnapshots[i] = HistorySnapshot{
				FlowSteps: append([]FlowStep(nil), s.FlowSteps...),
				Events:    cloneEvents(s.Events),
				Agent:     s.Agent.Clone(),
			}
		}
	}
	return &out
}

// Clone returns a deep copy of the analysis.
func (a *AgentAnalysis) Clone() *AgentAnalysis {
	if a == nil {
		return nil
	}
	out := &AgentAnalysis{Steps: append([]AnalysisStep(nil), a.Steps...)}
	if a.RootCause != nil {
		rc := *a.RootCause
		out.RootCause = &rc
	}
	return out
}

// Clone returns a deep copy of the rule.
func (r *AlertRule) Clone() *AlertRule {
	out := *r
	out.ChannelIDs = append([]string(nil), r.ChannelIDs...)
	return &out
}

// Clone returns a deep copy of the channel.
func (c *AlertChannel) Clone() *AlertChannel {
	out := *c
	out.Config = cloneStringMap(c.Config)
	return &out
}

// Clone returns a deep copy of the event.
func (e *AlertEvent) Clone() *AlertEvent {
	out := *e
	if e.ResolvedAt != nil {
		t := *e.ResolvedAt
		out.ResolvedAt = &t
	}
	return &out
}

func cloneEvents(in []Event) []Event {
	if in == nil {
		return nil
	}
	out := make([]Event, len(in))
	for i, e := range in {
		out[i] = e
		out[i].Flow = append([]FlowMark(nil), e.Flow...)
	}
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
