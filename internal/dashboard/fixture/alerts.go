package fixture

import (
	"time"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
)

func alertRules() []model.AlertRule {
	rule := func(id, name, monitorID, monitorName, key string, op model.Operator, threshold float64, unit string,
		sev model.Severity, status model.RuleStatus, channels []string, created, updated string) model.AlertRule {
		return model.AlertRule{
			ID:          id,
			Name:        name,
			MonitorID:   monitorID,
			MonitorName: monitorName,
			MetricKey:   key,
			Operator:    op,
			Threshold:   threshold,
			Unit:        unit,
			Severity:    sev,
			Status:      status,
			ChannelIDs:  channels,
			CreatedAt:   mustTime(created),
			UpdatedAt:   mustTime(updated),
		}
	}
	return []model.AlertRule{
		rule("rule-1", "API Gateway High Latency", "api-gateway", "API Gateway", "latency", model.OpGT, 200, "ms",
			model.SeverityWarning, model.RuleEnabled, []string{"ch-1"}, "2026-02-25T10:00:00Z", "2026-02-25T10:00:00Z"),
		rule("rule-2", "RabbitMQ Down", "rabbitmq", "RabbitMQ", "uptime", model.OpLT, 50, "%",
			model.SeverityCritical, model.RuleEnabled, []string{"ch-1", "ch-2"}, "2026-02-24T08:30:00Z", "2026-02-26T14:00:00Z"),
		rule("rule-3", "Order Flow Success Rate Low", "order-flow", "Order Flow", "successRate", model.OpLT, 95, "%",
			model.SeverityCritical, model.RuleEnabled, []string{"ch-1"}, "2026-02-23T12:00:00Z", "2026-02-23T12:00:00Z"),
		rule("rule-4", "ElasticSearch Slow Query", "elasticsearch", "ElasticSearch", "latency", model.OpGT, 500, "ms",
			model.SeverityInfo, model.RuleDisabled, []string{"ch-2"}, "2026-02-22T09:00:00Z", "2026-02-22T09:00:00Z"),
	}
}

func alertChannels() []model.AlertChannel {
	return []model.AlertChannel{
		{
			ID:        "ch-1",
			Name:      "Ops Feishu Group",
			Type:      model.ChannelFeishu,
			Config:    map[string]string{"webhookUrl": "https://open.feishu.cn/open-apis/bot/v2/hook/xxx"},
			Enabled:   true,
			CreatedAt: mustTime("2026-02-20T08:00:00Z"),
		},
		{
			ID:        "ch-2",
			Name:      "PagerDuty Webhook",
			Type:      model.ChannelWebhook,
			Config:    map[string]string{"url": "https://events.pagerduty.com/v2/enqueue", "secret": "pd-secret-xxx"},
			Enabled:   true,
			CreatedAt: mustTime("2026-02-21T10:00:00Z"),
		},
	}
}

func alertEvents() []model.AlertEvent {
	resolved := func(s string) *time.Time {
		t := mustTime(s)
		return &t
	}
	return []model.AlertEvent{
		{
			ID: "evt-1", RuleID: "rule-2", RuleName: "RabbitMQ Down",
			MonitorID: "rabbitmq", MonitorName: "RabbitMQ",
			Severity: model.SeverityCritical, Status: model.EventFiring,
			Message: "RabbitMQ uptime dropped to 20%, below threshold 50%",
			Value:   20, Threshold: 50,
			FiredAt: mustTime("2026-02-27T14:10:00Z"),
		},
		{
			ID: "evt-2", RuleID: "rule-3", RuleName: "Order Flow Success Rate Low",
			MonitorID: "order-flow", MonitorName: "Order Flow",
			Severity: model.SeverityCritical, Status: model.EventFiring,
			Message: "Order success rate at 87%, below threshold 95%",
			Value:   87, Threshold: 95,
			FiredAt: mustTime("2026-02-27T14:05:00Z"),
		},
		{
			ID: "evt-3", RuleID: "rule-1", RuleName: "API Gateway High Latency",
			MonitorID: "api-gateway", MonitorName: "API Gateway",
			Severity: model.SeverityWarning, Status: model.EventResolved,
			Message: "API Gateway latency spiked to 320ms, above threshold 200ms",
			Value:   320, Threshold: 200,
			FiredAt:    mustTime("2026-02-27T12:30:00Z"),
			ResolvedAt: resolved("2026-02-27T12:45:00Z"),
		},
		{
			ID: "evt-4", RuleID: "rule-4", RuleName: "ElasticSearch Slow Query",
			MonitorID: "elasticsearch", MonitorName: "ElasticSearch",
			Severity: model.SeverityInfo, Status: model.EventResolved,
			Message: "ElasticSearch latency reached 850ms, above threshold 500ms",
			Value:   850, Threshold: 500,
			FiredAt:    mustTime("2026-02-27T11:00:00Z"),
			ResolvedAt: resolved("2026-02-27T11:20:00Z"),
		},
	}
}
