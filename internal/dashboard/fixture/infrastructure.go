package fixture

import "github.com/qiniu/pulseboard/internal/dashboard/model"

const (
	ok   = model.StatusOK
	er   = model.StatusError
	slow = model.StatusSlow
	on   = model.StatusOn
	off  = model.StatusOff
)

func infrastructure() []model.Monitor {
	return []model.Monitor{
		{
			ID:          "api-gateway",
			ProjectID:   "1",
			Name:        "API Gateway",
			Description: "https://api.example.com",
			Status:      ok,
			Type:        model.TypeAPI,
			Category:    model.CategoryInfrastructure,
			Metrics: metrics(
				metric("uptime", "99.9%", model.MetricGood),
				metric("latency", "45ms", ""),
			),
			History: history(ok, ok, ok, ok, ok, er, ok, ok, ok, ok),
			Events:  []model.Event{{Time: "Just now", Message: "Healthy check passed"}},
		},
		{
			ID:          "rabbitmq",
			ProjectID:   "1",
			Name:        "RabbitMQ",
			Description: "192.168.1.102:5672",
			Status:      er,
			Type:        model.TypeMQ,
			Category:    model.CategoryInfrastructure,
			Metrics: metrics(
				metric("uptime", "20%", model.MetricBad),
				metric("latency", "timeout", model.MetricBad),
			),
			History: history(ok, ok, er, er, er, er, er, er, er, er),
			Events: []model.Event{
				{Time: "Just now", Message: "Connection refused"},
				{Time: "30s ago", Message: "Connection refused"},
			},
			Agent: &model.AgentAnalysis{
				Steps: []model.AnalysisStep{
					{Title: "Analyzing Connectivity", Desc: "TCP refused. Checking Kubernetes status..."},
				},
				RootCause: &model.RootCause{
					Title:      "Root Cause",
					Desc:       "Process killed by OOM (Out of Memory). Recent usage spiked to 8GB.",
					Confidence: "95% Confidence",
				},
			},
		},
		{
			ID:          "elasticsearch",
			ProjectID:   "1",
			Name:        "ElasticSearch",
			Description: "192.168.1.103:9200",
			Status:      slow,
			Type:        model.TypeSearch,
			Category:    model.CategoryInfrastructure,
			Metrics: metrics(
				metric("uptime", "100%", model.MetricGood),
				metric("latency", "850ms", model.MetricBad),
			),
			History: history(ok, ok, slow, ok, slow, slow, ok, ok, slow, ok),
			Events:  []model.Event{{Time: "Just now", Message: "Latency high (850ms)"}},
			Agent: &model.AgentAnalysis{
				RootCause: &model.RootCause{
					Title: "Observation",
					Desc:  "Large shard relocation in progress on node es-01.",
				},
			},
		},
	}
}
