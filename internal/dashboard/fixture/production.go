package fixture

import "github.com/qiniu/pulseboard/internal/dashboard/model"

// production monitors cover the card types the e-commerce demo project does not use.
func production() []model.Monitor {
	return []model.Monitor{
		{
			ID:          "mysql-primary",
			ProjectID:   "2",
			Name:        "MySQL Primary",
			Description: "10.0.2.11:3306",
			Status:      ok,
			Type:        model.TypeDB,
			Category:    model.CategoryInfrastructure,
			Metrics: metrics(
				metric("uptime", "99.99%", model.MetricGood),
				metric("latency", "12ms", ""),
			),
			History: history(ok, ok, ok, ok, ok, ok, slow, ok, ok, ok),
			Events:  []model.Event{{Time: "2m ago", Message: "Replication lag back to 0s"}},
		},
		{
			ID:          "redis-cache",
			ProjectID:   "2",
			Name:        "Redis Cache",
			Description: "10.0.2.21:6379",
			Status:      ok,
			Type:        model.TypeCache,
			Category:    model.CategoryInfrastructure,
			Metrics: metrics(
				metric("uptime", "100%", model.MetricGood),
				metric("latency", "2ms", ""),
			),
			History: history(ok, ok, ok, ok, ok, ok, ok, ok, ok, ok),
		},
		{
			ID:          "payment-ecs",
			ProjectID:   "2",
			Name:        "Payment ECS Cluster",
			Description: "ecs://payment-prod",
			Status:      slow,
			Type:        model.TypeECS,
			Category:    model.CategoryService,
			Metrics: metrics(
				metric("runningCount", "4", ""),
				metric("desiredCount", "6", ""),
				metric("errorRate", "1.2%", ""),
			),
			History: history(ok, ok, ok, ok, slow, slow, ok, ok, slow, slow),
			Events:  []model.Event{{Time: "1m ago", Message: "2 tasks pending placement"}},
			Agent: &model.AgentAnalysis{
				RootCause: &model.RootCause{
					Title:      "Observation",
					Desc:       "Cluster capacity exhausted. Auto-scaling group is adding 1 instance.",
					Confidence: "80% Confidence",
				},
			},
		},
		{
			ID:          "catalog-crawler",
			ProjectID:   "3",
			Name:        "Catalog Crawler",
			Description: "https://shop.example.com/catalog",
			Status:      ok,
			Type:        model.TypeCrawler,
			Category:    model.CategoryService,
			Metrics: metrics(
				metric("pageLoadTime", "2.4s", ""),
				metric("throughput", "240 req/min", ""),
				metric("errorRate", "0.8%", model.MetricGood),
			),
			History: history(ok, ok, slow, ok, ok, ok, ok, ok, ok, ok),
		},
		{
			ID:          "maintenance-switch",
			ProjectID:   "3",
			Name:        "Maintenance Mode",
			Description: "Login page maintenance banner",
			Status:      off,
			Type:        model.TypeSwitch,
			Category:    model.CategorySwitch,
			Metrics: metrics(
				metric("throughput", "0 req/min", ""),
			),
			History: history(off, off, on, on, off, off, off, off, off, off),
			Events:  []model.Event{{Time: "1h ago", Message: "Switched off by ops"}},
		},
		{
			ID:          "support-chatbot",
			ProjectID:   "3",
			Name:        "Support Chatbot",
			Description: "https://help.example.com/bot",
			Status:      ok,
			Type:        model.TypeChatbot,
			Category:    model.CategoryService,
			Metrics: metrics(
				metric("responseTime", "1.6s", ""),
				metric("activeSessions", "142", ""),
				metric("errorRate", "2.1%", ""),
			),
			History: history(ok, ok, ok, slow, ok, ok, ok, ok, ok, ok),
		},
	}
}
