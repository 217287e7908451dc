package fixture

import "github.com/qiniu/pulseboard/internal/dashboard/model"

const (
	createEndpoint   = "order-service/api/v1/orders"
	stockEndpoint    = "inventory-service/api/v1/reserve"
	payEndpoint      = "payment-service/api/v1/charge"
	callbackEndpoint = "payment-provider.com/callback"
)

// stage is the varying part of one order flow step.
type stage struct {
	status     model.FlowState
	duration   string
	startedAt  string
	retries    int
	throughput string
	p99        string
	errMsg     string
}

func okStage(duration, startedAt string, retries int, throughput, p99 string) stage {
	return stage{status: model.FlowOK, duration: duration, startedAt: startedAt, retries: retries, throughput: throughput, p99: p99}
}

func orderSteps(create, stock, pay, callback stage) []model.FlowStep {
	build := func(name, endpoint, threshold string, s stage) model.FlowStep {
		return model.FlowStep{
			Name:         name,
			Status:       s.status,
			Duration:     s.duration,
			Endpoint:     endpoint,
			Threshold:    threshold,
			StartedAt:    s.startedAt,
			Retries:      s.retries,
			Throughput:   s.throughput,
			P99:          s.p99,
			ErrorMessage: s.errMsg,
		}
	}
	return []model.FlowStep{
		build("Create", createEndpoint, "500ms", create),
		build("Stock", stockEndpoint, "1s", stock),
		build("Pay", payEndpoint, "3s", pay),
		build("Callback", callbackEndpoint, "5s", callback),
	}
}

func orderEvent(time, id, msg string, callbackOK bool) model.Event {
	cb := model.FlowOK
	if !callbackOK {
		cb = model.FlowError
	}
	return model.Event{
		Time:    time,
		ID:      id,
		Message: msg,
		Flow: []model.FlowMark{
			{Name: "Create", Status: model.FlowOK},
			{Name: "Stock", Status: model.FlowOK},
			{Name: "Pay", Status: model.FlowOK},
			{Name: "Callback", Status: cb},
		},
	}
}

func rootCause(desc, confidence string) *model.AgentAnalysis {
	return &model.AgentAnalysis{RootCause: &model.RootCause{Title: "Root Cause", Desc: desc, Confidence: confidence}}
}

func orderSnapshots() []model.HistorySnapshot {
	return []model.HistorySnapshot{
		{
			FlowSteps: orderSteps(
				okStage("95ms", "14:01:00", 0, "310 req/min", "180ms"),
				okStage("380ms", "14:01:00", 0, "290 req/min", "620ms"),
				okStage("0.9s", "14:01:01", 0, "210 req/min", "1.8s"),
				okStage("1.2s", "14:01:02", 0, "150 req/min", "3.5s"),
			),
			Events: []model.Event{
				orderEvent("14:01", "ORD-980", "Order completed", true),
				orderEvent("14:00", "ORD-979", "Order completed", true),
			},
		},
		{
			FlowSteps: orderSteps(
				okStage("110ms", "14:04:10", 0, "315 req/min", "200ms"),
				okStage("420ms", "14:04:10", 0, "275 req/min", "650ms"),
				okStage("1.0s", "14:04:11", 0, "205 req/min", "1.9s"),
				okStage("1.5s", "14:04:12", 0, "140 req/min", "3.8s"),
			),
			Events: []model.Event{
				orderEvent("14:04", "ORD-983", "Order completed", true),
				orderEvent("14:03", "ORD-982", "Order completed", true),
			},
		},
		{
			FlowSteps: orderSteps(
				okStage("100ms", "14:07:20", 0, "320 req/min", "190ms"),
				okStage("400ms", "14:07:20", 0, "280 req/min", "640ms"),
				okStage("1.1s", "14:07:21", 0, "200 req/min", "2.0s"),
				okStage("1.3s", "14:07:23", 0, "145 req/min", "3.6s"),
			),
			Events: []model.Event{orderEvent("14:07", "ORD-985", "Order completed", true)},
		},
		{
			FlowSteps: orderSteps(
				okStage("130ms", "14:10:30", 0, "300 req/min", "220ms"),
				okStage("480ms", "14:10:30", 0, "260 req/min", "700ms"),
				okStage("1.3s", "14:10:31", 1, "190 req/min", "2.2s"),
				stage{model.FlowError, "12s", "14:10:33", 3, "110 req/min", "16s", "Connection timeout after 12s"},
			),
			Events: []model.Event{
				orderEvent("14:11", "ORD-988", "Payment callback timeout", false),
				orderEvent("14:10", "ORD-987", "Order completed", true),
			},
			Agent: rootCause("Payment provider gateway returned 504 after 12s.", "90% Confidence"),
		},
		{
			FlowSteps: orderSteps(
				okStage("105ms", "14:13:40", 0, "325 req/min", "195ms"),
				okStage("410ms", "14:13:40", 0, "285 req/min", "660ms"),
				okStage("1.0s", "14:13:41", 0, "205 req/min", "1.9s"),
				okStage("2.0s", "14:13:42", 0, "130 req/min", "4.2s"),
			),
			Events: []model.Event{orderEvent("14:14", "ORD-990", "Order completed", true)},
		},
		{
			FlowSteps: orderSteps(
				okStage("125ms", "14:16:50", 0, "305 req/min", "215ms"),
				okStage("460ms", "14:16:50", 0, "265 req/min", "690ms"),
				okStage("1.4s", "14:16:51", 2, "185 req/min", "2.4s"),
				stage{model.FlowError, "18s", "14:16:53", 3, "100 req/min", "20s", "Connection refused by remote host"},
			),
			Events: []model.Event{
				orderEvent("14:17", "ORD-992", "Payment callback refused", false),
				orderEvent("14:16", "ORD-991", "Payment callback refused", false),
			},
			Agent: rootCause("Remote host payment-provider.com actively refusing connections. Possible provider-side outage.", "92% Confidence"),
		},
		{
			FlowSteps: orderSteps(
				okStage("98ms", "14:19:00", 0, "330 req/min", "185ms"),
				okStage("390ms", "14:19:00", 0, "290 req/min", "630ms"),
				okStage("0.8s", "14:19:01", 0, "215 req/min", "1.7s"),
				okStage("1.1s", "14:19:02", 0, "155 req/min", "3.2s"),
			),
			Events: []model.Event{orderEvent("14:19", "ORD-993", "Order completed", true)},
		},
		{
			FlowSteps: orderSteps(
				okStage("102ms", "14:20:10", 0, "318 req/min", "192ms"),
				okStage("430ms", "14:20:10", 0, "278 req/min", "660ms"),
				okStage("1.1s", "14:20:11", 0, "202 req/min", "2.0s"),
				okStage("1.4s", "14:20:13", 0, "142 req/min", "3.7s"),
			),
			Events: []model.Event{orderEvent("14:20", "ORD-994", "Order completed", true)},
		},
		{
			FlowSteps: orderSteps(
				okStage("108ms", "14:21:20", 0, "322 req/min", "198ms"),
				okStage("440ms", "14:21:20", 0, "282 req/min", "670ms"),
				okStage("1.0s", "14:21:21", 0, "208 req/min", "1.9s"),
				okStage("1.6s", "14:21:22", 0, "138 req/min", "3.9s"),
			),
			Events: []model.Event{orderEvent("14:21", "ORD-998", "Order completed", true)},
		},
		{
			FlowSteps: currentOrderSteps(),
			Events: []model.Event{
				orderEvent("14:23", "ORD-999", "Payment callback timeout", false),
				orderEvent("14:22", "ORD-998", "Order completed", true),
			},
			Agent: rootCause("External Payment Provider latency (12.5s).", "88% Confidence"),
		},
	}
}

func currentOrderSteps() []model.FlowStep {
	return orderSteps(
		okStage("120ms", "14:22:58", 0, "320 req/min", "210ms"),
		okStage("450ms", "14:22:58", 0, "280 req/min", "680ms"),
		okStage("1.2s", "14:22:59", 1, "200 req/min", "2.1s"),
		stage{model.FlowError, "15s", "14:23:01", 3, "120 req/min", "18s", "Connection timeout after 15s"},
	)
}

func business() []model.Monitor {
	return []model.Monitor{
		{
			ID:          "order-flow",
			ProjectID:   "1",
			Name:        "Order Flow",
			Description: "Create → Stock → Pay → Callback",
			Status:      er,
			Type:        model.TypeOrder,
			Category:    model.CategoryBusiness,
			Metrics: metrics(
				metric("successRate", "87%", model.MetricBad),
				metric("avgDuration", "1.8s", ""),
			),
			History:          history(ok, ok, ok, er, ok, er, ok, ok, ok, er),
			HistorySnapshots: orderSnapshots(),
			FlowSteps:        currentOrderSteps(),
			Events: []model.Event{
				orderEvent("14:23", "ORD-999", "Payment callback timeout", false),
				orderEvent("14:21", "ORD-998", "Order completed", true),
				orderEvent("14:19", "ORD-997", "Payment callback timeout", false),
				orderEvent("14:15", "ORD-996", "Order completed", true),
				orderEvent("14:12", "ORD-995", "Payment callback timeout", false),
			},
			Agent: &model.AgentAnalysis{
				RootCause: &model.RootCause{Title: "Root Cause", Desc: "External Payment Provider latency (12.5s)."},
			},
		},
	}
}
