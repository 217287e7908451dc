package layout

import (
	"testing"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		typ  model.MonitorType
		want Card
	}{
		{model.TypeAPI, defaultCard()},
		{"unknown", defaultCard()},
		{model.TypeECS, Card{
			MetricsLayout: MetricsInline, SparklineVariant: SparklineBar,
			Widgets: []Widget{WidgetProgressBar}, ProgressMetrics: []string{"runningCount", "desiredCount"},
			DetailTabs: []string{"events", "agent", "config"}, ShowDetailLink: true,
		}},
		{model.TypeCrawler, Card{MetricsLayout: MetricsGrid, SparklineVariant: SparklineBar, DetailTabs: []string{"events", "agent", "config"}, ShowDetailLink: true}},
		{model.TypeChatbot, Card{MetricsLayout: MetricsGrid, SparklineVariant: SparklineBar, DetailTabs: []string{"events", "agent", "config"}, ShowDetailLink: true}},
		{model.TypeSwitch, Card{MetricsLayout: MetricsInline, SparklineVariant: SparklineToggleTimeline, DetailTabs: []string{"events", "config"}}},
		{model.TypeOrder, Card{MetricsLayout: MetricsInline, SparklineVariant: SparklineBar, DetailTabs: []string{"events", "agent", "config", "flow"}, ShowDetailLink: true}},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.typ))
		})
	}
}

func TestResolve_ReturnsFreshSlices(t *testing.T) {
	a := Resolve(model.TypeOrder)
	a.DetailTabs[0] = "changed"
	assert.Equal(t, "events", Resolve(model.TypeOrder).DetailTabs[0])
}
