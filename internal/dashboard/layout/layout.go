// Package layout resolves how a monitor card of a given type is rendered.
package layout

import "github.com/qiniu/pulseboard/internal/dashboard/model"

type MetricsLayout string

const (
	MetricsInline MetricsLayout = "inline"
	MetricsGrid   MetricsLayout = "grid"
	MetricsHero   MetricsLayout = "hero"
)

type SparklineVariant string

const (
	SparklineBar            SparklineVariant = "bar"
	SparklineToggleTimeline SparklineVariant = "toggle-timeline"
)

type Widget string

const (
	WidgetSwitchIndicator Widget = "switch-indicator"
	WidgetProgressBar     Widget = "progress-bar"
)

// Card is the rendering configuration of a monitor card and its detail page.
// ProgressMetrics names the current and desired metric keys of a progress bar.
type Card struct {
	MetricsLayout    MetricsLayout    `json:"metricsLayout"`
	HeroMetric       string           `json:"heroMetric,omitempty"`
	SparklineVariant SparklineVariant `json:"sparklineVariant"`
	Widgets          []Widget         `json:"widgets,omitempty"`
	ProgressMetrics  []string         `json:"progressMetrics,omitempty"`
	DetailTabs       []string         `json:"detailTabs"`
	ShowDetailLink   bool             `json:"showDetailLink"`
}

func defaultCard() Card {
	return Card{
		MetricsLayout:    MetricsInline,
		SparklineVariant: SparklineBar,
		DetailTabs:       []string{"events", "agent", "config"},
		ShowDetailLink:   true,
	}
}

// Resolve returns the card layout for a monitor type. Unknown types get the default.
func Resolve(t model.MonitorType) Card {
	c := defaultCard()
	switch t {
	case model.TypeECS:
		c.Widgets = []Widget{WidgetProgressBar}
		c.ProgressMetrics = []string{"runningCount", "desiredCount"}
	case model.TypeCrawler, model.TypeChatbot:
		c.MetricsLayout = MetricsGrid
	case model.TypeSwitch:
		c.SparklineVariant = SparklineToggleTimeline
		c.DetailTabs = []string{"events", "config"}
		c.ShowDetailLink = false
	case model.TypeOrder:
		c.DetailTabs = append(c.DetailTabs, "flow")
	}
	return c
}
