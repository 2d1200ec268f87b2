package scoring

import (
	"fmt"

	"github.com/bizscope/backend/fetch"
)

// NotAvailable is the sentinel shown for any metric the lab did not report.
const NotAvailable = "N/A"

// metricLabels maps lab audit ids to the names shown in reports, in display
// order.
var metricLabels = []struct {
	Audit string
	Label string
}{
	{"first-contentful-paint", "First Contentful Paint"},
	{"largest-contentful-paint", "Largest Contentful Paint"},
	{"speed-index", "Speed Index"},
	{"total-blocking-time", "Total Blocking Time"},
	{"cumulative-layout-shift", "Cumulative Layout Shift"},
	{"interactive", "Time to Interactive"},
}

// StrategyMetrics is the display-formatted lab output for one strategy.
type StrategyMetrics struct {
	Score   string            `json:"score"`
	Metrics map[string]string `json:"metrics"`
}

// PerformanceMetrics carries both strategies' display metrics. This category
// is not scored; it is a pass-through for presentation.
type PerformanceMetrics struct {
	Mobile  StrategyMetrics `json:"mobile"`
	Desktop StrategyMetrics `json:"desktop"`
}

// ExtractPerformanceMetrics formats lab reports for display, substituting
// the N/A sentinel wherever data is absent.
func ExtractPerformanceMetrics(mobile, desktop *fetch.PerformanceReport) PerformanceMetrics {
	return PerformanceMetrics{
		Mobile:  strategyMetrics(mobile),
		Desktop: strategyMetrics(desktop),
	}
}

func strategyMetrics(report *fetch.PerformanceReport) StrategyMetrics {
	sm := StrategyMetrics{
		Score:   NotAvailable,
		Metrics: make(map[string]string, len(metricLabels)),
	}

	for _, m := range metricLabels {
		sm.Metrics[m.Label] = NotAvailable
	}

	if report == nil {
		return sm
	}

	if report.Score != nil {
		sm.Score = fmt.Sprintf("%.0f", *report.Score*100)
	}
	for _, m := range metricLabels {
		if v, ok := report.Audits[m.Audit]; ok && v != "" {
			sm.Metrics[m.Label] = v
		}
	}

	return sm
}
