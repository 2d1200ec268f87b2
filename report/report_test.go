package report

import (
	"strings"
	"testing"

	"github.com/bizscope/backend/insights"
	"github.com/bizscope/backend/scoring"
)

func sampleData() Data {
	return Data{
		CompanyName:   "Smith Plumbing",
		Industry:      "plumbing",
		City:          "Austin",
		URL:           "https://smithplumbing.com",
		SecurityGrade: "B",
		Analysis: scoring.Analysis{
			AIReadiness:   scoring.CategoryScore{Score: 30},
			AEO:           scoring.CategoryScore{Score: 55},
			SEO:           scoring.CategoryScore{Score: 85},
			Security:      scoring.CategoryScore{Score: 72},
			Accessibility: scoring.CategoryScore{Score: 64},
			Performance: scoring.PerformanceMetrics{
				Mobile:  scoring.StrategyMetrics{Score: "61", Metrics: map[string]string{"Speed Index": "3.2 s"}},
				Desktop: scoring.StrategyMetrics{Score: "N/A", Metrics: map[string]string{"Speed Index": "N/A"}},
			},
		},
		Insights: insights.Report{
			ExecutiveSummary:  "Good base, weak AI presence.",
			TopIssues:         []insights.Issue{{Title: "No chatbot", Impact: "high", Description: "Add one."}},
			QuickWins:         []insights.QuickWin{{Title: "FAQ schema", Description: "Wrap the FAQ.", TimeEstimate: "1-2 hours"}},
			IndustryInsight:   "Assistants now route plumbing emergencies.",
			LLMRecommendation: "Install a chat widget.",
		},
	}
}

func TestRender(t *testing.T) {
	html, err := Render(sampleData())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"Website Scorecard: Smith Plumbing",
		"AI Readiness: 30/100",
		"Security: 72/100 (grade B)",
		"Speed Index: 3.2 s",
		"Good base, weak AI presence.",
		"No chatbot",
		"1-2 hours",
		"Install a chat widget.",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered report missing %q", want)
		}
	}
}

func TestRender_EscapesUserInput(t *testing.T) {
	data := sampleData()
	data.CompanyName = `<script>alert("x")</script>`

	html, err := Render(data)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if strings.Contains(html, "<script>alert") {
		t.Error("company name was not HTML-escaped")
	}
}

func TestScoreClass(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "good"}, {70, "good"}, {69, "fair"}, {40, "fair"}, {39, "poor"}, {0, "poor"},
	}

	for _, tt := range tests {
		if got := scoreClass(tt.score); got != tt.want {
			t.Errorf("scoreClass(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
