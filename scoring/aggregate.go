package scoring

import (
	"github.com/bizscope/backend/fetch"
	"github.com/bizscope/backend/signals"
)

// Analysis is the full output of one scoring run: every category's detail
// plus the flat summary handed to the report and insight layers.
type Analysis struct {
	AIReadiness   CategoryScore      `json:"aiReadiness"`
	AEO           CategoryScore      `json:"aeo"`
	SEO           CategoryScore      `json:"seo"`
	Security      CategoryScore      `json:"security"`
	SecurityGrade string             `json:"securityGrade"`
	Accessibility CategoryScore      `json:"accessibility"`
	Performance   PerformanceMetrics `json:"performance"`
	Summary       ScoreSummary       `json:"summary"`
}

// Run evaluates every category against one signal set and the lab reports.
// Categories are independent; evaluation order never affects the summary.
func Run(sig signals.SignalSet, mobile, desktop *fetch.PerformanceReport, biz BusinessContext) Analysis {
	a := Analysis{
		AIReadiness:   ScoreAIReadiness(sig, biz),
		AEO:           ScoreAEO(sig, biz),
		SEO:           ScoreSEO(sig, mobile, biz),
		Security:      ScoreSecurity(sig),
		Accessibility: ScoreAccessibility(sig, mobile),
		Performance:   ExtractPerformanceMetrics(mobile, desktop),
	}
	a.SecurityGrade = SecurityGrade(a.Security.Score)
	a.Summary = ScoreSummary{
		CategoryAIReadiness:   a.AIReadiness.Score,
		CategoryAEO:           a.AEO.Score,
		CategorySEO:           a.SEO.Score,
		CategorySecurity:      a.Security.Score,
		CategoryAccessibility: a.Accessibility.Score,
	}
	return a
}
