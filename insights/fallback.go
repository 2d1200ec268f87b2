package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bizscope/backend/scoring"
)

// Fallback builds a deterministic insight report purely from the category
// scores. It is used whenever the generative producer is unavailable or
// returns something that fails schema validation, so the endpoint never
// degrades below a useful baseline.
func Fallback(analysis scoring.Analysis, biz scoring.BusinessContext) Report {
	categories := []struct {
		Label string
		Score scoring.CategoryScore
	}{
		{"AI readiness", analysis.AIReadiness},
		{"answer engine optimization", analysis.AEO},
		{"SEO", analysis.SEO},
		{"security", analysis.Security},
		{"accessibility", analysis.Accessibility},
	}

	// Weakest categories first; ties broken by the fixed order above so the
	// fallback is stable across runs.
	ranked := make([]int, len(categories))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return categories[ranked[a]].Score.Score < categories[ranked[b]].Score.Score
	})

	name := biz.CompanyName
	if name == "" {
		name = "Your business"
	}

	report := Report{
		ExecutiveSummary: fmt.Sprintf(
			"%s scored an average of %d/100 across five digital-presence categories. The weakest area is %s at %d/100, which should be the first priority.",
			name, averageScore(categories), categories[ranked[0]].Label, categories[ranked[0]].Score.Score),
		IndustryInsight:   industryInsight(biz),
		LLMRecommendation: "Start with the highest-impact issue listed above; most of these changes need no redesign, only additions to the existing site.",
	}

	for _, idx := range ranked {
		cat := categories[idx]
		if cat.Score.Score >= 70 || len(cat.Score.Issues) == 0 {
			continue
		}
		report.TopIssues = append(report.TopIssues, Issue{
			Title:       fmt.Sprintf("Weak %s (%d/100)", cat.Label, cat.Score.Score),
			Impact:      impactFor(cat.Score.Score),
			Description: cat.Score.Issues[0],
		})
		if len(report.TopIssues) == 3 {
			break
		}
	}
	if len(report.TopIssues) == 0 {
		report.TopIssues = append(report.TopIssues, Issue{
			Title:       "Maintain your current standing",
			Impact:      "low",
			Description: "All categories score acceptably; focus on keeping content and integrations current.",
		})
	}

	report.QuickWins = quickWins(categories)

	return report
}

func averageScore(categories []struct {
	Label string
	Score scoring.CategoryScore
}) int {
	total := 0
	for _, c := range categories {
		total += c.Score.Score
	}
	return total / len(categories)
}

func impactFor(score int) string {
	switch {
	case score < 40:
		return "high"
	case score < 70:
		return "medium"
	default:
		return "low"
	}
}

// quickWins picks the first recommendation from each under-threshold
// category, capped at three.
func quickWins(categories []struct {
	Label string
	Score scoring.CategoryScore
}) []QuickWin {
	var wins []QuickWin
	for _, cat := range categories {
		if cat.Score.Score >= 90 || len(cat.Score.Recommendations) == 0 {
			continue
		}
		wins = append(wins, QuickWin{
			Title:        fmt.Sprintf("Improve %s", cat.Label),
			Description:  cat.Score.Recommendations[0],
			TimeEstimate: "1-4 hours",
		})
		if len(wins) == 3 {
			break
		}
	}
	if len(wins) == 0 {
		wins = append(wins, QuickWin{
			Title:        "Review quarterly",
			Description:  "Re-run this analysis quarterly to catch regressions early.",
			TimeEstimate: "30 minutes",
		})
	}
	return wins
}

func industryInsight(biz scoring.BusinessContext) string {
	var sb strings.Builder
	if biz.Industry != "" {
		fmt.Fprintf(&sb, "Customers increasingly find %s businesses through AI assistants rather than traditional search. ", biz.Industry)
	} else {
		sb.WriteString("Customers increasingly find local businesses through AI assistants rather than traditional search. ")
	}
	if biz.City != "" {
		fmt.Fprintf(&sb, "Competitors in %s that expose structured data and instant answers will be the ones assistants recommend.", biz.City)
	} else {
		sb.WriteString("Competitors that expose structured data and instant answers will be the ones assistants recommend.")
	}
	return sb.String()
}
