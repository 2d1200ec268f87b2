package analyzer

import (
	"github.com/bizscope/backend/insights"
	"github.com/bizscope/backend/scoring"
)

// Request is one analysis request. All four fields are required.
type Request struct {
	URL         string `json:"url" binding:"required"`
	CompanyName string `json:"companyName" binding:"required"`
	Industry    string `json:"industry" binding:"required"`
	City        string `json:"city" binding:"required"`
}

// CategoryAnalyses groups the per-category detail in the response.
type CategoryAnalyses struct {
	AIReadiness   scoring.CategoryScore `json:"aiReadiness"`
	AEO           scoring.CategoryScore `json:"aeo"`
	SEO           scoring.CategoryScore `json:"seo"`
	Security      scoring.CategoryScore `json:"security"`
	Accessibility scoring.CategoryScore `json:"accessibility"`
}

// Response is the full analysis payload returned to the caller.
type Response struct {
	Success            bool                       `json:"success"`
	URL                string                     `json:"url"`
	Scores             scoring.ScoreSummary       `json:"scores"`
	SecurityGrade      string                     `json:"securityGrade"`
	Analyses           CategoryAnalyses           `json:"analyses"`
	PerformanceMetrics scoring.PerformanceMetrics `json:"performanceMetrics"`
	AIInsights         insights.Report            `json:"aiInsights"`
	HTML               string                     `json:"html"`
}
