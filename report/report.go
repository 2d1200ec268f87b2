// Package report renders the owner-facing HTML summary. It is a thin
// presentation layer over the score model; all logic lives in the scorers.
package report

import (
	"html/template"
	"strings"

	"github.com/bizscope/backend/insights"
	"github.com/bizscope/backend/scoring"
)

// Data is everything the template consumes.
type Data struct {
	CompanyName   string
	Industry      string
	City          string
	URL           string
	Analysis      scoring.Analysis
	Insights      insights.Report
	SecurityGrade string
}

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"scoreClass": scoreClass,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Website Scorecard - {{.CompanyName}}</title>
</head>
<body>
<h1>Website Scorecard: {{.CompanyName}}</h1>
<p>{{.URL}}{{if .City}} &middot; {{.City}}{{end}}{{if .Industry}} &middot; {{.Industry}}{{end}}</p>

<h2>Scores</h2>
<ul>
<li class="{{scoreClass .Analysis.AIReadiness.Score}}">AI Readiness: {{.Analysis.AIReadiness.Score}}/100</li>
<li class="{{scoreClass .Analysis.AEO.Score}}">Answer Engine Optimization: {{.Analysis.AEO.Score}}/100</li>
<li class="{{scoreClass .Analysis.SEO.Score}}">SEO: {{.Analysis.SEO.Score}}/100</li>
<li class="{{scoreClass .Analysis.Security.Score}}">Security: {{.Analysis.Security.Score}}/100 (grade {{.SecurityGrade}})</li>
<li class="{{scoreClass .Analysis.Accessibility.Score}}">Accessibility: {{.Analysis.Accessibility.Score}}/100</li>
</ul>

<h2>Performance</h2>
<h3>Mobile (score {{.Analysis.Performance.Mobile.Score}})</h3>
<ul>{{range $name, $value := .Analysis.Performance.Mobile.Metrics}}<li>{{$name}}: {{$value}}</li>{{end}}</ul>
<h3>Desktop (score {{.Analysis.Performance.Desktop.Score}})</h3>
<ul>{{range $name, $value := .Analysis.Performance.Desktop.Metrics}}<li>{{$name}}: {{$value}}</li>{{end}}</ul>

<h2>Summary</h2>
<p>{{.Insights.ExecutiveSummary}}</p>

<h2>Top Issues</h2>
<ul>
{{range .Insights.TopIssues}}<li><strong>{{.Title}}</strong> ({{.Impact}} impact) - {{.Description}}</li>
{{end}}</ul>

<h2>Quick Wins</h2>
<ul>
{{range .Insights.QuickWins}}<li><strong>{{.Title}}</strong> ({{.TimeEstimate}}) - {{.Description}}</li>
{{end}}</ul>

<h2>Industry Insight</h2>
<p>{{.Insights.IndustryInsight}}</p>
<p><em>{{.Insights.LLMRecommendation}}</em></p>
</body>
</html>
`))

// Render produces the HTML report. Template execution over our own value
// types cannot realistically fail at runtime, but any error is still
// surfaced rather than swallowed.
func Render(data Data) (string, error) {
	var sb strings.Builder
	if err := reportTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func scoreClass(score int) string {
	switch {
	case score >= 70:
		return "good"
	case score >= 40:
		return "fair"
	default:
		return "poor"
	}
}
