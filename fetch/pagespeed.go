package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Strategy selects the device profile for a performance-lab run.
type Strategy string

const (
	StrategyMobile  Strategy = "mobile"
	StrategyDesktop Strategy = "desktop"
)

// PerformanceReport is one lab run for a single strategy. Score and the
// category sub-scores are in [0,1]; the whole report is nil when the lab
// request failed.
type PerformanceReport struct {
	Strategy           Strategy          `json:"strategy"`
	Score              *float64          `json:"score"`
	AccessibilityScore *float64          `json:"accessibilityScore"`
	SEOScore           *float64          `json:"seoScore"`
	Audits             map[string]string `json:"audits"`
}

// PerformanceClient fetches lab data for a URL and strategy. Implementations
// return nil (not an error shell) when the source is unavailable.
type PerformanceClient interface {
	Run(ctx context.Context, targetURL string, strategy Strategy) *PerformanceReport
}

// auditNames are the timing audits surfaced to the report layer.
var auditNames = []string{
	"first-contentful-paint",
	"largest-contentful-paint",
	"speed-index",
	"total-blocking-time",
	"cumulative-layout-shift",
	"interactive",
}

// PageSpeedClient talks to a PageSpeed Insights compatible endpoint.
type PageSpeedClient struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

// NewPageSpeedClient returns a client for the given endpoint. The API key is
// optional; without one Google applies a much lower quota.
func NewPageSpeedClient(endpoint, apiKey string, timeout time.Duration) *PageSpeedClient {
	return &PageSpeedClient{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

// psiResponse mirrors the slice of the PSI payload we consume.
type psiResponse struct {
	LighthouseResult struct {
		Categories struct {
			Performance   psiCategory `json:"performance"`
			Accessibility psiCategory `json:"accessibility"`
			SEO           psiCategory `json:"seo"`
		} `json:"categories"`
		Audits map[string]struct {
			DisplayValue string `json:"displayValue"`
		} `json:"audits"`
	} `json:"lighthouseResult"`
}

type psiCategory struct {
	Score *float64 `json:"score"`
}

// Run requests one lab analysis. Any failure (transport, non-2xx, bad JSON)
// degrades to nil so a single dead source never fails the whole analysis.
func (c *PageSpeedClient) Run(ctx context.Context, targetURL string, strategy Strategy) *PerformanceReport {
	q := url.Values{}
	q.Set("url", targetURL)
	q.Set("strategy", string(strategy))
	q.Set("category", "performance")
	q.Add("category", "accessibility")
	q.Add("category", "seo")
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", c.endpoint, q.Encode()), nil)
	if err != nil {
		return nil
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil
	}

	var payload psiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil
	}

	report := &PerformanceReport{
		Strategy:           strategy,
		Score:              payload.LighthouseResult.Categories.Performance.Score,
		AccessibilityScore: payload.LighthouseResult.Categories.Accessibility.Score,
		SEOScore:           payload.LighthouseResult.Categories.SEO.Score,
		Audits:             make(map[string]string, len(auditNames)),
	}
	for _, name := range auditNames {
		if audit, ok := payload.LighthouseResult.Audits[name]; ok && audit.DisplayValue != "" {
			report.Audits[name] = audit.DisplayValue
		}
	}

	return report
}
