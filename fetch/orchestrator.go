package fetch

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Result bundles everything one analysis round fetched. Mobile or Desktop is
// nil when that lab run failed; Page carries its own error marker.
type Result struct {
	Mobile  *PerformanceReport
	Desktop *PerformanceReport
	Page    RawPageData
}

// Orchestrator issues the three data-source requests for one analysis:
// lab runs for mobile and desktop, and the raw page fetch. The three are
// independent; a failure in one never blocks or fails the others.
type Orchestrator struct {
	perf    PerformanceClient
	pages   PageFetcher
	timeout time.Duration
}

// NewOrchestrator wires an Orchestrator from its two collaborators.
// timeout bounds each individual fetch, not the round as a whole.
func NewOrchestrator(perf PerformanceClient, pages PageFetcher, timeout time.Duration) *Orchestrator {
	return &Orchestrator{perf: perf, pages: pages, timeout: timeout}
}

// NormalizeURL defaults the scheme to https:// when none is given.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "https://" + raw
	}
	return raw
}

// Run launches the three fetches concurrently and returns once all settle.
// Each source is attempted exactly once; timeouts degrade like any other
// fetch failure.
func (o *Orchestrator) Run(ctx context.Context, rawURL string) Result {
	targetURL := NormalizeURL(rawURL)

	var result Result
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, o.timeout)
		defer cancel()
		result.Mobile = o.perf.Run(fetchCtx, targetURL, StrategyMobile)
	}()

	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, o.timeout)
		defer cancel()
		result.Desktop = o.perf.Run(fetchCtx, targetURL, StrategyDesktop)
	}()

	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, o.timeout)
		defer cancel()
		result.Page = o.pages.Fetch(fetchCtx, targetURL)
	}()

	wg.Wait()
	return result
}
