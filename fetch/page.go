package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	botUserAgent = "BizScopeBot/1.0 (+https://bizscope.dev/bot)"

	// Cap page reads at 10 MB so a pathological response cannot exhaust memory.
	maxPageBody = 10 << 20
)

// RawPageData is the raw material for signal extraction: page HTML, response
// headers, and whether the page was served over HTTPS. FetchErr is non-empty
// when the fetch failed; all derived signals are then considered absent.
type RawPageData struct {
	HTML              string      `json:"-"`
	Headers           http.Header `json:"-"`
	IsSecureTransport bool        `json:"isSecureTransport"`
	FetchErr          string      `json:"fetchError,omitempty"`
}

// Failed reports whether the page fetch degraded to an error marker.
func (r RawPageData) Failed() bool {
	return r.FetchErr != ""
}

// PageFetcher retrieves the raw page for a URL.
type PageFetcher interface {
	Fetch(ctx context.Context, targetURL string) RawPageData
}

// PageClient implements PageFetcher with a real HTTP client and a declared
// crawler user-agent.
type PageClient struct {
	client *http.Client
}

// NewPageClient returns a PageClient with the given per-request timeout.
func NewPageClient(timeout time.Duration) *PageClient {
	return &PageClient{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Fetch performs a single GET. Transport errors and non-2xx statuses resolve
// to an error-marked RawPageData, never to a Go error: the pipeline degrades
// instead of failing.
func (c *PageClient) Fetch(ctx context.Context, targetURL string) RawPageData {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return RawPageData{FetchErr: err.Error()}
	}
	req.Header.Set("User-Agent", botUserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.client.Do(req)
	if err != nil {
		return RawPageData{FetchErr: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return RawPageData{
			Headers:  resp.Header,
			FetchErr: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBody))
	if err != nil {
		return RawPageData{Headers: resp.Header, FetchErr: err.Error()}
	}

	finalURL := targetURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return RawPageData{
		HTML:              string(body),
		Headers:           resp.Header,
		IsSecureTransport: strings.HasPrefix(finalURL, "https://"),
	}
}
