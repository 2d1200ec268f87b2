package analyzer

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bizscope/backend/fetch"
	"github.com/bizscope/backend/insights"
	"github.com/bizscope/backend/report"
	"github.com/bizscope/backend/scoring"
	"github.com/bizscope/backend/signals"
	"github.com/bizscope/backend/stats"
)

// Cache entry with expiration
type cacheEntry struct {
	response  *Response
	timestamp time.Time
}

// CacheStats provides statistics about the analyzer's result cache.
type CacheStats struct {
	Entries     int           `json:"entries"`
	CacheHits   int           `json:"cacheHits"`
	CacheMisses int           `json:"cacheMisses"`
	CacheTTL    time.Duration `json:"cacheTTL"`
}

// Analyzer runs the full pipeline for one request: fetch round, signal
// extraction, category scoring, insight generation, and report rendering.
// The engine itself is stateless per request; the analyzer only adds an
// in-memory TTL cache over finished responses and usage counters.
type Analyzer struct {
	orchestrator    *fetch.Orchestrator
	producer        *insights.Producer
	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	lastCleanup     time.Time
	cleanupInterval time.Duration
	stats           *stats.Storage
}

// New creates an Analyzer with its collaborators injected.
func New(orchestrator *fetch.Orchestrator, producer *insights.Producer, statsStorage *stats.Storage) *Analyzer {
	analyzer := &Analyzer{
		orchestrator:    orchestrator,
		producer:        producer,
		cache:           make(map[string]cacheEntry),
		cacheTTL:        30 * time.Minute,
		maxCacheSize:    1000,
		cleanupInterval: 5 * time.Minute,
		lastCleanup:     time.Now(),
		stats:           statsStorage,
	}

	go analyzer.periodicCleanup()

	return analyzer
}

// periodicCleanup removes expired cache entries periodically
func (a *Analyzer) periodicCleanup() {
	ticker := time.NewTicker(a.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		a.cleanup()
	}
}

// cleanup removes expired entries and enforces the cache size limit
func (a *Analyzer) cleanup() {
	now := time.Now()

	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()

	for key, entry := range a.cache {
		if now.Sub(entry.timestamp) > a.cacheTTL {
			delete(a.cache, key)
		}
	}

	// If still over size limit, remove oldest entries
	if len(a.cache) > a.maxCacheSize {
		entries := make([]struct {
			key       string
			timestamp time.Time
		}, 0, len(a.cache))

		for key, entry := range a.cache {
			entries = append(entries, struct {
				key       string
				timestamp time.Time
			}{key, entry.timestamp})
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].timestamp.Before(entries[j].timestamp)
		})

		for i := 0; i < len(entries)-a.maxCacheSize; i++ {
			delete(a.cache, entries[i].key)
		}
	}

	a.lastCleanup = now
}

// SetCacheTTL sets the cache TTL
func (a *Analyzer) SetCacheTTL(ttl time.Duration) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cacheTTL = ttl
}

// ClearCache clears the result cache
func (a *Analyzer) ClearCache() {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cache = make(map[string]cacheEntry)
}

// generateCacheKey creates a unique key for one request's inputs
func generateCacheKey(req Request) string {
	hash := md5.Sum([]byte(req.URL + "|" + req.CompanyName + "|" + req.Industry + "|" + req.City))
	return hex.EncodeToString(hash[:])
}

// GetCacheStats returns statistics about the cache
func (a *Analyzer) GetCacheStats() CacheStats {
	currentStats := a.stats.GetCurrentStats()

	a.cacheMutex.RLock()
	entries := len(a.cache)
	ttl := a.cacheTTL
	a.cacheMutex.RUnlock()

	return CacheStats{
		Entries:     entries,
		CacheHits:   currentStats.CacheHits,
		CacheMisses: currentStats.CacheMisses,
		CacheTTL:    ttl,
	}
}

// IsCached checks if a request is in the cache and not expired
func (a *Analyzer) IsCached(req Request) bool {
	cacheKey := generateCacheKey(req)
	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	entry, found := a.cache[cacheKey]
	return found && time.Since(entry.timestamp) < a.cacheTTL
}

// Analyze runs the full pipeline for one request, serving from cache when a
// fresh result exists.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Response, error) {
	if time.Since(a.lastCleanup) > a.cleanupInterval {
		go a.cleanup()
	}

	cacheKey := generateCacheKey(req)
	a.cacheMutex.RLock()
	if entry, found := a.cache[cacheKey]; found {
		if time.Since(entry.timestamp) < a.cacheTTL {
			a.stats.IncrementStats(1, 0, 0, 0)
			a.cacheMutex.RUnlock()
			return entry.response, nil
		}
	}
	a.cacheMutex.RUnlock()

	a.stats.IncrementStats(0, 1, 0, 0)

	response, err := a.analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	a.cacheMutex.Lock()
	a.cache[cacheKey] = cacheEntry{
		response:  response,
		timestamp: time.Now(),
	}
	a.cacheMutex.Unlock()

	return response, nil
}

// analyze is one uncached pipeline run.
func (a *Analyzer) analyze(ctx context.Context, req Request) (*Response, error) {
	result := a.orchestrator.Run(ctx, req.URL)

	labFailures := 0
	if result.Mobile == nil {
		labFailures++
	}
	if result.Desktop == nil {
		labFailures++
	}
	if labFailures > 0 {
		a.stats.IncrementStats(0, 0, 0, labFailures)
	}

	sig := signals.Extract(result.Page)

	biz := scoring.BusinessContext{
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		City:        req.City,
	}
	analysis := scoring.Run(sig, result.Mobile, result.Desktop, biz)

	aiInsights := a.producer.Generate(analysis, sig, biz)
	if !aiInsights.Generated {
		a.stats.IncrementStats(0, 0, 1, 0)
	}

	html, err := report.Render(report.Data{
		CompanyName:   req.CompanyName,
		Industry:      req.Industry,
		City:          req.City,
		URL:           fetch.NormalizeURL(req.URL),
		Analysis:      analysis,
		Insights:      aiInsights,
		SecurityGrade: analysis.SecurityGrade,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return &Response{
		Success:       true,
		URL:           fetch.NormalizeURL(req.URL),
		Scores:        analysis.Summary,
		SecurityGrade: analysis.SecurityGrade,
		Analyses: CategoryAnalyses{
			AIReadiness:   analysis.AIReadiness,
			AEO:           analysis.AEO,
			SEO:           analysis.SEO,
			Security:      analysis.Security,
			Accessibility: analysis.Accessibility,
		},
		PerformanceMetrics: analysis.Performance,
		AIInsights:         aiInsights,
		HTML:               html,
	}, nil
}

// GetStats returns the statistics storage instance
func (a *Analyzer) GetStats() *stats.Storage {
	return a.stats
}

// Shutdown persists outstanding statistics and drops the cache.
func (a *Analyzer) Shutdown() error {
	if a == nil {
		return nil
	}

	if a.stats != nil {
		if err := a.stats.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown stats storage: %w", err)
		}
	}

	a.cacheMutex.Lock()
	a.cache = nil
	a.cacheMutex.Unlock()

	return nil
}
