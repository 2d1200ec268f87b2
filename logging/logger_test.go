package logging

import (
	"testing"
	"time"
)

func newStats() *Statistics {
	return &Statistics{
		UniqueVisitors: make(map[string]time.Time),
		AnalyzedSites:  make(map[string]int),
		TopIndustries:  make(map[string]int),
	}
}

func TestTrackAnalysis(t *testing.T) {
	s := newStats()

	s.TrackAnalysis("https://smithplumbing.com/contact", "Plumbing", 120, false)
	s.TrackAnalysis("https://smithplumbing.com/", "plumbing", 80, true)

	if s.AnalysisRequests != 2 {
		t.Errorf("AnalysisRequests = %d, want 2", s.AnalysisRequests)
	}
	if s.AnalyzedSites["https://smithplumbing.com"] != 2 {
		t.Errorf("AnalyzedSites = %v, want host counted twice", s.AnalyzedSites)
	}
	if s.TopIndustries["plumbing"] != 2 {
		t.Errorf("TopIndustries = %v, want case-folded industry counted twice", s.TopIndustries)
	}
	if s.ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, want 1", s.ErrorCount)
	}
	if s.AverageLatency != 100 {
		t.Errorf("AverageLatency = %v, want 100", s.AverageLatency)
	}
	if got := s.GetErrorRate(); got != 50 {
		t.Errorf("GetErrorRate() = %v, want 50", got)
	}
}

func TestCleanSite(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://example.com/deep/path?q=1", "https://example.com"},
		{"http://localhost:8082/x", ""},
		{"http://127.0.0.1/x", ""},
		{"not a url", ""},
	}

	for _, tt := range tests {
		if got := cleanSite(tt.in); got != tt.want {
			t.Errorf("cleanSite(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetUniqueVisitorsCount_24HourWindow(t *testing.T) {
	s := newStats()
	s.TrackVisitor("1.2.3.4")
	s.UniqueVisitors["5.6.7.8"] = time.Now().Add(-48 * time.Hour)

	if got := s.GetUniqueVisitorsCount(); got != 1 {
		t.Errorf("GetUniqueVisitorsCount() = %d, want 1 (stale visitor excluded)", got)
	}
}

func TestGetStatistics_DetailGatedByDevMode(t *testing.T) {
	s := newStats()
	s.TrackAnalysis("https://example.com", "plumbing", 50, false)

	result := s.GetStatistics()
	if _, ok := result["analyzedSites"]; ok {
		t.Error("analyzedSites exposed without DEV_MODE")
	}
	if result["totalRequests"].(int) != 1 {
		t.Errorf("totalRequests = %v, want 1", result["totalRequests"])
	}

	t.Setenv(ENV_DEV_MODE, "true")
	result = s.GetStatistics()
	if _, ok := result["analyzedSites"]; !ok {
		t.Error("analyzedSites missing in DEV_MODE")
	}
	if _, ok := result["topIndustries"]; !ok {
		t.Error("topIndustries missing in DEV_MODE")
	}
}
