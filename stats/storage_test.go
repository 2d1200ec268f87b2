package stats

import (
	"testing"
	"time"
)

func TestIncrementAndGetCurrentStats(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	defer s.Shutdown()

	s.IncrementStats(1, 0, 0, 0)
	s.IncrementStats(0, 2, 1, 3)

	current := s.GetCurrentStats()
	if current.CacheHits != 1 {
		t.Errorf("CacheHits = %d, want 1", current.CacheHits)
	}
	if current.CacheMisses != 2 {
		t.Errorf("CacheMisses = %d, want 2", current.CacheMisses)
	}
	if current.InsightFallbacks != 1 {
		t.Errorf("InsightFallbacks = %d, want 1", current.InsightFallbacks)
	}
	if current.LabFetchFailures != 3 {
		t.Errorf("LabFetchFailures = %d, want 3", current.LabFetchFailures)
	}
	if current.LastUpdated.IsZero() {
		t.Error("LastUpdated not set")
	}
}

func TestStatsSurviveRestart(t *testing.T) {
	dir := t.TempDir()

	s, err := NewStorage(dir)
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	s.IncrementStats(5, 7, 0, 0)
	if err := s.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	reloaded, err := NewStorage(dir)
	if err != nil {
		t.Fatalf("NewStorage after restart: %v", err)
	}
	defer reloaded.Shutdown()

	current := reloaded.GetCurrentStats()
	if current.CacheHits != 5 || current.CacheMisses != 7 {
		t.Errorf("reloaded stats = %d hits / %d misses, want 5/7", current.CacheHits, current.CacheMisses)
	}
}

func TestCleanupKeepsTwoMonths(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	defer s.Shutdown()

	now := time.Now()
	current := now.Format("2006-01")
	previous := now.AddDate(0, -1, 0).Format("2006-01")
	ancient := now.AddDate(0, -6, 0).Format("2006-01")

	s.mutex.Lock()
	s.stats[current] = &MonthlyStats{CacheHits: 1}
	s.stats[previous] = &MonthlyStats{CacheHits: 2}
	s.stats[ancient] = &MonthlyStats{CacheHits: 3}
	s.mutex.Unlock()

	s.Cleanup()

	if _, ok := s.GetMonthlyStats(ancient); ok {
		t.Errorf("stats for %s survived cleanup", ancient)
	}
	if _, ok := s.GetMonthlyStats(previous); !ok {
		t.Errorf("stats for previous month %s were dropped", previous)
	}
	if _, ok := s.GetMonthlyStats(current); !ok {
		t.Errorf("stats for current month %s were dropped", current)
	}
}

func TestGetAllMonthsNewestFirst(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	defer s.Shutdown()

	s.mutex.Lock()
	s.stats["2026-06"] = &MonthlyStats{}
	s.stats["2026-08"] = &MonthlyStats{}
	s.stats["2026-07"] = &MonthlyStats{}
	s.mutex.Unlock()

	months := s.GetAllMonths()
	want := []string{"2026-08", "2026-07", "2026-06"}
	if len(months) != len(want) {
		t.Fatalf("months = %v", months)
	}
	for i := range want {
		if months[i] != want[i] {
			t.Errorf("months[%d] = %s, want %s", i, months[i], want[i])
		}
	}
}
