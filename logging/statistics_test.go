package logging

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestCleanURL(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"https://Cilium.io/", "https://cilium.io"},
		{"https://cilium.io/docs/?q=1#top", "https://cilium.io/docs"},
		{"http://localhost:8082/api/analyze", ""},
		{"http://127.0.0.1/x", ""},
		{"https://example.com/api/v1", ""},
		{"not a url", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, cleanURL(tt.in), tt.in)
	}
}

func TestStatisticsSnapshot(t *testing.T) {
	stats := NewStatistics(true)

	stats.TrackVisitor("10.0.0.1")
	stats.TrackVisitor("10.0.0.2")
	stats.TrackVisitor("10.0.0.1")

	stats.TrackAnalysis("https://cilium.io/", 100*time.Millisecond, false)
	stats.TrackAnalysis("https://cilium.io", 300*time.Millisecond, true)
	stats.TrackAnalysis("https://example.com", 200*time.Millisecond, false)

	snap := stats.Snapshot()
	assert.Equal(t, 2, snap.UniqueVisitors24h)
	assert.Equal(t, 3, snap.TotalRequests)
	assert.InDelta(t, 33.33, snap.ErrorRate, 0.01)
	assert.InDelta(t, 200.0, snap.AverageLoadTime, 0.001)
	assert.Equal(t, map[string]int{"https://cilium.io": 2, "https://example.com": 1}, snap.PopularURLs)
}

func TestStatisticsHidePopularURLsOutsideDevMode(t *testing.T) {
	stats := NewStatistics(false)
	stats.TrackAnalysis("https://cilium.io", time.Millisecond, false)

	assert.Nil(t, stats.Snapshot().PopularURLs)
}

func TestStatisticsVisitorWindow(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	stats := NewStatistics(false)
	stats.now = func() time.Time { return now }

	stats.TrackVisitor("10.0.0.1")
	now = now.Add(25 * time.Hour)
	stats.TrackVisitor("10.0.0.2")

	assert.Equal(t, 1, stats.Snapshot().UniqueVisitors24h)
	assert.Len(t, stats.uniqueVisitors, 1)
}

func TestStatisticsTopURLsCapped(t *testing.T) {
	stats := NewStatistics(true)
	for i := 0; i < 8; i++ {
		for j := 0; j <= i; j++ {
			stats.TrackAnalysis(fmt.Sprintf("https://site%d.example", i), time.Millisecond, false)
		}
	}

	top := stats.Snapshot().PopularURLs
	require.Len(t, top, 5)
	assert.Equal(t, 8, top["https://site7.example"])
	assert.NotContains(t, top, "https://site0.example")
}

func TestStatisticsConcurrentAccess(t *testing.T) {
	stats := NewStatistics(true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				stats.TrackVisitor(fmt.Sprintf("10.0.0.%d", i))
				stats.TrackAnalysis("https://cilium.io", time.Millisecond, j%2 == 0)
				stats.Snapshot()
			}
		}(i)
	}
	wg.Wait()

	snap := stats.Snapshot()
	assert.Equal(t, 1000, snap.TotalRequests)
	assert.Equal(t, 10, snap.UniqueVisitors24h)
	assert.InDelta(t, 50.0, snap.ErrorRate, 0.001)
}

func TestNewLoggerLevels(t *testing.T) {
	logger, err := NewLogger("debug", "console")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger("warn", "json")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = NewLogger("loud", "json")
	assert.Error(t, err)

	_, err = NewLogger("info", "xml")
	assert.Error(t, err)
}
