package logging

import (
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"
)

// visitorWindow is how far back unique visitors are counted
const visitorWindow = 24 * time.Hour

// Statistics are in-memory service counters. They reset on restart.
type Statistics struct {
	mutex sync.RWMutex

	uniqueVisitors   map[string]time.Time // IP -> last visit
	analysisRequests int
	errorCount       int
	popularURLs      map[string]int
	totalLoadTime    float64
	devMode          bool
	now              func() time.Time
}

// NewStatistics creates empty statistics. Popular URLs are only reported in dev mode.
func NewStatistics(devMode bool) *Statistics {
	return &Statistics{
		uniqueVisitors: make(map[string]time.Time),
		popularURLs:    make(map[string]int),
		devMode:        devMode,
		now:            time.Now,
	}
}

// TrackVisitor records a visit from ip
func (s *Statistics) TrackVisitor(ip string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.uniqueVisitors[ip] = s.now()
	s.pruneVisitors()
}

// pruneVisitors drops visitors outside the window. Callers hold the write lock.
func (s *Statistics) pruneVisitors() {
	cutoff := s.now().Add(-visitorWindow)
	for ip, last := range s.uniqueVisitors {
		if last.Before(cutoff) {
			delete(s.uniqueVisitors, ip)
		}
	}
}

// cleanURL reduces a URL to scheme, host and path. Local and API URLs return "".
func cleanURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return ""
	}

	if strings.Contains(u.Host, "localhost") ||
		strings.Contains(u.Host, "127.0.0.1") ||
		strings.Contains(strings.ToLower(u.Path), "/api/") {
		return ""
	}

	cleaned := strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host)
	if u.Path != "" && u.Path != "/" {
		cleaned += u.Path
	}
	return strings.TrimSuffix(cleaned, "/")
}

// TrackAnalysis records one analysis of target
func (s *Statistics) TrackAnalysis(target string, loadTime time.Duration, failed bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.analysisRequests++
	if cleaned := cleanURL(target); cleaned != "" {
		s.popularURLs[cleaned]++
	}
	if failed {
		s.errorCount++
	}
	s.totalLoadTime += float64(loadTime.Milliseconds())
}

// Snapshot is a point-in-time copy of the statistics
type Snapshot struct {
	UniqueVisitors24h int            `json:"uniqueVisitors24h"`
	TotalRequests     int            `json:"totalRequests"`
	ErrorRate         float64        `json:"errorRate"`
	AverageLoadTime   float64        `json:"averageLoadTime"`
	PopularURLs       map[string]int `json:"popularUrls,omitempty"`
}

// Snapshot returns a copy of the current statistics
func (s *Statistics) Snapshot() Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	snap := Snapshot{
		UniqueVisitors24h: s.uniqueVisitorsLocked(),
		TotalRequests:     s.analysisRequests,
	}
	if s.analysisRequests > 0 {
		snap.ErrorRate = float64(s.errorCount) / float64(s.analysisRequests) * 100
		snap.AverageLoadTime = s.totalLoadTime / float64(s.analysisRequests)
	}
	if s.devMode {
		snap.PopularURLs = s.topURLsLocked(5)
	}
	return snap
}

func (s *Statistics) uniqueVisitorsLocked() int {
	cutoff := s.now().Add(-visitorWindow)
	count := 0
	for _, last := range s.uniqueVisitors {
		if last.After(cutoff) {
			count++
		}
	}
	return count
}

// topURLsLocked returns the n most analyzed URLs, ties broken alphabetically
func (s *Statistics) topURLsLocked(n int) map[string]int {
	urls := make([]string, 0, len(s.popularURLs))
	for u := range s.popularURLs {
		urls = append(urls, u)
	}
	sort.Slice(urls, func(i, j int) bool {
		if s.popularURLs[urls[i]] != s.popularURLs[urls[j]] {
			return s.popularURLs[urls[i]] > s.popularURLs[urls[j]]
		}
		return urls[i] < urls[j]
	})
	if len(urls) > n {
		urls = urls[:n]
	}

	result := make(map[string]int, len(urls))
	for _, u := range urls {
		result[u] = s.popularURLs[u]
	}
	return result
}
