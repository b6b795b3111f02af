// Package metrics keeps in-memory counters for the analysis pipeline.
package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	RequestsServed   int64
	UpstreamErrors   int64
	ArticlesAnalyzed int64
	ArticlesSkipped  int64
	ScorerFallbacks  int64

	// Timings
	LastProcessingTime    time.Duration
	AverageProcessingTime time.Duration
	TotalProcessingTime   time.Duration
	ProcessingCount       int64

	// Status
	LastRequestTime time.Time
	LastErrorTime   time.Time
	LastError       string
	IsHealthy       bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementRequestsServed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestsServed++
	m.LastRequestTime = time.Now()
}

func (m *Metrics) IncrementUpstreamErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpstreamErrors++
}

func (m *Metrics) IncrementArticlesAnalyzed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesAnalyzed++
}

func (m *Metrics) IncrementArticlesSkipped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesSkipped++
}

func (m *Metrics) IncrementScorerFallbacks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScorerFallbacks++
}

func (m *Metrics) RecordProcessingTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastProcessingTime = duration
	m.TotalProcessingTime += duration
	m.ProcessingCount++

	if m.ProcessingCount > 0 {
		m.AverageProcessingTime = m.TotalProcessingTime / time.Duration(m.ProcessingCount)
	}
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"requests_served":            m.RequestsServed,
		"upstream_errors":            m.UpstreamErrors,
		"articles_analyzed":          m.ArticlesAnalyzed,
		"articles_skipped":           m.ArticlesSkipped,
		"scorer_fallbacks":           m.ScorerFallbacks,
		"last_processing_time_ms":    m.LastProcessingTime.Milliseconds(),
		"average_processing_time_ms": m.AverageProcessingTime.Milliseconds(),
		"last_request_time":          m.LastRequestTime.Format(time.RFC3339),
		"last_error_time":            m.LastErrorTime.Format(time.RFC3339),
		"last_error":                 m.LastError,
		"is_healthy":                 m.IsHealthy,
	}
}
