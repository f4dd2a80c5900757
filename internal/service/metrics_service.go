package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP layer
// and the timetable engine, and provides lightweight snapshots for tests.
type MetricsService struct {
	registry           *prometheus.Registry
	handler            http.Handler
	requestDuration    *prometheus.HistogramVec
	requestTotal       *prometheus.CounterVec
	generationDuration prometheus.Observer
	sectionsPlaced     prometheus.Counter
	sectionShortfall   prometheus.Counter
	consolidationMoves prometheus.Counter

	requestCount         uint64
	requestDurationTotal uint64
	generationCount      uint64
	sectionsPlacedCount  uint64
	shortfallCount       uint64
}

// MetricsSnapshot aggregates counters for quick inspection.
type MetricsSnapshot struct {
	RequestsTotal            uint64
	AverageRequestDurationMs float64
	Generations              uint64
	SectionsPlaced           uint64
	SectionShortfall         uint64
	Goroutines               int
	GeneratedAt              time.Time
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	generationDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_generation_duration_seconds",
		Help:    "Duration of timetable generation runs",
		Buckets: prometheus.DefBuckets,
	})

	sectionsPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_sections_placed_total",
		Help: "Total sections placed across generation runs",
	})

	sectionShortfall := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_section_shortfall_total",
		Help: "Total requested sections that could not be placed",
	})

	consolidationMoves := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_consolidation_moves_total",
		Help: "Total sections relocated by the consolidation pass",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, generationDuration, sectionsPlaced, sectionShortfall, consolidationMoves, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:           registry,
		handler:            handler,
		requestDuration:    requestDuration,
		requestTotal:       requestTotal,
		generationDuration: generationDuration,
		sectionsPlaced:     sectionsPlaced,
		sectionShortfall:   sectionShortfall,
		consolidationMoves: consolidationMoves,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveGeneration records the outcome of one timetable generation run.
func (m *MetricsService) ObserveGeneration(duration time.Duration, placed, shortfall, moves int) {
	if m == nil {
		return
	}
	m.generationDuration.Observe(duration.Seconds())
	m.sectionsPlaced.Add(float64(placed))
	m.sectionShortfall.Add(float64(shortfall))
	m.consolidationMoves.Add(float64(moves))
	atomic.AddUint64(&m.generationCount, 1)
	atomic.AddUint64(&m.sectionsPlacedCount, uint64(placed))
	atomic.AddUint64(&m.shortfallCount, uint64(shortfall))
}

// Snapshot returns aggregated metrics.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return MetricsSnapshot{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		Generations:              atomic.LoadUint64(&m.generationCount),
		SectionsPlaced:           atomic.LoadUint64(&m.sectionsPlacedCount),
		SectionShortfall:         atomic.LoadUint64(&m.shortfallCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
