package monitoring

import (
	"database/sql"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/guitarkeep/hub/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	nuts "github.com/vaudience/go-nuts"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

// Service owns the metric registry of the process
type Service struct {
	config   config.MonitoringConfig
	registry *prometheus.Registry

	queryTotal   *prometheus.CounterVec
	queryLatency *prometheus.HistogramVec
	tipTotal     *prometheus.CounterVec
	cacheTotal   *prometheus.CounterVec
	eventTotal   *prometheus.CounterVec
}

// NewService creates a new monitoring service with its own registry
func NewService(cfg config.MonitoringConfig) *Service {
	ns := cfg.Namespace
	s := &Service{
		config:   cfg,
		registry: prometheus.NewRegistry(),
		queryTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "queries_total",
				Help:      "Total query operations by operation and result",
			},
			[]string{"operation", "result"},
		),
		queryLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: ns,
				Name:      "query_latency_seconds",
				Help:      "Query operation latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		tipTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "tips_total",
				Help:      "Classifications computed by data type and outcome; responses served from the cache are not counted",
			},
			[]string{"data_type", "outcome"},
		),
		cacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "cache_lookups_total",
				Help:      "Response cache lookups by result",
			},
			[]string{"result"},
		),
		eventTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "events_total",
				Help:      "Lifecycle events by name",
			},
			[]string{"event"},
		),
	}

	s.registry.MustRegister(
		s.queryTotal,
		s.queryLatency,
		s.tipTotal,
		s.cacheTotal,
		s.eventTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: ns}),
		collectors.NewBuildInfoCollector(),
	)
	return s
}

// Registry exposes the underlying registry
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}

// Handler serves the registry in the exposition format
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// RegisterDB adds connection pool gauges for db
func (s *Service) RegisterDB(db *sql.DB, name string) {
	if db == nil {
		return
	}
	if err := s.registry.Register(collectors.NewDBStatsCollector(db, name)); err != nil {
		nuts.L.Warnf("[Monitoring] Failed to register db stats collector: %v", err)
	}
}

// ObserveQuery records one query operation
func (s *Service) ObserveQuery(operation string, started time.Time, err error) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	s.queryTotal.WithLabelValues(operation, result).Inc()
	s.queryLatency.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// RecordTip counts one classification outcome
func (s *Service) RecordTip(dataType, outcome string) {
	s.tipTotal.WithLabelValues(dataType, outcome).Inc()
}

func (s *Service) CacheHit()   { s.cacheTotal.WithLabelValues("hit").Inc() }
func (s *Service) CacheMiss()  { s.cacheTotal.WithLabelValues("miss").Inc() }
func (s *Service) CacheError() { s.cacheTotal.WithLabelValues("error").Inc() }

// RecordEvent records a monitored event with labels
func (s *Service) RecordEvent(eventName string, labels map[string]string) {
	s.eventTotal.WithLabelValues(eventName).Inc()
	nuts.L.Debugf("[Monitoring] Event %s recorded at %v with labels: %s", eventName, time.Now(), formatLabels(labels))
}

func formatLabels(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+labels[k])
	}
	return strings.Join(parts, ",")
}
