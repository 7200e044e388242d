package observability

import (
	"time"

	"github.com/moneymap/moneymap-go/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the tracker.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	billEvaluations *prometheus.CounterVec
	billRollovers   prometheus.Counter
	paymentsTotal   prometheus.Counter
	distributions   prometheus.Counter
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "moneymap_request_duration_seconds",
				Help:    "Duration of requests by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		billEvaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneymap_bill_evaluations_total",
				Help: "Total bill status evaluations by resulting state.",
			},
			[]string{"state"},
		),
		billRollovers: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "moneymap_bill_rollovers_total",
				Help: "Total billing-period rollovers applied.",
			},
		),
		paymentsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "moneymap_payments_total",
				Help: "Total bill payments recorded.",
			},
		),
		distributions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "moneymap_savings_distributions_total",
				Help: "Total savings distribution runs.",
			},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneymap_cache_hits_total",
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneymap_cache_misses_total",
				Help: "Total cache misses.",
			},
			[]string{"cache"},
		),
	}
}

// RecordRequestDuration records the duration of an operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrBillEvaluation increments the evaluation counter for a state.
func (m *Metrics) IncrBillEvaluation(state string) {
	m.billEvaluations.WithLabelValues(state).Inc()
}

// IncrRollover increments the period-rollover counter.
func (m *Metrics) IncrRollover() {
	m.billRollovers.Inc()
}

// IncrPayment increments the payment counter.
func (m *Metrics) IncrPayment() {
	m.paymentsTotal.Inc()
}

// IncrDistribution increments the savings distribution counter.
func (m *Metrics) IncrDistribution() {
	m.distributions.Inc()
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// GetTrackerSnapshot returns a snapshot of the tracker counters suitable
// for the GET /v1/metrics/tracker endpoint.
func (m *Metrics) GetTrackerSnapshot() *domain.TrackerMetrics {
	evaluations := getCounterValue(m.billEvaluations, string(domain.StatePaid)) +
		getCounterValue(m.billEvaluations, string(domain.StateOverdue)) +
		getCounterValue(m.billEvaluations, string(domain.StateUpcoming))
	cacheHits := getCounterValue(m.cacheHits, "payday_schedule")
	cacheMisses := getCounterValue(m.cacheMisses, "payday_schedule")

	hitRate := float64(0)
	if cacheHits+cacheMisses > 0 {
		hitRate = cacheHits / (cacheHits + cacheMisses)
	}

	return &domain.TrackerMetrics{
		BillEvaluations: int64(evaluations),
		Rollovers:       int64(getPlainCounterValue(m.billRollovers)),
		Payments:        int64(getPlainCounterValue(m.paymentsTotal)),
		Distributions:   int64(getPlainCounterValue(m.distributions)),
		CacheHitRate:    hitRate,
		Period:          "all_time",
	}
}

// getCounterValue extracts the current float64 value from a CounterVec for a given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}

func getPlainCounterValue(c prometheus.Counter) float64 {
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}
