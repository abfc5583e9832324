package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	rateFetchTotal          *prometheus.CounterVec
	rateFetchDuration       prometheus.Histogram
	ratesStaleServed        *prometheus.CounterVec
	ratesAge                *prometheus.GaugeVec
	circuitBreakerState     *prometheus.GaugeVec
	thresholdsTriggered     *prometheus.CounterVec
	alertNotifications      *prometheus.CounterVec
	budgetEvaluationLatency prometheus.Histogram
	transactionsRecorded    *prometheus.CounterVec
	recordsBackfilled       prometheus.Gauge
	analyticsRequests       *prometheus.CounterVec
	analyticsDuration       prometheus.Histogram
	analyticsViews          *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors with the default registry.
// It must be called once per process.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		rateFetchTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rate_fetch_total",
				Help: "Total number of exchange rate fetch attempts",
			},
			[]string{"status"},
		),
		rateFetchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "exchange_rate_fetch_duration_milliseconds",
				Help:    "Exchange rate fetch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		ratesStaleServed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rates_stale_served_total",
				Help: "Total number of times an expired rate table was served after a failed refresh",
			},
			[]string{"base"},
		),
		ratesAge: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "exchange_rates_age_seconds",
				Help: "Age of the rate table served after a failed refresh",
			},
			[]string{"base"},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		thresholdsTriggered: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_thresholds_triggered_total",
				Help: "Total number of budget thresholds that fired",
			},
			[]string{"threshold"},
		),
		alertNotifications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_alert_notifications_total",
				Help: "Total number of budget alert notifications by outcome",
			},
			[]string{"status"},
		),
		budgetEvaluationLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_evaluation_duration_milliseconds",
				Help:    "Budget evaluation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of monetary records stored",
			},
			[]string{"kind", "converted"},
		),
		recordsBackfilled: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "records_backfilled_last_run",
				Help: "Records whose base amount was filled in by the last backfill run",
			},
		),
		analyticsRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_requests_total",
				Help: "Total number of analytics requests",
			},
			[]string{"operation", "status"},
		),
		analyticsDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_request_duration_seconds",
				Help:    "Analytics request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		analyticsViews: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_views_served_total",
				Help: "Analytics responses served over HTTP by view and dimension",
			},
			[]string{"view", "dimension"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "currency.rates.fetch":
		if status != "" {
			m.rateFetchTotal.WithLabelValues(status).Inc()
		}
	case "currency.rates.stale_served":
		m.ratesStaleServed.WithLabelValues(tags["base"]).Inc()
	case "budget.threshold.triggered":
		m.thresholdsTriggered.WithLabelValues(tags["threshold"]).Inc()
	case "budget.alert.notification":
		if status != "" {
			m.alertNotifications.WithLabelValues(status).Inc()
		}
	case "transaction.recorded":
		m.transactionsRecorded.WithLabelValues(tags["kind"], tags["converted"]).Inc()
	case "analytics.request":
		m.analyticsRequests.WithLabelValues(tags["operation"], status).Inc()
	case "analytics.trend":
		m.analyticsViews.WithLabelValues("trend", tags["granularity"]).Inc()
	case "analytics.summary":
		m.analyticsViews.WithLabelValues("summary", "month").Inc()
	case "analytics.categories":
		m.analyticsViews.WithLabelValues("categories", tags["kind"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "currency.rates.fetch":
		m.rateFetchDuration.Observe(float64(duration.Milliseconds()))
	case "budget.evaluation":
		m.budgetEvaluationLatency.Observe(float64(duration.Milliseconds()))
	case "analytics.request":
		m.analyticsDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "currency.rates.age_seconds":
		m.ratesAge.WithLabelValues(tags["base"]).Set(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "records.backfilled":
		m.recordsBackfilled.Set(value)
	}
}
