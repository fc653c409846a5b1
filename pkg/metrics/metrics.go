package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	QuotesGenerated    *prometheus.CounterVec
	QuoteTotalAmount   prometheus.Histogram
	PricingFallbacks   *prometheus.CounterVec
	LeadStatusChanges  *prometheus.CounterVec
	RemindersScheduled prometheus.Counter
	RemindersFired     prometheus.Counter
}

// New регистрирует метрики в стандартном регистре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном регистре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		QuotesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "quotes_generated_total",
			Help:        "Generated quotes by season",
			ConstLabels: constLabels,
		}, []string{"season"}),

		QuoteTotalAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "quote_total_amount_inr",
			Help:        "Grand total of generated quotes, INR",
			ConstLabels: constLabels,
			Buckets:     []float64{5000, 10000, 25000, 50000, 100000, 250000, 500000},
		}),

		PricingFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "pricing_fallbacks_total",
			Help:        "Rate lookups that fell back to zero",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		LeadStatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "lead_status_changes_total",
			Help:        "Lead status transitions by target status",
			ConstLabels: constLabels,
		}, []string{"status"}),

		RemindersScheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reminders_scheduled_total",
			Help:        "Follow-up reminders handed to the queue",
			ConstLabels: constLabels,
		}),

		RemindersFired: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reminders_fired_total",
			Help:        "Follow-up reminders that came due",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.QuotesGenerated,
		m.QuoteTotalAmount,
		m.PricingFallbacks,
		m.LeadStatusChanges,
		m.RemindersScheduled,
		m.RemindersFired,
	)

	return m
}

// Методы ниже безопасны для nil-получателя: при выключенных метриках
// сервисы получают nil и ничего не пишут.

func (m *Metrics) ObserveQuote(season string, total float64, roomFallbacks, mealFallbacks int) {
	if m == nil {
		return
	}
	m.QuotesGenerated.WithLabelValues(season).Inc()
	m.QuoteTotalAmount.Observe(total)
	if roomFallbacks > 0 {
		m.PricingFallbacks.WithLabelValues("room").Add(float64(roomFallbacks))
	}
	if mealFallbacks > 0 {
		m.PricingFallbacks.WithLabelValues("meal_plan").Add(float64(mealFallbacks))
	}
}

func (m *Metrics) ObserveStatusChange(status string) {
	if m == nil {
		return
	}
	m.LeadStatusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveReminderScheduled() {
	if m == nil {
		return
	}
	m.RemindersScheduled.Inc()
}

func (m *Metrics) ObserveReminderFired() {
	if m == nil {
		return
	}
	m.RemindersFired.Inc()
}
