// Package metrics holds the Prometheus collectors of the service.
//
// Collectors live on a Recorder bound to its own registry so tests can build
// isolated instances; the process uses one Recorder created in main.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values of push_deliveries_total.
const (
	PushDelivered = "delivered"
	PushGone      = "gone"
	PushTransient = "transient"
	PushDisabled  = "disabled"
)

// Label values of email_tasks_total.
const (
	EmailSent     = "sent"
	EmailNotFound = "not_found"
	EmailFailed   = "failed"
)

// Label values of order_side_effects_total.
const (
	EffectDriverNotification = "driver_notification"
	EffectStatusEmail        = "status_email"
)

type Recorder struct {
	registry *prometheus.Registry

	PushDeliveries   *prometheus.CounterVec
	PushDuration     prometheus.Histogram
	EmailTasks       *prometheus.CounterVec
	OrderSideEffects *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
}

// New creates a Recorder on a fresh registry. withRuntime adds the Go and
// process collectors.
func New(withRuntime bool) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		PushDeliveries: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "push_deliveries_total", Help: "Push delivery attempts by outcome."},
			[]string{"outcome"},
		),
		PushDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "push_delivery_duration_seconds",
				Help:    "Duration of a single push delivery attempt.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
		),
		EmailTasks: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "email_tasks_total", Help: "Delivery status email tasks by result."},
			[]string{"result"},
		),
		OrderSideEffects: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "order_side_effects_total", Help: "Side effects triggered by order saves."},
			[]string{"effect"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}

	r.registry.MustRegister(
		r.PushDeliveries,
		r.PushDuration,
		r.EmailTasks,
		r.OrderSideEffects,
		r.HTTPRequests,
		r.HTTPDuration,
	)
	if withRuntime {
		r.registry.MustRegister(collectors.NewGoCollector())
		r.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	return r
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// The methods below are nil-safe so components can run without metrics.

func (r *Recorder) ObservePush(outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.PushDeliveries.WithLabelValues(outcome).Inc()
	if outcome != PushDisabled {
		r.PushDuration.Observe(elapsed.Seconds())
	}
}

func (r *Recorder) EmailTask(result string) {
	if r == nil {
		return
	}
	r.EmailTasks.WithLabelValues(result).Inc()
}

func (r *Recorder) SideEffect(effect string) {
	if r == nil {
		return
	}
	r.OrderSideEffects.WithLabelValues(effect).Inc()
}

func (r *Recorder) ObserveHTTP(method, path, status string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.HTTPRequests.WithLabelValues(method, path, status).Inc()
	r.HTTPDuration.WithLabelValues(method, path, status).Observe(elapsed.Seconds())
}
