// Package metrics exposes the Prometheus counters of the dental-site
// server. Collectors are registered on the Registerer passed to New, so
// tests can use a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dental_site"

// Metrics implements site.Observer and the booking and HTTP recorders.
type Metrics struct {
	gatherer prometheus.Gatherer

	configResolutions *prometheus.CounterVec
	overrideRejected  prometheus.Counter
	unknownTenants    prometheus.Counter
	unknownIcons      prometheus.Counter
	bookings          *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// New registers the collectors on reg. gatherer backs Handler; pass the
// same registry, or nil to use prometheus.DefaultGatherer.
func New(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: gatherer,
		configResolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_resolutions_total",
			Help:      "Clinic configuration resolutions by the source that produced them",
		}, []string{"source"}),
		overrideRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_override_rejected_total",
			Help:      "Clinic configuration overrides that could not be parsed",
		}),
		unknownTenants: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_unknown_tenant_total",
			Help:      "Lookups of tenant ids missing from the registry",
		}),
		unknownIcons: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_icon_total",
			Help:      "Icon names replaced by the default icon",
		}),
		bookings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking submissions by outcome",
		}, []string{"outcome"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// ConfigResolved implements site.Observer.
func (m *Metrics) ConfigResolved(kind string) {
	m.configResolutions.WithLabelValues(orUnknown(kind)).Inc()
}

// OverrideRejected implements site.Observer.
func (m *Metrics) OverrideRejected() {
	m.overrideRejected.Inc()
}

// UnknownTenant implements site.Observer.
func (m *Metrics) UnknownTenant() {
	m.unknownTenants.Inc()
}

// UnknownIcon implements site.Observer.
func (m *Metrics) UnknownIcon() {
	m.unknownIcons.Inc()
}

// BookingOutcome counts a booking submission result.
func (m *Metrics) BookingOutcome(outcome string) {
	m.bookings.WithLabelValues(orUnknown(outcome)).Inc()
}

// ObserveHTTPRequest records one served request. route is the matched
// route pattern, never the raw path.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	route = orUnknown(route)
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func orUnknown(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
