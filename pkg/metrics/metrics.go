// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	MessagesSent  prometheus.Counter
	OpenStreams   prometheus.Gauge
	BrokerDropped prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "talentpro",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "talentpro",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		MessagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "talentpro",
			Name:      "messages_sent_total",
			Help:      "Messages persisted through the conversation thread.",
		}),
		OpenStreams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "talentpro",
			Name:      "conversation_streams_open",
			Help:      "Live conversation subscriptions.",
		}),
		BrokerDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "talentpro",
			Name:      "broker_subscribers_dropped_total",
			Help:      "Subscriptions closed because their buffer was full.",
		}),
	}
	reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.MessagesSent, m.OpenStreams, m.BrokerDropped)
	return m
}

func (m *Metrics) MessageSent()       { m.MessagesSent.Inc() }
func (m *Metrics) StreamOpened()      { m.OpenStreams.Inc() }
func (m *Metrics) StreamClosed()      { m.OpenStreams.Dec() }
func (m *Metrics) SubscriberDropped() { m.BrokerDropped.Inc() }
