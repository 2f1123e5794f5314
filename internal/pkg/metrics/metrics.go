package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gradchat"

var (
	// HTTPRequestsTotal counts handled HTTP requests by method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Number of handled HTTP requests.",
	}, []string{"method", "status"})

	// EventBroadcastsTotal counts full event-set broadcasts to live subscribers.
	EventBroadcastsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_broadcasts_total",
		Help:      "Number of event snapshot broadcasts.",
	})

	// CompletionFallbacksTotal counts chatbot replies served with the
	// fallback text because the completion call failed.
	CompletionFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "completion_fallbacks_total",
		Help:      "Number of chatbot requests answered with the fallback reply.",
	})

	// LiveSubscribers tracks currently connected event subscribers.
	LiveSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "live_subscribers",
		Help:      "Currently connected websocket subscribers.",
	})
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
