package observability

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	backendRequests = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "paseos_web",
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "Latency of calls to the backend REST API by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	paymentOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paseos_web",
		Subsystem: "payment",
		Name:      "poller_outcomes_total",
		Help:      "Terminal states reached by the payment confirmation poller.",
	}, []string{"state"})

	walkTicks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paseos_web",
		Subsystem: "tracking",
		Name:      "ticks_total",
		Help:      "Walk tracker refreshes by result.",
	}, []string{"result"})

	activeTrackers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "paseos_web",
		Subsystem: "tracking",
		Name:      "active_trackers",
		Help:      "Walk trackers currently polling.",
	})
)

func init() {
	prometheus.MustRegister(backendRequests, paymentOutcomes, walkTicks, activeTrackers)
}

// ObserveBackend encaja con httpclient.ObserveFunc.
func ObserveBackend(method, route string, status int, elapsed time.Duration) {
	backendRequests.WithLabelValues(method, routeLabel(route), strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func RecordPaymentOutcome(state string) {
	paymentOutcomes.WithLabelValues(state).Inc()
}

func RecordWalkTick(ok bool) {
	if ok {
		walkTicks.WithLabelValues("ok").Inc()
		return
	}
	walkTicks.WithLabelValues("error").Inc()
}

func TrackerStarted() { activeTrackers.Inc() }
func TrackerStopped() { activeTrackers.Dec() }

// routeLabel se queda con los dos primeros segmentos para acotar cardinalidad:
// /api/walks/abc -> /api/walks
func routeLabel(route string) string {
	if i := strings.Index(route, "?"); i >= 0 {
		route = route[:i]
	}
	depth := 0
	for i := 0; i < len(route); i++ {
		if route[i] == '/' {
			depth++
			if depth == 3 {
				return route[:i]
			}
		}
	}
	return route
}
