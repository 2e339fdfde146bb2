package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hole_combo"

// Collector holds the counters of one process on its own registry.
type Collector struct {
	registry *prometheus.Registry

	detected       *prometheus.CounterVec
	detectDuration prometheus.Histogram
	requests       *prometheus.CounterVec
	dealt          prometheus.Counter
}

func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		detected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detected_total",
			Help:      "combos detected, by combo rank",
		}, []string{"rank"}),
		detectDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "detect_seconds",
			Help:      "time spent detecting one combo",
			Buckets:   []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3},
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "msg server requests, by msg type and result",
		}, []string{"type", "result"}),
		dealt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dealt_cards_total",
			Help:      "cards dealt from poker heaps",
		}),
	}
	c.registry.MustRegister(c.detected, c.detectDuration, c.requests, c.dealt)
	return c
}

// ObserveCombo counts one detection of the given combo rank.
func (c *Collector) ObserveCombo(rank string, d time.Duration) {
	c.detected.WithLabelValues(rank).Inc()
	c.detectDuration.Observe(d.Seconds())
}

// ObserveDealt counts n cards dealt from a heap.
func (c *Collector) ObserveDealt(n int) {
	c.dealt.Add(float64(n))
}

func (c *Collector) ObserveRequest(msgType string, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	c.requests.WithLabelValues(msgType, result).Inc()
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on port and blocks.
func (c *Collector) Serve(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%v", port), mux)
}
