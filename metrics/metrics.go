package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Collector tracks frame loop health and persistence activity. Implements
// the engine's frame observer; all methods are safe from the frame loop and
// cheap enough to call every tick.
type Collector struct {
	reg *prometheus.Registry

	frameSeconds     prometheus.Histogram
	positionCommits  prometheus.Counter
	snapshotsDropped prometheus.Counter
}

// NewCollector creates a collector with its own registry so tests can run
// several side by side
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Collector{
		reg: reg,
		frameSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "agentfloor",
			Name:      "frame_seconds",
			Help:      "Wall time spent per simulation frame.",
			Buckets:   []float64{.001, .002, .004, .008, .016, .033, .066, .1},
		}),
		positionCommits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "agentfloor",
			Name:      "position_commits_total",
			Help:      "Completed drags that enqueued a position write.",
		}),
		snapshotsDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "agentfloor",
			Name:      "snapshots_dropped_total",
			Help:      "World snapshots dropped because an observer was slow.",
		}),
	}
}

func (c *Collector) ObserveFrame(seconds float64) { c.frameSeconds.Observe(seconds) }
func (c *Collector) IncPositionCommits()          { c.positionCommits.Inc() }
func (c *Collector) IncSnapshotsDropped()         { c.snapshotsDropped.Inc() }

// Handler serves the collector's registry in Prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// Gather exposes the raw registry for tests
func (c *Collector) Gather() ([]*dto.MetricFamily, error) {
	return c.reg.Gather()
}
