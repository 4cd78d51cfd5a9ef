// Package metrics exports dispatcher activity as Prometheus counters.
package metrics

import (
	"github.com/phanxgames/sprig"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Collector counts fired semantic events and attached surface listeners.
// It implements sprig.Observer; pass it with sprig.WithObserver.
type Collector struct {
	eventsFired       *prometheus.CounterVec
	listenersAttached *prometheus.CounterVec
}

var _ sprig.Observer = (*Collector)(nil)

// NewCollector creates the counters and registers them with reg. A nil reg
// registers with the Prometheus default registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		eventsFired: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sprig_events_fired_total",
				Help: "Total number of semantic events fired, by type",
			},
			[]string{"type"},
		),
		listenersAttached: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sprig_listeners_attached_total",
				Help: "Total number of surface listeners attached, by type",
			},
			[]string{"type"},
		),
	}
	reg.MustRegister(c.eventsFired, c.listenersAttached)
	return c
}

// EventFired implements sprig.Observer.
func (c *Collector) EventFired(typ sprig.EventType, _ *sprig.Node) {
	c.eventsFired.WithLabelValues(string(typ)).Inc()
}

// ListenerAttached implements sprig.Observer.
func (c *Collector) ListenerAttached(typ sprig.EventType) {
	c.listenersAttached.WithLabelValues(string(typ)).Inc()
}

// Fired returns the current count for typ.
func (c *Collector) Fired(typ sprig.EventType) float64 {
	return counterValue(c.eventsFired.WithLabelValues(string(typ)))
}

// Attached returns the current listener count for typ.
func (c *Collector) Attached(typ sprig.EventType) float64 {
	return counterValue(c.listenersAttached.WithLabelValues(string(typ)))
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}
