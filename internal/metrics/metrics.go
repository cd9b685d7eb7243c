package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg              *prometheus.Registry
	ReportsAssembled prometheus.Counter
	DeadlineSentinel *prometheus.CounterVec // by status
	HuntDurationSec  prometheus.Histogram
	Hunts            *prometheus.CounterVec // by result
	LeadsCaptured    prometheus.Counter
	EmailsSent       *prometheus.CounterVec // by result
	LeadSinkErrors   *prometheus.CounterVec // by sink
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	assembled := prometheus.NewCounter(prometheus.CounterOpts{Name: "reports_assembled_total"})
	sentinels := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "deadline_sentinels_total"}, []string{"status"})
	huntDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hunt_duration_seconds",
		Buckets: []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
	})
	hunts := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "hunts_total"}, []string{"result"})
	leads := prometheus.NewCounter(prometheus.CounterOpts{Name: "leads_captured_total"})
	emails := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "emails_sent_total"}, []string{"result"})
	sinkErrors := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "lead_sink_errors_total"}, []string{"sink"})

	r.MustRegister(assembled, sentinels, huntDuration, hunts, leads, emails, sinkErrors)
	return &Registry{
		reg:              r,
		ReportsAssembled: assembled,
		DeadlineSentinel: sentinels,
		HuntDurationSec:  huntDuration,
		Hunts:            hunts,
		LeadsCaptured:    leads,
		EmailsSent:       emails,
		LeadSinkErrors:   sinkErrors,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }
