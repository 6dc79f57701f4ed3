package metrics

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Selection outcomes.
const (
	OutcomeSticky = "sticky"
	OutcomeFirst  = "first"
	OutcomeNone   = "none"
)

type Metrics struct {
	r          *prometheus.Registry
	selections *prometheus.CounterVec
	renders    *prometheus.CounterVec
}

func New() *Metrics {
	r := prometheus.NewRegistry()

	m := &Metrics{
		r: r,
		selections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "event_banner_selections_total",
				Help: "count of active banner selections by outcome",
			},
			[]string{"outcome"},
		),
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "event_banner_renders_total",
				Help: "count of banner render requests by hook and result",
			},
			[]string{"hook", "result"},
		),
	}

	r.MustRegister(m.selections, m.renders)

	return m
}

func (m *Metrics) Selection(outcome string) {
	m.selections.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Render(hook string, rendered bool) {
	result := "skipped"
	if rendered {
		result = "rendered"
	}
	m.renders.WithLabelValues(hook, result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.r, promhttp.HandlerOpts{
		ErrorLog:          log.New(slogWriter{}, "", 0),
		Registry:          m.r,
		EnableOpenMetrics: true,
	})
}

type slogWriter struct{}

func (slogWriter) Write(p []byte) (int, error) {
	slog.Error("prom http", "message", string(p))
	return len(p), nil
}
