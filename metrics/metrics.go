package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is what the tournament service reports.
type Metrics interface {
	IncResultSubmitted(kind, outcome string)
	IncPhaseTransition(phase string)
	ObserveStoreDuration(operation string, seconds float64)
	IncPublishFailed(sink string)
}

var _ Metrics = (*Service)(nil)

type Service struct {
	ResultsSubmitted *prometheus.CounterVec
	PhaseTransitions *prometheus.CounterVec
	StoreDuration    *prometheus.HistogramVec
	PublishFailures  *prometheus.CounterVec
}

// NewHandler returns an http.Handler for the given Gatherer, or the
// default one.
func NewHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the collectors. Without a registerer the
// default Prometheus registerer is used.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ResultsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tennis_cup_results_submitted_total",
			Help: "Score submissions by match kind and outcome (accepted, rejected).",
		}, []string{"kind", "outcome"}),
		PhaseTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tennis_cup_phase_transitions_total",
			Help: "Playoff phase transitions that created matches, by resulting phase.",
		}, []string{"phase"}),
		StoreDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tennis_cup_store_operation_duration_seconds",
			Help:    "Duration of tournament store operations.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),
		PublishFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tennis_cup_publish_failures_total",
			Help: "Snapshot publications that failed, by sink.",
		}, []string{"sink"}),
	}

	reg.MustRegister(s.ResultsSubmitted, s.PhaseTransitions, s.StoreDuration, s.PublishFailures)
	return s
}

func (s *Service) IncResultSubmitted(kind, outcome string) {
	s.ResultsSubmitted.WithLabelValues(kind, outcome).Inc()
}

func (s *Service) IncPhaseTransition(phase string) {
	s.PhaseTransitions.WithLabelValues(phase).Inc()
}

func (s *Service) ObserveStoreDuration(operation string, seconds float64) {
	s.StoreDuration.WithLabelValues(operation).Observe(seconds)
}

func (s *Service) IncPublishFailed(sink string) {
	s.PublishFailures.WithLabelValues(sink).Inc()
}
