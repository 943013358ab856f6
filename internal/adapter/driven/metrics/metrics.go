// Package metrics implements the MetricsRecorder driven port with Prometheus
// counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ericfisherdev/qrnetctl/internal/domain/model"
	"github.com/ericfisherdev/qrnetctl/internal/domain/port/driven"
)

const namespace = "qrnetctl"

// Compile-time check that Recorder implements the driven port.
var _ driven.MetricsRecorder = (*Recorder)(nil)

// Recorder counts parsed payloads and rendered profiles.
type Recorder struct {
	payloadsParsed   *prometheus.CounterVec
	profilesRendered *prometheus.CounterVec
}

// NewRecorder creates a Recorder and registers its collectors with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh
// prometheus.NewRegistry() in tests.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		payloadsParsed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payloads_parsed_total",
				Help:      "Total number of QR payloads parsed, by outcome",
			},
			[]string{"outcome"},
		),
		profilesRendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "profiles_rendered_total",
				Help:      "Total number of netctl profiles rendered, by security mode",
			},
			[]string{"security"},
		),
	}

	for _, c := range []prometheus.Collector{r.payloadsParsed, r.profilesRendered} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	// Pre-create label values so the series are exported at zero.
	for _, outcome := range []string{driven.OutcomeWifi, driven.OutcomeNoMatch, driven.OutcomeInvalid} {
		r.payloadsParsed.WithLabelValues(outcome)
	}
	for _, sec := range []model.Security{model.SecurityWPA, model.SecurityWEP, model.SecurityNone} {
		r.profilesRendered.WithLabelValues(string(sec))
	}

	return r, nil
}

// PayloadParsed increments the parse counter for outcome.
func (r *Recorder) PayloadParsed(outcome string) {
	r.payloadsParsed.WithLabelValues(outcome).Inc()
}

// ProfileRendered increments the render counter for security.
func (r *Recorder) ProfileRendered(security model.Security) {
	r.profilesRendered.WithLabelValues(string(security)).Inc()
}
