// Package metrics counts key, signing and verification operations.
//
// Counters live on a private registry so several Recorders can coexist in
// one process (tests, embedded use). A nil *Recorder is valid and records
// nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels.
const (
	OpGenerate = "generate"
	OpImport   = "import"
	OpSign     = "sign"
	OpVerify   = "verify"
)

// Verification results.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// Recorder holds the edsign counters.
type Recorder struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	erroredInputs *prometheus.CounterVec
	verifications *prometheus.CounterVec
}

// New returns a Recorder with its counters registered on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "edsign",
				Name:      "requests_total",
				Help:      "How many operations of each type completed without error.",
			},
			[]string{"operation"},
		),
		erroredInputs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "edsign",
				Name:      "requests_errored_total",
				Help:      "How many operations of each type returned an error.",
			},
			[]string{"operation"},
		),
		verifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "edsign",
				Name:      "verifications_total",
				Help:      "Completed verifications by result.",
			},
			[]string{"result"},
		),
	}
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Succeeded counts a completed operation.
func (r *Recorder) Succeeded(op string) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(op).Inc()
}

// Failed counts an operation that returned an error.
func (r *Recorder) Failed(op string) {
	if r == nil {
		return
	}
	r.erroredInputs.WithLabelValues(op).Inc()
}

// Verified counts a completed verification and its outcome.
func (r *Recorder) Verified(valid bool) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(OpVerify).Inc()
	result := ResultInvalid
	if valid {
		result = ResultValid
	}
	r.verifications.WithLabelValues(result).Inc()
}

// WriteTextfile dumps the current counters in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
